package assist

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, _ string, _ bool) (string, error) {
	return s.text, s.err
}

func TestEnhanceBioFailureKeepsOriginalText(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("quota exceeded")}, nil)

	got := svc.EnhanceBio(context.Background(), BioRequest{Bio: "B", Occupation: "Student", School: "RAS"})
	if got != "B" {
		t.Fatalf("bio = %q, want original %q", got, "B")
	}
}

func TestEnhanceBioEmptyResponseKeepsOriginalText(t *testing.T) {
	svc := NewService(&stubGenerator{text: "   "}, nil)

	if got := svc.EnhanceBio(context.Background(), BioRequest{Bio: "B"}); got != "B" {
		t.Fatalf("bio = %q, want original", got)
	}
}

func TestEnhanceBioUsesGeneratedText(t *testing.T) {
	svc := NewService(&stubGenerator{text: "A polished bio.\n"}, nil)

	if got := svc.EnhanceBio(context.Background(), BioRequest{Bio: "rough"}); got != "A polished bio." {
		t.Fatalf("bio = %q", got)
	}
}

func TestIcebreakersFailureUsesFixedFallbacks(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("timeout")}, nil)

	got := svc.Icebreakers(context.Background(), IcebreakerRequest{Name: "Sarah Jenkins"})
	if diff := cmp.Diff(FallbackIcebreakers(), got); diff != "" {
		t.Fatalf("fallbacks must come back verbatim (-want +got):\n%s", diff)
	}
	if len(got) != 3 {
		t.Fatalf("fallback list length = %d, want 3", len(got))
	}
}

func TestIcebreakersEmptyResponseYieldsEmptyList(t *testing.T) {
	svc := NewService(&stubGenerator{text: ""}, nil)

	got := svc.Icebreakers(context.Background(), IcebreakerRequest{})
	if len(got) != 0 {
		t.Fatalf("empty response should yield an empty list, got %v", got)
	}
}

func TestIcebreakersMalformedJSONUsesFallbacks(t *testing.T) {
	svc := NewService(&stubGenerator{text: "not json"}, nil)

	got := svc.Icebreakers(context.Background(), IcebreakerRequest{})
	if diff := cmp.Diff(FallbackIcebreakers(), got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestIcebreakersParsesJSONArray(t *testing.T) {
	svc := NewService(&stubGenerator{text: `["one","two","three"]`}, nil)

	got := svc.Icebreakers(context.Background(), IcebreakerRequest{})
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDraftAnnouncementFailureFabricatesFromTopic(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("network down")}, nil)

	got := svc.DraftAnnouncement(context.Background(), "Bake sale on Friday", "")
	want := Draft{Title: "New Announcement", Content: "Bake sale on Friday"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDraftAnnouncementParsesJSONObject(t *testing.T) {
	svc := NewService(&stubGenerator{text: `{"title":"Gala!","content":"Join us."}`}, nil)

	got := svc.DraftAnnouncement(context.Background(), "gala", DefaultAudience)
	want := Draft{Title: "Gala!", Content: "Join us."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestNilGeneratorBehavesAsFailure(t *testing.T) {
	svc := NewService(nil, nil)

	if got := svc.EnhanceBio(context.Background(), BioRequest{Bio: "B"}); got != "B" {
		t.Fatalf("bio = %q, want original", got)
	}
	if got := svc.Icebreakers(context.Background(), IcebreakerRequest{}); len(got) != 3 {
		t.Fatalf("icebreakers = %v, want 3 fallbacks", got)
	}
}
