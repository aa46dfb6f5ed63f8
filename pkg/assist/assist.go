// Package assist wraps the generative-text collaborator behind a narrow
// contract: three capabilities, single attempt each, and a deterministic
// fallback on every failure so the calling screen always completes.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnavailable is returned by capability calls when no generator is
// configured (missing API key). Callers treat it like any other failure.
var ErrUnavailable = errors.New("assist: no generator configured")

// Generator produces text for the three capabilities. Implementations are
// network-backed and may fail; callers go through Service for fallbacks.
type Generator interface {
	// Generate returns the model's text for a prompt. When jsonOut is set
	// the model is asked for a raw JSON response body.
	Generate(ctx context.Context, prompt string, jsonOut bool) (string, error)
}

// BioRequest carries the profile fields the bio rewrite is grounded on.
type BioRequest struct {
	Bio        string
	Occupation string
	School     string
}

// IcebreakerRequest describes the viewer and the profile being viewed.
type IcebreakerRequest struct {
	MyOccupation string
	Name         string
	Occupation   string
	School       string
}

// Draft is a generated announcement body.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DefaultAudience is the implicit announcement audience.
const DefaultAudience = "Alumni and Students"

// FallbackIcebreakers are substituted verbatim when generation fails.
func FallbackIcebreakers() []string {
	return []string{
		"Hi! I noticed we went to the same school system.",
		"Hello, I'd love to connect regarding your work.",
		"Hi there!",
	}
}

// FallbackDraft fabricates an announcement from the raw topic.
func FallbackDraft(topic string) Draft {
	return Draft{Title: "New Announcement", Content: topic}
}

// Service binds a Generator to the capability contracts. A nil Generator is
// valid and behaves as a permanent failure, which the fallbacks absorb.
type Service struct {
	gen Generator
	log *zap.Logger
}

// NewService wires a generator and a diagnostics logger. Either may be nil.
func NewService(gen Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, log: log}
}

// EnhanceBio rewrites a rough bio draft. On any failure, or an empty
// response, the original text comes back unchanged so no data is lost.
func (s *Service) EnhanceBio(ctx context.Context, req BioRequest) string {
	prompt := fmt.Sprintf(`You are a professional career consultant.
Rewrite the following rough bio for an alumni profile on a professional networking site.
The person went to %s and works as a %s.
Keep it concise, professional, yet approachable (under 100 words).

Current Draft: %q`, req.School, req.Occupation, req.Bio)

	text, err := s.generate(ctx, prompt, false)
	if err != nil || strings.TrimSpace(text) == "" {
		s.warn("bio generation failed", err)
		return req.Bio
	}
	return strings.TrimSpace(text)
}

// Icebreakers suggests three opening messages. On failure the fixed
// fallback strings are returned verbatim; an empty model response yields an
// empty list so the UI can offer a retry.
func (s *Service) Icebreakers(ctx context.Context, req IcebreakerRequest) []string {
	prompt := fmt.Sprintf(`I am a %s. I want to send a message to %s, who is a %s and went to %s.
Generate 3 distinct, friendly, and professional icebreaker messages I could send to start a conversation.
Return ONLY the messages as a JSON array of strings.`,
		req.MyOccupation, req.Name, req.Occupation, req.School)

	text, err := s.generate(ctx, prompt, true)
	if err != nil {
		s.warn("icebreaker generation failed", err)
		return FallbackIcebreakers()
	}
	if text == "" {
		return []string{}
	}

	var msgs []string
	if err := json.Unmarshal([]byte(text), &msgs); err != nil {
		s.warn("icebreaker response unparseable", err)
		return FallbackIcebreakers()
	}
	if len(msgs) > 3 {
		msgs = msgs[:3]
	}
	return msgs
}

// DraftAnnouncement turns a topic into a title and body. On failure the
// draft is fabricated from the topic itself.
func (s *Service) DraftAnnouncement(ctx context.Context, topic, audience string) Draft {
	if audience == "" {
		audience = DefaultAudience
	}
	prompt := fmt.Sprintf(`You are the communications director for an international school alumni network.
Write a professional yet engaging announcement based on the following topic: %q.
The audience is: %s.

Return the result as a JSON object with two keys:
"title": A catchy headline.
"content": The body of the announcement (approx 3-5 sentences).`, topic, audience)

	text, err := s.generate(ctx, prompt, true)
	if err != nil || text == "" {
		s.warn("announcement generation failed", err)
		return FallbackDraft(topic)
	}

	var draft Draft
	if err := json.Unmarshal([]byte(text), &draft); err != nil || draft.Title == "" || draft.Content == "" {
		s.warn("announcement response unparseable", err)
		return FallbackDraft(topic)
	}
	return draft
}

func (s *Service) generate(ctx context.Context, prompt string, jsonOut bool) (string, error) {
	if s.gen == nil {
		return "", ErrUnavailable
	}
	return s.gen.Generate(ctx, prompt, jsonOut)
}

func (s *Service) warn(msg string, err error) {
	if err != nil {
		s.log.Warn(msg, zap.Error(err))
		return
	}
	s.log.Warn(msg)
}
