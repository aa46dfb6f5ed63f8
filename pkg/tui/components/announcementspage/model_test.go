package announcementspage

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/seed"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

func newTestModel(t *testing.T, current alumni.User) *Model {
	t.Helper()
	sess := session.New(current, seed.Users(), seed.Announcements(), seed.Chats(), session.ThemeLight)
	m := New("announcements", theme.Light(), sess, assist.NewService(nil, nil), seed.CurrentUserID)
	m.SetSize(100, 40)
	return m
}

func TestFeedListsSeededAnnouncements(t *testing.T) {
	m := newTestModel(t, seed.Profile())
	view := m.View()
	for _, want := range []string{"Annual Alumni Gala Dinner 2024", "New Mentorship Program Launch", "Campus Expansion Updates"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in feed; view=%q", want, view)
		}
	}
}

func TestComposerOpensForAdminOnly(t *testing.T) {
	admin := newTestModel(t, seed.Profile())
	admin.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	if !admin.composing {
		t.Fatalf("admin must be able to open the composer")
	}

	visitor := newTestModel(t, seed.Users()[0])
	visitor.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	if visitor.composing {
		t.Fatalf("non-admin must not open the composer")
	}
	if strings.Contains(visitor.View(), "n new announcement") {
		t.Fatalf("non-admin view must not advertise the composer")
	}
}

func TestPostRequiresTitleAndContent(t *testing.T) {
	m := newTestModel(t, seed.Profile())
	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})

	if cmd := m.post(); cmd != nil {
		t.Fatalf("expected post to fail without content")
	}
	if !strings.Contains(m.View(), "Both a title and content are required.") {
		t.Fatalf("expected validation error in view")
	}
}

func TestPostEmitsAnnouncement(t *testing.T) {
	m := newTestModel(t, seed.Profile())
	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	m.inputs[fieldTitle].SetValue("Reunion Weekend")
	m.inputs[fieldContent].SetValue("Save the date for June.")
	m.categoryIdx = 1 // Event

	cmd := m.post()
	if cmd == nil {
		t.Fatalf("expected post command, err=%q", m.errText)
	}
	msg, ok := cmd().(events.PostAnnouncementMsg)
	if !ok {
		t.Fatalf("expected PostAnnouncementMsg, got %T", cmd())
	}
	a := msg.Announcement
	if a.ID == "" {
		t.Fatalf("expected a generated ID")
	}
	if a.Title != "Reunion Weekend" || a.Author != "Alex Smith" || string(a.Category) != "Event" {
		t.Fatalf("unexpected announcement %#v", a)
	}
	if m.composing {
		t.Fatalf("composer must close after posting")
	}
}

func TestDraftFillsTitleAndContent(t *testing.T) {
	m := newTestModel(t, seed.Profile())
	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	m.inputs[fieldTopic].SetValue("homecoming game")

	if cmd := m.draft(); cmd == nil {
		t.Fatalf("expected draft command, err=%q", m.errText)
	}
	m.Update(events.DraftReadyMsg{Component: "announcements", Seq: m.seq, Draft: assist.Draft{
		Title:   "Homecoming Game",
		Content: "Cheer on the Lions this Friday.",
	}})

	if got := m.inputs[fieldTitle].Value(); got != "Homecoming Game" {
		t.Fatalf("expected drafted title, got %q", got)
	}
	if got := m.inputs[fieldContent].Value(); got != "Cheer on the Lions this Friday." {
		t.Fatalf("expected drafted content, got %q", got)
	}
}

func TestDraftNeedsTopic(t *testing.T) {
	m := newTestModel(t, seed.Profile())
	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	if cmd := m.draft(); cmd != nil {
		t.Fatalf("expected draft refusal without a topic")
	}
}

func TestStaleDraftDiscarded(t *testing.T) {
	m := newTestModel(t, seed.Profile())
	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	m.inputs[fieldTopic].SetValue("career fair")
	m.draft()

	m.Update(events.DraftReadyMsg{Component: "announcements", Seq: m.seq - 1, Draft: assist.Draft{Title: "stale"}})
	if m.inputs[fieldTitle].Value() == "stale" {
		t.Fatalf("stale draft must be discarded")
	}
}
