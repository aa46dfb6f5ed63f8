package directorypage

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/reunion/pkg/seed"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	sess := session.New(seed.Profile(), seed.Users(), seed.Announcements(), seed.Chats(), session.ThemeLight)
	m := New("directory", theme.Light(), sess)
	m.SetSize(100, 40)
	return m
}

func TestListsAllSeededAlumni(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Sarah Jenkins", "Ahmed Bennani", "Elena Rodriguez", "Michael Chen", "Yasmine Alami"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in directory; view=%q", want, view)
		}
	}
}

func TestSearchNarrowsResults(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Text: "/", Code: '/'})
	if !m.InputActive() {
		t.Fatalf("expected search focus after /")
	}
	for _, r := range "sarah" {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}

	view := m.View()
	if !strings.Contains(view, "Sarah Jenkins") {
		t.Fatalf("expected matching result; view=%q", view)
	}
	if strings.Contains(view, "Ahmed Bennani") {
		t.Fatalf("expected non-matching results filtered out")
	}
}

func TestSearchMatchesOccupation(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Text: "/", Code: '/'})
	for _, r := range "stanford" {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}

	view := m.View()
	if !strings.Contains(view, "Ahmed Bennani") {
		t.Fatalf("expected occupation match; view=%q", view)
	}
	if strings.Contains(view, "Sarah Jenkins") {
		t.Fatalf("expected name-only results filtered out")
	}
}

func TestYearFilterCyclesAndFilters(t *testing.T) {
	m := newTestModel(t)
	// All -> 2025 -> ... -> 2018
	for range 8 {
		m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	}
	if got := m.year(); got != "2018" {
		t.Fatalf("expected 2018 after cycling, got %q", got)
	}
	view := m.View()
	if !strings.Contains(view, "Sarah Jenkins") {
		t.Fatalf("expected class of 2018 member; view=%q", view)
	}
	if strings.Contains(view, "Ahmed Bennani") {
		t.Fatalf("expected other classes filtered out")
	}
}

func TestEnterOpensSelectedProfile(t *testing.T) {
	m := newTestModel(t)
	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	msg, ok := cmd().(events.SelectUserMsg)
	if !ok {
		t.Fatalf("expected SelectUserMsg, got %T", cmd())
	}
	if msg.User.Name != "Sarah Jenkins" {
		t.Fatalf("expected first listed user, got %q", msg.User.Name)
	}
}

func TestEscBlursSearchBeforeLeaving(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Text: "/", Code: '/'})

	if cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Fatalf("first esc must only blur the search box")
	}
	if m.InputActive() {
		t.Fatalf("expected search blurred")
	}

	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected navigation command from second esc")
	}
	if msg, ok := cmd().(events.NavigateMsg); !ok || msg.To != session.ViewHome {
		t.Fatalf("expected navigate home, got %#v", cmd())
	}
}

func TestEmptyResultMessage(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyPressMsg{Text: "/", Code: '/'})
	for _, r := range "zzz" {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
	if !strings.Contains(m.View(), "No alumni found. Try adjusting your search or filters.") {
		t.Fatalf("expected empty state; view=%q", m.View())
	}
}
