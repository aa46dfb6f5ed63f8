package editprofilepage

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/seed"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

func newTestModel(t *testing.T) (*Model, *session.Session) {
	t.Helper()
	sess := session.New(seed.Profile(), seed.Users(), seed.Announcements(), seed.Chats(), session.ThemeLight)
	m := New("editprofile", theme.Light(), sess, assist.NewService(nil, nil))
	m.SetSize(100, 40)
	return m, sess
}

func TestFormPrefilledFromCurrentUser(t *testing.T) {
	m, sess := newTestModel(t)
	if got := m.inputs[fieldName].Value(); got != sess.CurrentUser.Name {
		t.Fatalf("expected name %q, got %q", sess.CurrentUser.Name, got)
	}
	if got := m.inputs[fieldYear].Value(); got != "2021" {
		t.Fatalf("expected year 2021, got %q", got)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != fieldEmail {
		t.Fatalf("expected email focus, got %d", m.focus)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.focus != fieldName {
		t.Fatalf("expected name focus, got %d", m.focus)
	}
}

func TestSaveEmitsUpdatedUser(t *testing.T) {
	m, sess := newTestModel(t)
	m.inputs[fieldOccupation].SetValue("Engineering Manager")
	m.inputs[fieldSkills].SetValue("Go, Leading,  ,Mentoring")

	cmd := m.save()
	if cmd == nil {
		t.Fatalf("expected save command, err=%q", m.errText)
	}
	msg, ok := cmd().(events.SaveProfileMsg)
	if !ok {
		t.Fatalf("expected SaveProfileMsg, got %T", cmd())
	}
	if msg.User.ID != sess.CurrentUser.ID {
		t.Fatalf("save must keep the user ID")
	}
	if msg.User.Occupation != "Engineering Manager" {
		t.Fatalf("expected edited occupation, got %q", msg.User.Occupation)
	}
	if diff := cmp.Diff([]string{"Go", "Leading", "Mentoring"}, msg.User.Skills); diff != "" {
		t.Fatalf("skills mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	m, _ := newTestModel(t)
	m.inputs[fieldName].SetValue("   ")
	if cmd := m.save(); cmd != nil {
		t.Fatalf("expected save to fail")
	}
	if !strings.Contains(m.View(), "Name cannot be empty.") {
		t.Fatalf("expected name error in view")
	}
}

func TestSaveRejectsBadYear(t *testing.T) {
	m, _ := newTestModel(t)
	m.inputs[fieldYear].SetValue("soon")
	if cmd := m.save(); cmd != nil {
		t.Fatalf("expected save to fail")
	}
	if !strings.Contains(m.errText, "number") {
		t.Fatalf("expected year error, got %q", m.errText)
	}
}

func TestBioRewriteNeedsMinimumText(t *testing.T) {
	m, _ := newTestModel(t)
	m.inputs[fieldBio].SetValue("short")
	if cmd := m.polishBio(); cmd != nil {
		t.Fatalf("expected rewrite refusal for a short bio")
	}
	if m.errText == "" {
		t.Fatalf("expected an error prompt")
	}
}

func TestBioResultAppliedAndStaleDiscarded(t *testing.T) {
	m, _ := newTestModel(t)
	if cmd := m.polishBio(); cmd == nil {
		t.Fatalf("expected rewrite command, err=%q", m.errText)
	}

	m.Update(events.BioReadyMsg{Component: "editprofile", Seq: m.seq - 1, Bio: "stale"})
	if m.inputs[fieldBio].Value() == "stale" {
		t.Fatalf("stale bio must be discarded")
	}

	m.Update(events.BioReadyMsg{Component: "editprofile", Seq: m.seq, Bio: "A better bio."})
	if got := m.inputs[fieldBio].Value(); got != "A better bio." {
		t.Fatalf("expected applied bio, got %q", got)
	}
}
