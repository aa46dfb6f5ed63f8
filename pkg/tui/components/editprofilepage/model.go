// Package editprofilepage is the form for editing the current user's
// profile, with an AI bio rewrite action.
package editprofilepage

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

// Field indices into the inputs slice.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldSchool
	fieldYear
	fieldOccupation
	fieldLocation
	fieldSkills
	fieldBio
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name", "Email", "Phone", "School", "Class year",
	"Occupation", "Location", "Skills (comma separated)", "Bio",
}

// minBioLength gates the AI rewrite so there is something to work from.
const minBioLength = 10

// Model is the profile editing screen.
type Model struct {
	id   events.ComponentID
	th   theme.Theme
	sess *session.Session
	svc  *assist.Service

	inputs  []textinput.Model
	focus   int
	seq     int
	polish  bool
	errText string

	width  int
	height int
}

// New builds the form pre-filled from the current user.
func New(id events.ComponentID, th theme.Theme, sess *session.Session, svc *assist.Service) *Model {
	m := &Model{id: id, th: th, sess: sess, svc: svc}
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.VirtualCursor = true
		m.inputs[i] = ti
	}
	m.Refresh()
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetTheme swaps style variants.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// InputActive reports that the form always captures keystrokes.
func (m *Model) InputActive() bool { return true }

// SetSize records the layout area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].SetWidth(max(24, min(64, width-30)))
	}
}

// Refresh re-seeds every field from the session's current user and resets
// focus to the top of the form.
func (m *Model) Refresh() {
	u := m.sess.CurrentUser
	m.inputs[fieldName].SetValue(u.Name)
	m.inputs[fieldEmail].SetValue(u.Email)
	m.inputs[fieldPhone].SetValue(u.Phone)
	m.inputs[fieldSchool].SetValue(u.School)
	m.inputs[fieldYear].SetValue(strconv.Itoa(u.GraduationYear))
	m.inputs[fieldOccupation].SetValue(u.Occupation)
	m.inputs[fieldLocation].SetValue(u.Location)
	m.inputs[fieldSkills].SetValue(strings.Join(u.Skills, ", "))
	m.inputs[fieldBio].SetValue(u.Bio)
	m.errText = ""
	m.polish = false
	m.seq++
	m.setFocus(fieldName)
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for n := range m.inputs {
		if n == i {
			m.inputs[n].Focus()
		} else {
			m.inputs[n].Blur()
		}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update drives the form. Enter and tab advance, shift+tab goes back,
// ctrl+s saves, ctrl+g rewrites the bio, esc abandons edits.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return nil
		case "ctrl+s":
			return m.save()
		case "ctrl+g":
			return m.polishBio()
		case "esc":
			m.Refresh()
			return events.Navigate(session.ViewHome)
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	case events.BioReadyMsg:
		if msg.Component != m.id || msg.Seq != m.seq {
			return nil
		}
		m.polish = false
		m.inputs[fieldBio].SetValue(msg.Bio)
	}
	return nil
}

// save validates and emits the updated user wholesale.
func (m *Model) save() tea.Cmd {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	if name == "" {
		m.errText = "Name cannot be empty."
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldYear].Value()))
	if err != nil {
		m.errText = "Class year must be a number."
		return nil
	}

	updated := m.sess.CurrentUser
	updated.Name = name
	updated.Email = strings.TrimSpace(m.inputs[fieldEmail].Value())
	updated.Phone = strings.TrimSpace(m.inputs[fieldPhone].Value())
	updated.School = strings.TrimSpace(m.inputs[fieldSchool].Value())
	updated.GraduationYear = year
	updated.Occupation = strings.TrimSpace(m.inputs[fieldOccupation].Value())
	updated.Location = strings.TrimSpace(m.inputs[fieldLocation].Value())
	updated.Skills = splitSkills(m.inputs[fieldSkills].Value())
	updated.Bio = strings.TrimSpace(m.inputs[fieldBio].Value())

	m.errText = ""
	return func() tea.Msg { return events.SaveProfileMsg{User: updated} }
}

// polishBio asks the assistant to rewrite the current bio text.
func (m *Model) polishBio() tea.Cmd {
	if m.polish {
		return nil
	}
	bio := strings.TrimSpace(m.inputs[fieldBio].Value())
	if len(bio) < minBioLength {
		m.errText = "Write a little more bio first, then try the rewrite."
		return nil
	}
	m.errText = ""
	m.polish = true
	m.seq++

	id, seq, svc := m.id, m.seq, m.svc
	req := assist.BioRequest{
		Bio:        bio,
		Occupation: strings.TrimSpace(m.inputs[fieldOccupation].Value()),
		School:     strings.TrimSpace(m.inputs[fieldSchool].Value()),
	}
	return func() tea.Msg {
		return events.BioReadyMsg{Component: id, Seq: seq, Bio: svc.EnhanceBio(context.Background(), req)}
	}
}

func splitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// View renders the labeled fields and action hints.
func (m *Model) View() string {
	rows := []string{
		m.th.Page.Title.Render("Edit Profile"),
		m.th.Page.Subtitle.Render(m.sess.CurrentUser.ClassOf()),
		"",
	}
	for i := range m.inputs {
		label := m.th.Form.Label
		if i == m.focus {
			label = m.th.Form.FocusedLabel
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Width(26).Render(fieldLabels[i]),
			m.inputs[i].View(),
		))
	}
	if m.polish {
		rows = append(rows, "", m.th.Page.Faint.Render("Rewriting bio..."))
	}
	if m.errText != "" {
		rows = append(rows, "", m.th.Form.Error.Render(m.errText))
	}
	rows = append(rows, "",
		m.th.Form.Help.Render("enter/tab next field · ctrl+s save · ctrl+g rewrite bio · esc discard"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
