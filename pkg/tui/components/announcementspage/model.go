// Package announcementspage renders the announcements feed and, for the
// admin account, a composer with an AI drafting assist.
package announcementspage

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/mitchellh/go-wordwrap"

	"tableflip.dev/reunion/pkg/announcement"
	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

const (
	fieldTopic = iota
	fieldTitle
	fieldContent
	fieldCount
)

var fieldLabels = [fieldCount]string{"Topic (for AI draft)", "Title", "Content"}

// Model is the announcements screen.
type Model struct {
	id      events.ComponentID
	th      theme.Theme
	sess    *session.Session
	svc     *assist.Service
	adminID string

	composing   bool
	inputs      []textinput.Model
	focus       int
	categoryIdx int
	seq         int
	drafting    bool
	errText     string

	width  int
	height int
}

// New builds the announcements screen. adminID gates the composer.
func New(id events.ComponentID, th theme.Theme, sess *session.Session, svc *assist.Service, adminID string) *Model {
	m := &Model{id: id, th: th, sess: sess, svc: svc, adminID: adminID}
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.VirtualCursor = true
		m.inputs[i] = ti
	}
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetTheme swaps style variants.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// InputActive reports whether the composer owns keystrokes.
func (m *Model) InputActive() bool { return m.composing }

// SetSize records the layout area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].SetWidth(max(24, min(64, width-28)))
	}
}

// Refresh is a no-op; the feed reads the session directly on render.
func (m *Model) Refresh() {}

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

func (m *Model) closeComposer() {
	m.composing = false
	m.drafting = false
	m.errText = ""
	m.seq++
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.categoryIdx = 0
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update drives the screen. Outside the composer, n opens it for the
// admin and esc returns home. Inside, tab cycles fields, ctrl+t cycles
// the category, ctrl+g drafts from the topic, ctrl+s posts.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.composing {
			switch msg.String() {
			case "n":
				if m.sess.IsAdmin(m.adminID) {
					m.composing = true
					m.setFocus(fieldTopic)
				}
			case "esc":
				return events.Navigate(session.ViewHome)
			}
			return nil
		}
		switch msg.String() {
		case "tab", "enter", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return nil
		case "ctrl+t":
			m.categoryIdx = (m.categoryIdx + 1) % len(announcement.Categories())
			return nil
		case "ctrl+g":
			return m.draft()
		case "ctrl+s":
			return m.post()
		case "esc":
			m.closeComposer()
			return nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	case events.DraftReadyMsg:
		if msg.Component != m.id || msg.Seq != m.seq {
			return nil
		}
		m.drafting = false
		m.inputs[fieldTitle].SetValue(msg.Draft.Title)
		m.inputs[fieldContent].SetValue(msg.Draft.Content)
	}
	return nil
}

// draft asks the assistant to write a title and body from the topic.
func (m *Model) draft() tea.Cmd {
	if m.drafting {
		return nil
	}
	topic := strings.TrimSpace(m.inputs[fieldTopic].Value())
	if topic == "" {
		m.errText = "Give the AI a topic to draft from."
		return nil
	}
	m.errText = ""
	m.drafting = true
	m.seq++

	id, seq, svc := m.id, m.seq, m.svc
	return func() tea.Msg {
		d := svc.DraftAnnouncement(context.Background(), topic, assist.DefaultAudience)
		return events.DraftReadyMsg{Component: id, Seq: seq, Draft: d}
	}
}

// post validates and emits the new announcement.
func (m *Model) post() tea.Cmd {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	content := strings.TrimSpace(m.inputs[fieldContent].Value())
	if title == "" || content == "" {
		m.errText = "Both a title and content are required."
		return nil
	}
	category := announcement.Categories()[m.categoryIdx]
	a := announcement.New(uuid.NewString(), title, content, m.sess.CurrentUser.Name, category)
	m.closeComposer()
	return func() tea.Msg {
		return events.PostAnnouncementMsg{Announcement: a}
	}
}

// View renders the feed, with the composer above it when open.
func (m *Model) View() string {
	rows := []string{m.th.Page.Title.Render("Announcements"), ""}

	if m.composing {
		rows = append(rows, m.renderComposer(), "")
	} else if m.sess.IsAdmin(m.adminID) {
		rows = append(rows, m.th.Navbar.Hint.Render("n new announcement · esc home"), "")
	} else {
		rows = append(rows, m.th.Navbar.Hint.Render("esc home"), "")
	}

	if len(m.sess.Announcements) == 0 {
		rows = append(rows, m.th.Page.Faint.Render("Nothing posted yet."))
	}
	wide := uint(max(30, min(76, m.width-6)))
	for _, a := range m.sess.Announcements {
		card := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top,
				m.th.Card.Title.Render(a.Title),
				"  ",
				m.th.Card.Badge.Render(string(a.Category)),
			),
			m.th.Card.Meta.Render(a.Date+" · "+a.Author),
			"",
			m.th.Page.Body.Render(wordwrap.WrapString(a.Content, wide)),
		)
		rows = append(rows, m.th.Card.Frame.Render(card), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderComposer() string {
	rows := []string{m.th.Page.Accent.Render("New Announcement")}
	for i := range m.inputs {
		label := m.th.Form.Label
		if i == m.focus {
			label = m.th.Form.FocusedLabel
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Width(22).Render(fieldLabels[i]),
			m.inputs[i].View(),
		))
	}
	category := announcement.Categories()[m.categoryIdx]
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		m.th.Form.Label.Width(22).Render("Category"),
		m.th.Card.Badge.Render(string(category)),
	))
	if m.drafting {
		rows = append(rows, m.th.Page.Faint.Render("Drafting with AI..."))
	}
	if m.errText != "" {
		rows = append(rows, m.th.Form.Error.Render(m.errText))
	}
	rows = append(rows,
		m.th.Form.Help.Render("tab next · ctrl+t category · ctrl+g AI draft · ctrl+s post · esc cancel"))
	return m.th.Card.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
