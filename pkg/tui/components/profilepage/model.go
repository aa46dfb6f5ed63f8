// Package profilepage renders another alumni's profile with AI icebreaker
// suggestions and a connect action.
package profilepage

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

// Model is the read-only profile screen.
type Model struct {
	id   events.ComponentID
	th   theme.Theme
	sess *session.Session
	svc  *assist.Service

	// seq tokens the in-flight icebreaker request; a result with a stale
	// token is discarded (the user retried or navigated away).
	seq         int
	generating  bool
	icebreakers []string

	width  int
	height int
}

// New builds the profile screen.
func New(id events.ComponentID, th theme.Theme, sess *session.Session, svc *assist.Service) *Model {
	return &Model{id: id, th: th, sess: sess, svc: svc}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetTheme swaps style variants.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// InputActive reports whether the screen owns free-text input (it never
// does; all interaction is single keys).
func (m *Model) InputActive() bool { return false }

// SetSize records the layout area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reset clears per-profile state when the selection changes.
func (m *Model) Reset() {
	m.icebreakers = nil
	m.generating = false
	m.seq++
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles c (connect), i (icebreakers), esc (back).
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		user := m.sess.SelectedUser()
		if user == nil {
			return nil
		}
		switch msg.String() {
		case "c":
			return events.Connect(user.ID)
		case "i":
			return m.generateIcebreakers()
		case "esc":
			return events.Navigate(session.ViewDirectory)
		}
	case events.IcebreakersReadyMsg:
		if msg.Component != m.id || msg.Seq != m.seq {
			return nil
		}
		m.generating = false
		m.icebreakers = msg.Suggestions
	}
	return nil
}

// generateIcebreakers launches at most one request per profile at a time.
func (m *Model) generateIcebreakers() tea.Cmd {
	if m.generating {
		return nil
	}
	user := m.sess.SelectedUser()
	if user == nil {
		return nil
	}
	m.generating = true
	m.seq++

	id, seq, svc := m.id, m.seq, m.svc
	req := assist.IcebreakerRequest{
		MyOccupation: m.sess.CurrentUser.Occupation,
		Name:         user.Name,
		Occupation:   user.Occupation,
		School:       user.School,
	}
	return func() tea.Msg {
		suggestions := svc.Icebreakers(context.Background(), req)
		return events.IcebreakersReadyMsg{Component: id, Seq: seq, Suggestions: suggestions}
	}
}

// View renders the profile card and icebreaker panel.
func (m *Model) View() string {
	user := m.sess.SelectedUser()
	if user == nil {
		return m.th.Page.Faint.Render("No profile selected.")
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.th.Page.Title.Render(user.Name),
		m.th.Page.Subtitle.Render(user.Occupation),
		m.th.Card.Meta.Render(user.ClassOf()),
		m.th.Card.Meta.Render(user.Location),
	)

	var details []string
	details = append(details, m.th.Card.Title.Render("About"), m.th.Page.Body.Render(user.Bio))
	if len(user.Skills) > 0 {
		details = append(details, "", m.th.Card.Title.Render("Skills"), m.th.Page.Body.Render(strings.Join(user.Skills, " · ")))
	}
	details = append(details, "", m.th.Card.Meta.Render("Email: "+user.Email))

	card := m.th.Card.Frame.Width(max(40, m.width/2)).Render(
		lipgloss.JoinVertical(lipgloss.Left, details...))

	var ice []string
	ice = append(ice, m.th.Page.Accent.Render("Icebreakers"))
	switch {
	case m.generating:
		ice = append(ice, m.th.Page.Faint.Render("Generating suggestions..."))
	case m.icebreakers == nil:
		ice = append(ice, m.th.Page.Faint.Render("Press i to suggest conversation starters."))
	case len(m.icebreakers) == 0:
		ice = append(ice, m.th.Page.Faint.Render("No suggestions came back. Press i to retry."))
	default:
		for n, s := range m.icebreakers {
			ice = append(ice, m.th.Page.Body.Render(fmt.Sprintf("%d. %s", n+1, s)))
		}
	}

	help := m.th.Navbar.Hint.Render("c connect · i icebreakers · esc back to directory")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		card,
		"",
		lipgloss.JoinVertical(lipgloss.Left, ice...),
		"",
		help,
	)
}
