// Package homepage is the landing screen: a short hero, the newest
// members, and the latest announcement.
package homepage

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mitchellh/go-wordwrap"

	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

const recentCount = 4

// Model is the home screen.
type Model struct {
	id   events.ComponentID
	th   theme.Theme
	sess *session.Session

	width  int
	height int
}

// New builds the home screen.
func New(id events.ComponentID, th theme.Theme, sess *session.Session) *Model {
	return &Model{id: id, th: th, sess: sess}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetTheme swaps style variants.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// InputActive reports that home never captures free text.
func (m *Model) InputActive() bool { return false }

// SetSize records the layout area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles the home shortcuts that mirror the navbar.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return events.Navigate(session.ViewDirectory)
		}
	}
	return nil
}

// View renders the hero and the two teaser panels.
func (m *Model) View() string {
	hello := "Welcome back, " + m.sess.CurrentUser.FirstName() + "!"
	hero := lipgloss.JoinVertical(lipgloss.Left,
		m.th.Page.Title.Render(hello),
		m.th.Page.Subtitle.Render("Reconnect with classmates, find mentors, and stay in the loop."),
	)

	recent := []string{m.th.Page.Accent.Render("Recently Joined")}
	users := m.sess.Users
	if len(users) > recentCount {
		users = users[:recentCount]
	}
	for _, u := range users {
		recent = append(recent,
			m.th.Page.Body.Render(u.Name),
			m.th.Card.Meta.Render("  "+u.Occupation),
		)
	}
	left := m.th.Card.Frame.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, recent...))

	latest := []string{m.th.Page.Accent.Render("Latest Announcement")}
	if len(m.sess.Announcements) == 0 {
		latest = append(latest, m.th.Page.Faint.Render("Nothing posted yet."))
	} else {
		a := m.sess.Announcements[0]
		latest = append(latest,
			m.th.Card.Title.Render(a.Title),
			m.th.Card.Meta.Render(a.Date+" · "+a.Author),
			"",
			m.th.Page.Body.Render(wordwrap.WrapString(a.Content, 40)),
		)
	}
	right := m.th.Card.Frame.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, latest...))

	help := m.th.Navbar.Hint.Render("enter directory · d directory · m messages · a announcements · e edit profile")

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		"",
		help,
	)
}
