// Package directorypage renders the searchable alumni directory.
package directorypage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/directory"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

type item struct {
	user alumni.User
}

func (i item) Title() string       { return i.user.Name }
func (i item) Description() string { return i.user.Occupation + " · " + i.user.ClassOf() }
func (i item) FilterValue() string { return i.user.Name }

// Model is the directory screen: a search box, two cycling filters, and the
// result list. Filtering is recomputed from the live collection on every
// change, so the school options track the session.
type Model struct {
	id   events.ComponentID
	th   theme.Theme
	sess *session.Session

	search    textinput.Model
	results   list.Model
	searching bool

	schools   []string
	schoolIdx int
	years     []string
	yearIdx   int

	width  int
	height int
}

// New builds the directory screen bound to the session.
func New(id events.ComponentID, th theme.Theme, sess *session.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search alumni by name or job..."
	ti.CharLimit = 128
	ti.Prompt = "/ "
	ti.VirtualCursor = true

	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)

	m := &Model{
		id:      id,
		th:      th,
		sess:    sess,
		search:  ti,
		results: l,
		years:   directory.Years(),
	}
	m.Refresh()
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetTheme swaps style variants.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// InputActive reports whether the search box owns the keyboard.
func (m *Model) InputActive() bool { return m.searching }

// SetSize lays out the list under the filter row.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	listHeight := height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	m.results.SetSize(width, listHeight)
	m.search.SetWidth(min(48, max(16, width-4)))
}

// Refresh recomputes filter options and results from the session. The school
// that was selected survives the rebuild when it still exists.
func (m *Model) Refresh() {
	selected := m.school()
	m.schools = directory.Schools(m.sess.Users)
	m.schoolIdx = 0
	for i, s := range m.schools {
		if s == selected {
			m.schoolIdx = i
			break
		}
	}

	filtered := directory.Filter(m.sess.Users, m.search.Value(), m.school(), m.year())
	items := make([]list.Item, 0, len(filtered))
	for _, u := range filtered {
		items = append(items, item{user: u})
	}
	m.results.SetItems(items)
}

func (m *Model) school() string {
	if len(m.schools) == 0 {
		return directory.All
	}
	return m.schools[m.schoolIdx]
}

func (m *Model) year() string {
	return m.years[m.yearIdx]
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles keys: "/" focuses search, tab/shift+tab cycle the school
// and year filters, arrows move the selection, enter opens the profile.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return cmd
	case "enter":
		if it, ok := m.results.SelectedItem().(item); ok {
			return events.SelectUser(it.user)
		}
		return nil
	case "tab":
		m.schoolIdx = (m.schoolIdx + 1) % len(m.schools)
		m.Refresh()
		return nil
	case "shift+tab":
		m.yearIdx = (m.yearIdx + 1) % len(m.years)
		m.Refresh()
		return nil
	case "esc":
		if m.searching {
			m.searching = false
			m.search.Blur()
			return nil
		}
		return events.Navigate(session.ViewHome)
	case "/":
		if !m.searching {
			m.searching = true
			return m.search.Focus()
		}
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.Refresh()
		return cmd
	}
	return nil
}

// View renders the filter row and results.
func (m *Model) View() string {
	title := m.th.Page.Title.Render("Alumni Directory")
	subtitle := m.th.Page.Subtitle.Render("Reconnect with former classmates and expand your professional network.")

	filters := lipgloss.JoinHorizontal(lipgloss.Top,
		m.search.View(),
		m.th.Page.Faint.Render("  school:"),
		m.th.Page.Accent.Render(m.school()),
		m.th.Page.Faint.Render("  year:"),
		m.th.Page.Accent.Render(m.year()),
	)

	var body string
	if len(m.results.Items()) == 0 {
		body = m.th.Page.Faint.Render("\nNo alumni found. Try adjusting your search or filters.")
	} else {
		body = m.results.View()
	}

	count := m.th.Page.Subtitle.Render(fmt.Sprintf("%d result(s)", len(m.results.Items())))
	help := m.th.Navbar.Hint.Render("/ search · tab school · shift+tab year · enter open profile")

	return strings.Join([]string{title, subtitle, "", filters, count, body, help}, "\n")
}
