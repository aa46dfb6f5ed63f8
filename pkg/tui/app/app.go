// Package app hosts the Bubble Tea program for the reunion TUI. The root
// model owns the session, routes input to the active screen, and applies
// the state commands screens emit.
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/store"
	"tableflip.dev/reunion/pkg/tui/components/announcementspage"
	"tableflip.dev/reunion/pkg/tui/components/directorypage"
	"tableflip.dev/reunion/pkg/tui/components/editprofilepage"
	"tableflip.dev/reunion/pkg/tui/components/homepage"
	"tableflip.dev/reunion/pkg/tui/components/messagespage"
	"tableflip.dev/reunion/pkg/tui/components/profilepage"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

type navTab struct {
	label string
	view  session.View
}

var navTabs = []navTab{
	{"Home", session.ViewHome},
	{"Directory", session.ViewDirectory},
	{"Messages", session.ViewMessages},
	{"Announcements", session.ViewAnnouncements},
}

// Model contains UI state.
type Model struct {
	sess  *session.Session
	svc   *assist.Service
	prefs *store.Preferences
	log   *zap.Logger
	th    theme.Theme

	home          *homepage.Model
	directory     *directorypage.Model
	profile       *profilepage.Model
	edit          *editprofilepage.Model
	messages      *messagespage.Model
	announcements *announcementspage.Model

	status     string
	termWidth  int
	termHeight int
}

// New constructs the root model. adminID gates the announcement composer;
// prefs and log may be nil.
func New(sess *session.Session, svc *assist.Service, prefs *store.Preferences, log *zap.Logger, adminID string) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	th := theme.ForSession(sess.Theme())

	return &Model{
		sess:          sess,
		svc:           svc,
		prefs:         prefs,
		log:           log,
		th:            th,
		home:          homepage.New("home", th, sess),
		directory:     directorypage.New("directory", th, sess),
		profile:       profilepage.New("profile", th, sess, svc),
		edit:          editprofilepage.New("editprofile", th, sess, svc),
		messages:      messagespage.New("messages", th, sess),
		announcements: announcementspage.New("announcements", th, sess, svc, adminID),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.activeInputCapturing() {
			if cmd, handled := m.globalKey(msg.String()); handled {
				return m, cmd
			}
		}
		return m, m.routeToActive(msg)

	case events.NavigateMsg:
		m.apply(session.Navigate{To: msg.To})
		return m, nil

	case events.SelectUserMsg:
		m.apply(session.SelectUser{User: msg.User})
		m.profile.Reset()
		return m, nil

	case events.ConnectMsg:
		m.apply(session.Connect{UserID: msg.UserID})
		return m, nil

	case events.SaveProfileMsg:
		m.apply(session.SaveProfile{User: msg.User})
		m.log.Debug("profile saved", zap.String("user", msg.User.ID))
		return m, nil

	case events.PostAnnouncementMsg:
		m.apply(session.AddAnnouncement{Announcement: msg.Announcement})
		m.log.Debug("announcement posted", zap.String("title", msg.Announcement.Title))
		return m, nil

	case events.SendMessageMsg:
		m.apply(session.SendMessage{CounterpartID: msg.CounterpartID, Message: msg.Message})
		return m, nil

	case events.ToggleThemeMsg:
		m.apply(session.ToggleTheme{})
		m.th = theme.ForSession(m.sess.Theme())
		m.applyTheme()
		if err := m.prefs.SetTheme(string(m.sess.Theme())); err != nil {
			m.log.Warn("persisting theme preference", zap.Error(err))
		}
		return m, nil

	case events.StatusMsg:
		m.status = msg.Text
		return m, nil

	// Generative results are addressed by component; deliver them even
	// when the user has since navigated elsewhere so the owning screen
	// can compare tokens and settle its spinner.
	case events.BioReadyMsg:
		return m, m.edit.Update(msg)
	case events.IcebreakersReadyMsg:
		return m, m.profile.Update(msg)
	case events.DraftReadyMsg:
		return m, m.announcements.Update(msg)
	}

	return m, m.routeToActive(msg)
}

// globalKey handles navbar shortcuts when no screen is capturing text.
func (m *Model) globalKey(key string) (tea.Cmd, bool) {
	switch key {
	case "q":
		return tea.Quit, true
	case "h":
		m.apply(session.Navigate{To: session.ViewHome})
	case "d":
		m.apply(session.Navigate{To: session.ViewDirectory})
	case "m":
		m.apply(session.Navigate{To: session.ViewMessages})
	case "a":
		m.apply(session.Navigate{To: session.ViewAnnouncements})
	case "e":
		m.apply(session.Navigate{To: session.ViewEditProfile})
	case "t":
		return func() tea.Msg { return events.ToggleThemeMsg{} }, true
	default:
		return nil, false
	}
	return nil, true
}

// apply dispatches a session command and refreshes the screens whose
// backing data it may have changed.
func (m *Model) apply(cmd session.Command) {
	m.sess.Status = ""
	m.sess.Apply(cmd)
	m.status = m.sess.Status

	switch cmd.(type) {
	case session.Navigate, session.SelectUser:
		if m.sess.View() == session.ViewEditProfile {
			m.edit.Refresh()
		}
		if m.sess.View() == session.ViewDirectory {
			m.directory.Refresh()
		}
	case session.Connect, session.SendMessage:
		m.messages.Refresh()
	case session.SaveProfile:
		m.directory.Refresh()
		m.edit.Refresh()
	}
}

func (m *Model) activeInputCapturing() bool {
	switch m.sess.View() {
	case session.ViewDirectory:
		return m.directory.InputActive()
	case session.ViewProfile:
		return m.profile.InputActive()
	case session.ViewMessages:
		return m.messages.InputActive()
	case session.ViewEditProfile:
		return m.edit.InputActive()
	case session.ViewAnnouncements:
		return m.announcements.InputActive()
	}
	return false
}

func (m *Model) routeToActive(msg tea.Msg) tea.Cmd {
	switch m.sess.View() {
	case session.ViewHome:
		return m.home.Update(msg)
	case session.ViewDirectory:
		return m.directory.Update(msg)
	case session.ViewProfile:
		return m.profile.Update(msg)
	case session.ViewMessages:
		return m.messages.Update(msg)
	case session.ViewEditProfile:
		return m.edit.Update(msg)
	case session.ViewAnnouncements:
		return m.announcements.Update(msg)
	}
	return nil
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.termWidth
	h := m.termHeight - 3
	m.home.SetSize(w, h)
	m.directory.SetSize(w, h)
	m.profile.SetSize(w, h)
	m.edit.SetSize(w, h)
	m.messages.SetSize(w, h)
	m.announcements.SetSize(w, h)
}

func (m *Model) applyTheme() {
	m.home.SetTheme(m.th)
	m.directory.SetTheme(m.th)
	m.profile.SetTheme(m.th)
	m.edit.SetTheme(m.th)
	m.messages.SetTheme(m.th)
	m.announcements.SetTheme(m.th)
}

// View implements tea.Model.
func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.renderNavbar())

	switch m.sess.View() {
	case session.ViewHome:
		sections = append(sections, m.home.View())
	case session.ViewDirectory:
		sections = append(sections, m.directory.View())
	case session.ViewProfile:
		sections = append(sections, m.profile.View())
	case session.ViewMessages:
		sections = append(sections, m.messages.View())
	case session.ViewEditProfile:
		sections = append(sections, m.edit.View())
	case session.ViewAnnouncements:
		sections = append(sections, m.announcements.View())
	}

	if m.status != "" {
		sections = append(sections, m.th.Navbar.Status.Render(m.status))
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderNavbar() string {
	mode := "light"
	if m.th.Dark {
		mode = "dark"
	}
	tabs := []string{m.th.Page.Accent.Render("Reunion")}
	for _, t := range navTabs {
		style := m.th.Navbar.Tab
		if m.sess.View() == t.view {
			style = m.th.Navbar.ActiveTab
		}
		tabs = append(tabs, style.Render(t.label))
	}
	tabs = append(tabs, m.th.Navbar.Hint.Render(" t theme("+mode+") · q quit"))
	return m.th.Navbar.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// Run launches the interactive TUI program.
func Run(sess *session.Session, svc *assist.Service, prefs *store.Preferences, log *zap.Logger, adminID string) error {
	p := tea.NewProgram(New(sess, svc, prefs, log, adminID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
