// Package messagespage renders the conversation list and the active
// chat transcript with a compose line.
package messagespage

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/chat"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/tui/events"
	"tableflip.dev/reunion/pkg/tui/theme"
)

// Model is the messages screen.
type Model struct {
	id   events.ComponentID
	th   theme.Theme
	sess *session.Session

	input    textinput.Model
	partners []alumni.User

	width  int
	height int
}

// New builds the messages screen.
func New(id events.ComponentID, th theme.Theme, sess *session.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.Focus()

	m := &Model{id: id, th: th, sess: sess, input: ti}
	m.Refresh()
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetTheme swaps style variants.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// InputActive reports that the compose line captures keystrokes.
func (m *Model) InputActive() bool { return true }

// SetSize records the layout area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(max(20, width-30))
}

// Refresh rebuilds the partner list from the session.
func (m *Model) Refresh() {
	m.partners = m.sess.ChatPartners()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update drives the screen. Up/down switch conversations, enter sends,
// esc leaves for the directory.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up":
		return m.step(-1)
	case "down":
		return m.step(1)
	case "enter":
		return m.send()
	case "esc":
		return events.Navigate(session.ViewDirectory)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// step moves the active conversation by delta within the partner list.
func (m *Model) step(delta int) tea.Cmd {
	if len(m.partners) == 0 {
		return nil
	}
	idx := m.activeIndex()
	idx = (idx + delta + len(m.partners)) % len(m.partners)
	return events.Connect(m.partners[idx].ID)
}

func (m *Model) activeIndex() int {
	for i, p := range m.partners {
		if p.ID == m.sess.ActiveChatID() {
			return i
		}
	}
	return 0
}

func (m *Model) send() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	partner := m.sess.ActiveChatUser()
	if text == "" || partner == nil {
		return nil
	}
	m.input.SetValue("")
	msg := chat.NewMessage(text)
	id := partner.ID
	return func() tea.Msg {
		return events.SendMessageMsg{CounterpartID: id, Message: msg}
	}
}

// View lays out the sidebar next to the transcript.
func (m *Model) View() string {
	sidebar := m.renderSidebar()
	transcript := m.renderTranscript()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", transcript)
	help := m.th.Navbar.Hint.Render("up/down switch chat · enter send · esc back")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.th.Page.Title.Render("Messages"),
		"",
		body,
		"",
		help,
	)
}

func (m *Model) renderSidebar() string {
	rows := []string{m.th.Page.Accent.Render("Conversations")}
	if len(m.partners) == 0 {
		rows = append(rows, m.th.Page.Faint.Render("No conversations yet."))
	}
	for _, p := range m.partners {
		line := p.Name
		if p.ID == m.sess.ActiveChatID() {
			rows = append(rows, m.th.Card.Selected.Render(line))
		} else {
			rows = append(rows, m.th.Card.Meta.Render(" "+line))
		}
	}
	return lipgloss.NewStyle().Width(24).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderTranscript() string {
	partner := m.sess.ActiveChatUser()
	if partner == nil {
		return m.th.Page.Faint.Render("Pick a conversation, or connect with someone from the directory.")
	}

	rows := []string{m.th.Card.Title.Render(partner.Name), ""}
	log := m.sess.Chats.Conversation(partner.ID)
	if len(log) == 0 {
		rows = append(rows, m.th.Page.Faint.Render("Say hello to "+partner.FirstName()+"."))
	}
	wide := max(30, m.width-32)
	for _, msg := range log {
		bubble := m.th.Chat.BubbleThem
		align := lipgloss.Left
		if msg.IsMe {
			bubble = m.th.Chat.BubbleMe
			align = lipgloss.Right
		}
		block := lipgloss.JoinVertical(align,
			bubble.Render(msg.Text),
			m.th.Chat.Stamp.Render(msg.Time),
		)
		rows = append(rows, lipgloss.NewStyle().Width(wide).Align(align).Render(block))
	}
	rows = append(rows, "", m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
