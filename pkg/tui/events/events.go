// Package events defines the messages screens use to talk to the root model
// and to receive generative-text results.
package events

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/announcement"
	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/chat"
	"tableflip.dev/reunion/pkg/session"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// NavigateMsg requests a view change.
type NavigateMsg struct {
	To session.View
}

// SelectUserMsg is emitted when a user card is activated in the directory or
// on the home screen.
type SelectUserMsg struct {
	User alumni.User
}

// ConnectMsg is emitted when the viewer starts a chat from a profile.
type ConnectMsg struct {
	UserID string
}

// SaveProfileMsg carries the finalized profile record upward on submit.
type SaveProfileMsg struct {
	User alumni.User
}

// PostAnnouncementMsg carries a composed announcement upward on submit.
type PostAnnouncementMsg struct {
	Announcement announcement.Announcement
}

// SendMessageMsg appends a chat message to one counterpart's conversation.
type SendMessageMsg struct {
	CounterpartID string
	Message       chat.Message
}

// ToggleThemeMsg flips the presentation preference.
type ToggleThemeMsg struct{}

// StatusMsg surfaces a transient acknowledgment in the navbar.
type StatusMsg struct {
	Text string
}

// BioReadyMsg delivers an enhanced bio to the profile editor. Seq is the
// generation token the editor compares against; stale results are dropped.
type BioReadyMsg struct {
	Component ComponentID
	Seq       int
	Bio       string
}

// IcebreakersReadyMsg delivers icebreaker suggestions to the profile view.
type IcebreakersReadyMsg struct {
	Component   ComponentID
	Seq         int
	Suggestions []string
}

// DraftReadyMsg delivers a generated announcement draft to the composer.
type DraftReadyMsg struct {
	Component ComponentID
	Seq       int
	Draft     assist.Draft
}

// Navigate builds the command form of NavigateMsg.
func Navigate(to session.View) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// SelectUser builds the command form of SelectUserMsg.
func SelectUser(u alumni.User) tea.Cmd {
	return func() tea.Msg { return SelectUserMsg{User: u} }
}

// Connect builds the command form of ConnectMsg.
func Connect(userID string) tea.Cmd {
	return func() tea.Msg { return ConnectMsg{UserID: userID} }
}

// Status builds the command form of StatusMsg.
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
