package session

import (
	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/announcement"
	"tableflip.dev/reunion/pkg/chat"
)

// Command is a tagged state-change request. Every cross-screen mutation is
// one of these variants dispatched through Apply.
type Command interface{ isCommand() }

// Navigate switches to a view directly (navbar, home buttons).
type Navigate struct{ To View }

// SelectUser reacts to a directory/home card activation. Selecting the
// current user opens the profile editor instead of the read-only profile.
type SelectUser struct{ User alumni.User }

// Connect opens the Messages view with the given counterpart active.
type Connect struct{ UserID string }

// SaveProfile replaces the current-user record wholesale; there are no
// partial-update semantics.
type SaveProfile struct{ User alumni.User }

// AddAnnouncement prepends to the feed. Validation already happened in the
// composer.
type AddAnnouncement struct{ Announcement announcement.Announcement }

// SendMessage appends a chat message to the addressed counterpart's log.
type SendMessage struct {
	CounterpartID string
	Message       chat.Message
}

// ToggleTheme flips the presentation preference.
type ToggleTheme struct{}

func (Navigate) isCommand()        {}
func (SelectUser) isCommand()      {}
func (Connect) isCommand()         {}
func (SaveProfile) isCommand()     {}
func (AddAnnouncement) isCommand() {}
func (SendMessage) isCommand()     {}
func (ToggleTheme) isCommand()     {}

// Apply executes a command against the session. Commands never fail; every
// edge case has a defined safe outcome.
func (s *Session) Apply(cmd Command) {
	switch c := cmd.(type) {
	case Navigate:
		s.view = c.To
	case SelectUser:
		if c.User.ID == s.CurrentUser.ID {
			s.view = ViewEditProfile
			return
		}
		s.selectedUserID = c.User.ID
		s.view = ViewProfile
	case Connect:
		s.activeChatID = c.UserID
		s.view = ViewMessages
	case SaveProfile:
		s.CurrentUser = c.User
		s.view = ViewHome
		s.Status = "Profile updated successfully!"
	case AddAnnouncement:
		s.Announcements = append([]announcement.Announcement{c.Announcement}, s.Announcements...)
		s.Status = "Announcement posted."
	case SendMessage:
		if c.CounterpartID == "" {
			return
		}
		s.Chats.Append(c.CounterpartID, c.Message)
	case ToggleTheme:
		if s.theme == ThemeDark {
			s.theme = ThemeLight
		} else {
			s.theme = ThemeDark
		}
	}
}
