// Package session is the single source of truth for what is on screen and
// for the shared collections. Screens read from a Session and mutate it only
// by dispatching Commands through Apply, so every cross-screen flow is
// testable without a UI harness.
package session

import (
	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/announcement"
	"tableflip.dev/reunion/pkg/chat"
)

// View enumerates the screens.
type View int

const (
	ViewHome View = iota
	ViewDirectory
	ViewProfile
	ViewMessages
	ViewEditProfile
	ViewAnnouncements
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewDirectory:
		return "Directory"
	case ViewProfile:
		return "Profile"
	case ViewMessages:
		return "Messages"
	case ViewEditProfile:
		return "Edit Profile"
	case ViewAnnouncements:
		return "Announcements"
	}
	return "Home"
}

// Theme is the two-state presentation preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Session owns the collections and all navigation/selection state for one
// run. There is exactly one writer at any instant (the active user action),
// so no locking is needed.
type Session struct {
	CurrentUser   alumni.User
	Users         []alumni.User
	Announcements []announcement.Announcement
	Chats         chat.Log

	view           View
	selectedUserID string
	activeChatID   string
	theme          Theme

	// Status carries the last synchronous acknowledgment (profile saved,
	// announcement posted) for the UI to surface.
	Status string
}

// New seeds a session. The ambient theme is the caller's boot-time probe of
// the terminal background.
func New(current alumni.User, users []alumni.User, anns []announcement.Announcement, chats chat.Log, theme Theme) *Session {
	if chats == nil {
		chats = chat.Log{}
	}
	if theme == "" {
		theme = ThemeLight
	}
	return &Session{
		CurrentUser:   current,
		Users:         users,
		Announcements: anns,
		Chats:         chats,
		view:          ViewHome,
		theme:         theme,
	}
}

// View reports the active screen. A Profile view without a selected user
// degrades to Directory rather than erroring.
func (s *Session) View() View {
	if s.view == ViewProfile && s.SelectedUser() == nil {
		return ViewDirectory
	}
	return s.view
}

// SelectedUser resolves the selected-profile reference against the live
// collection, or nil when nothing valid is selected.
func (s *Session) SelectedUser() *alumni.User {
	return s.findUser(s.selectedUserID)
}

// ActiveChatUser resolves the active chat counterpart, or nil.
func (s *Session) ActiveChatUser() *alumni.User {
	return s.findUser(s.activeChatID)
}

// ActiveChatID returns the active chat counterpart's ID ("" when none).
func (s *Session) ActiveChatID() string {
	return s.activeChatID
}

func (s *Session) findUser(id string) *alumni.User {
	if id == "" {
		return nil
	}
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// Theme returns the current presentation preference.
func (s *Session) Theme() Theme {
	return s.theme
}

// IsAdmin reports whether the current user may post announcements. The check
// is a placeholder policy keyed on the seeded identifier, not a real role.
func (s *Session) IsAdmin(adminID string) bool {
	return s.CurrentUser.ID == adminID
}

// ChatPartners lists everyone except the current user, in directory order.
func (s *Session) ChatPartners() []alumni.User {
	out := make([]alumni.User, 0, len(s.Users))
	for _, u := range s.Users {
		if u.ID == s.CurrentUser.ID {
			continue
		}
		out = append(out, u)
	}
	return out
}
