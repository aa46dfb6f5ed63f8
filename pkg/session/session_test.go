package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/announcement"
	"tableflip.dev/reunion/pkg/chat"
)

func newTestSession() *Session {
	current := alumni.User{ID: "me", Name: "Alex Smith", Occupation: "Student"}
	users := []alumni.User{
		current,
		{ID: "1", Name: "Sarah Jenkins"},
		{ID: "2", Name: "Ahmed Bennani"},
	}
	anns := []announcement.Announcement{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	return New(current, users, anns, chat.Log{}, ThemeLight)
}

func TestSelectOtherUserOpensProfile(t *testing.T) {
	s := newTestSession()
	s.Apply(SelectUser{User: alumni.User{ID: "1", Name: "Sarah Jenkins"}})

	if got := s.View(); got != ViewProfile {
		t.Fatalf("view = %v, want Profile", got)
	}
	sel := s.SelectedUser()
	if sel == nil || sel.ID != "1" {
		t.Fatalf("selected user = %v, want id 1", sel)
	}
}

func TestSelectCurrentUserOpensEditProfile(t *testing.T) {
	s := newTestSession()
	s.Apply(SelectUser{User: s.CurrentUser})

	if got := s.View(); got != ViewEditProfile {
		t.Fatalf("view = %v, want EditProfile", got)
	}
}

func TestProfileWithoutSelectionDegradesToDirectory(t *testing.T) {
	s := newTestSession()
	s.Apply(Navigate{To: ViewProfile})

	if got := s.View(); got != ViewDirectory {
		t.Fatalf("view = %v, want Directory fallback", got)
	}
}

func TestConnectOpensMessagesWithActiveChat(t *testing.T) {
	s := newTestSession()
	s.Apply(Connect{UserID: "2"})

	if got := s.View(); got != ViewMessages {
		t.Fatalf("view = %v, want Messages", got)
	}
	if u := s.ActiveChatUser(); u == nil || u.ID != "2" {
		t.Fatalf("active chat user = %v, want id 2", u)
	}
}

func TestSaveProfileReplacesRecordWholesale(t *testing.T) {
	s := newTestSession()
	updated := alumni.User{
		ID:             "me",
		Name:           "Alex Q. Smith",
		Email:          "alex@new.example.com",
		School:         "Casablanca American School",
		GraduationYear: 2022,
		Occupation:     "Film Editor",
		Bio:            "New bio.",
		Location:       "Los Angeles, USA",
		Skills:         []string{"Editing"},
	}
	s.Apply(SaveProfile{User: updated})

	if diff := cmp.Diff(updated, s.CurrentUser); diff != "" {
		t.Fatalf("current user not replaced field-for-field (-want +got):\n%s", diff)
	}
	if got := s.View(); got != ViewHome {
		t.Fatalf("view after save = %v, want Home", got)
	}
	if s.Status == "" {
		t.Fatal("save must surface a synchronous acknowledgment")
	}
}

func TestAddAnnouncementPrepends(t *testing.T) {
	s := newTestSession()
	s.Apply(AddAnnouncement{Announcement: announcement.Announcement{ID: "d"}})

	got := make([]string, 0, len(s.Announcements))
	for _, a := range s.Announcements {
		got = append(got, a.ID)
	}
	if diff := cmp.Diff([]string{"d", "a", "b", "c"}, got); diff != "" {
		t.Fatalf("feed order (-want +got):\n%s", diff)
	}
}

func TestSendMessageTouchesOnlyAddressedConversation(t *testing.T) {
	s := newTestSession()
	s.Chats.Append("1", chat.Message{ID: "m1", Text: "hello sarah"})
	s.Chats.Append("2", chat.Message{ID: "m2", Text: "hello ahmed"})

	s.Apply(SendMessage{CounterpartID: "1", Message: chat.Message{ID: "m3", Text: "again", IsMe: true}})

	if got := len(s.Chats.Conversation("1")); got != 2 {
		t.Fatalf("conversation 1 has %d messages, want 2", got)
	}
	if got := len(s.Chats.Conversation("2")); got != 1 {
		t.Fatalf("conversation 2 has %d messages, want 1", got)
	}
	last := s.Chats.Conversation("1")[1]
	if last.ID != "m3" || !last.IsMe {
		t.Fatalf("appended message = %+v", last)
	}
}

func TestToggleTheme(t *testing.T) {
	s := newTestSession()
	if s.Theme() != ThemeLight {
		t.Fatalf("initial theme = %v", s.Theme())
	}
	s.Apply(ToggleTheme{})
	if s.Theme() != ThemeDark {
		t.Fatalf("theme after toggle = %v", s.Theme())
	}
	s.Apply(ToggleTheme{})
	if s.Theme() != ThemeLight {
		t.Fatalf("theme after second toggle = %v", s.Theme())
	}
}

func TestIsAdminMatchesSeededIdentifier(t *testing.T) {
	s := newTestSession()
	if !s.IsAdmin("me") {
		t.Fatal("current user should pass the placeholder admin check")
	}
	if s.IsAdmin("1") {
		t.Fatal("non-matching identifier must not pass")
	}
}

func TestChatPartnersExcludesCurrentUser(t *testing.T) {
	s := newTestSession()
	for _, u := range s.ChatPartners() {
		if u.ID == s.CurrentUser.ID {
			t.Fatal("current user listed as a chat partner")
		}
	}
	if got := len(s.ChatPartners()); got != 2 {
		t.Fatalf("partners = %d, want 2", got)
	}
}
