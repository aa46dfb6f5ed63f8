package announcement

import (
	"fmt"
	"time"
)

// Category is the closed set of announcement kinds.
type Category string

const (
	General Category = "General"
	Event   Category = "Event"
	News    Category = "News"
)

// Categories lists the valid categories in composer order.
func Categories() []Category {
	return []Category{General, Event, News}
}

// ParseCategory maps a string onto the closed set, defaulting to General.
func ParseCategory(s string) Category {
	switch Category(s) {
	case Event:
		return Event
	case News:
		return News
	default:
		return General
	}
}

func (c Category) String() string {
	return string(c)
}

const dateLayout = "2006-01-02"

// Announcement is a single feed item. Announcements are created through the
// composer, prepended to the feed, and never edited or deleted; insertion
// order is the display order, not the Date field.
type Announcement struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Date     string   `json:"date"` // calendar date, YYYY-MM-DD
	Author   string   `json:"author"`
	Category Category `json:"category"`
}

// New builds an announcement dated today.
func New(id, title, content, author string, category Category) Announcement {
	return Announcement{
		ID:       id,
		Title:    title,
		Content:  content,
		Date:     time.Now().Format(dateLayout),
		Author:   author,
		Category: category,
	}
}

// Row returns the table columns for terminal listings.
func (a Announcement) Row() (string, string, string, string) {
	return a.Date, a.Category.String(), a.Title, a.Author
}

func (a Announcement) String() string {
	return fmt.Sprintf("[%s] %s · %s", a.Category, a.Title, a.Author)
}
