package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reunion/pkg/session"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI. Two variants
// exist, mirroring the app's light/dark preference.
type Theme struct {
	Dark bool

	Navbar NavbarTheme
	Page   PageTheme
	Card   CardTheme
	Form   FormTheme
	Chat   ChatTheme
}

// NavbarTheme groups styles for the top tab bar and status line.
type NavbarTheme struct {
	Bar       lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Status    lipgloss.Style
	Hint      lipgloss.Style
}

// PageTheme styles page chrome shared by every screen.
type PageTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Faint    lipgloss.Style
	Accent   lipgloss.Style
}

// CardTheme styles framed blocks (profile cards, announcements).
type CardTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
}

// FormTheme styles the editing screens.
type FormTheme struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
}

// ChatTheme styles the messages screen.
type ChatTheme struct {
	BubbleMe   lipgloss.Style
	BubbleThem lipgloss.Style
	Stamp      lipgloss.Style
}

var (
	indigo     = lipgloss.Color("63")
	indigoDeep = lipgloss.Color("57")
	grayFaint  = lipgloss.Color("240")
	grayLight  = lipgloss.Color("250")
	nearWhite  = lipgloss.Color("255")
	nearBlack  = lipgloss.Color("235")
)

// Light returns the light-background variant.
func Light() Theme {
	return build(false)
}

// Dark returns the dark-background variant.
func Dark() Theme {
	return build(true)
}

// ForSession maps the session preference onto a theme variant.
func ForSession(t session.Theme) Theme {
	if t == session.ThemeDark {
		return Dark()
	}
	return Light()
}

func build(dark bool) Theme {
	text := nearBlack
	dim := grayFaint
	surface := nearWhite
	if dark {
		text = nearWhite
		dim = grayLight
		surface = nearBlack
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1)

	return Theme{
		Dark: dark,
		Navbar: NavbarTheme{
			Bar:       lipgloss.NewStyle().Foreground(text),
			Tab:       lipgloss.NewStyle().Foreground(dim).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Foreground(surface).Background(indigo).Bold(true).Padding(0, 1),
			Status:    lipgloss.NewStyle().Foreground(indigo).Italic(true),
			Hint:      lipgloss.NewStyle().Foreground(dim),
		},
		Page: PageTheme{
			Title:    lipgloss.NewStyle().Foreground(text).Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(dim),
			Body:     lipgloss.NewStyle().Foreground(text),
			Faint:    lipgloss.NewStyle().Foreground(dim).Italic(true),
			Accent:   lipgloss.NewStyle().Foreground(indigo).Bold(true),
		},
		Card: CardTheme{
			Frame:    frame,
			Title:    lipgloss.NewStyle().Foreground(text).Bold(true),
			Meta:     lipgloss.NewStyle().Foreground(dim),
			Selected: frame.BorderForeground(indigo),
			Badge:    lipgloss.NewStyle().Foreground(surface).Background(indigoDeep).Padding(0, 1),
		},
		Form: FormTheme{
			Label:        lipgloss.NewStyle().Foreground(dim),
			FocusedLabel: lipgloss.NewStyle().Foreground(indigo).Bold(true),
			Help:         lipgloss.NewStyle().Foreground(dim),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Chat: ChatTheme{
			BubbleMe:   lipgloss.NewStyle().Foreground(surface).Background(indigo).Padding(0, 1),
			BubbleThem: frame,
			Stamp:      lipgloss.NewStyle().Foreground(dim).Faint(true),
		},
	}
}
