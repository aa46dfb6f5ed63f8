package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mitchellh/go-wordwrap"

	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/announcement"
)

type PrettyPrint struct {
	ShowBio bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" result")
	default:
		_, _ = c.Println(" results")
	}
}

// Alumni prints a directory listing.
func (pp *PrettyPrint) Alumni(users ...alumni.User) {
	if len(users) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no alumni found, try adjusting your search or filters\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("NAME", "OCCUPATION", "SCHOOL", "YEAR")
	for _, u := range users {
		tbl.AddRow(u.Row())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if pp.ShowBio {
		f := color.New(color.Faint)
		for _, u := range users {
			_, _ = f.Printf("\n%s: %s\n", u.Name, u.Bio)
		}
	}
	fmt.Println("")
}

// Announcements prints the feed in display order.
func (pp *PrettyPrint) Announcements(anns ...announcement.Announcement) {
	if len(anns) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	head := color.New(color.Bold)
	meta := color.New(color.Faint)
	for _, a := range anns {
		_, _ = head.Println(a.Title)
		_, _ = meta.Printf("%s · %s · %s\n", a.Date, a.Category, a.Author)
		fmt.Println(wordwrap.WrapString(a.Content, 72))
		fmt.Println("")
	}
}
