package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reunion/pkg/printers"
	"tableflip.dev/reunion/pkg/seed"
)

func addAnnouncements(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "announcements",
		Short: "print the announcements feed",
		Example: `
reunion announcements
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Announcements")
			pp.NewLine()
			pp.Announcements(seed.Announcements()...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
