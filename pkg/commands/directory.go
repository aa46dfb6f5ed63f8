package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/reunion/pkg/commands/options"
	"tableflip.dev/reunion/pkg/directory"
	"tableflip.dev/reunion/pkg/printers"
	"tableflip.dev/reunion/pkg/seed"
)

func addDirectory(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	showBio := false

	cmd := &cobra.Command{
		Use:   "directory [query]",
		Short: "search the alumni directory",
		Example: `
reunion directory
reunion directory designer
reunion directory --school "Rabat American School" --year Older
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			users := directory.Filter(seed.Users(), query, fo.School, fo.Year)

			pp := printers.PrettyPrint{ShowBio: showBio}
			pp.NewLine()
			pp.TitleWithCount("Alumni Directory", len(users))
			pp.Alumni(users...)
			return nil
		},
	}

	options.AddFilterArgs(cmd, fo)
	cmd.Flags().BoolVar(&showBio, "bio", false, "Also print each bio.")

	topLevel.AddCommand(cmd)
}
