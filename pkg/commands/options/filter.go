package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reunion/pkg/directory"
)

// FilterOptions
type FilterOptions struct {
	School string
	Year   string
}

func AddFilterArgs(cmd *cobra.Command, fo *FilterOptions) {
	cmd.Flags().StringVar(&fo.School, "school", directory.All,
		"Limit results to one school (exact name).")
	cmd.Flags().StringVar(&fo.Year, "year", directory.All,
		`Limit results to a graduation year, or "Older" for years before 2018.`)
}
