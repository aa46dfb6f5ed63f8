package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reunion/pkg/assist"
	"tableflip.dev/reunion/pkg/logging"
	"tableflip.dev/reunion/pkg/seed"
	"tableflip.dev/reunion/pkg/session"
	"tableflip.dev/reunion/pkg/store"
	"tableflip.dev/reunion/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: base.Wrap80("Launch the interactive alumni network."),
		Long: base.Wrap80("Launch the full-screen terminal UI: browse the directory, " +
			"view profiles, message alumni, and follow announcements. Set api_key in " +
			".reunion.yaml (or GEMINI_API_KEY) to enable AI assists."),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.BasePath, cfg.Verbose)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
			}
			defer func() { _ = log.Sync() }()

			prefs, err := store.Open(cfg)
			if err != nil {
				log.Warn("preference store unavailable")
				prefs = nil
			}

			theme := session.Theme(prefs.Theme())
			if theme != session.ThemeLight && theme != session.ThemeDark {
				theme = session.ThemeLight
				if termenv.HasDarkBackground() {
					theme = session.ThemeDark
				}
			}

			var gen assist.Generator
			if cfg.APIKey != "" {
				g, err := assist.NewGemini(cmd.Context(), cfg.APIKey, "")
				if err != nil {
					log.Warn("generative assists disabled")
				} else {
					gen = g
				}
			}
			svc := assist.NewService(gen, log)

			sess := session.New(seed.Profile(), seed.Users(), seed.Announcements(), seed.Chats(), theme)
			return app.Run(sess, svc, prefs, log, seed.CurrentUserID)
		},
	}
	topLevel.AddCommand(cmd)
}
