package cli

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/tui"
)

// NewPlayCmd runs one visit in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var catalogID, logFile string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the kiosk in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// The terminal belongs to the TUI; logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logOut = f
			}
			cfg, logger, err := loadConfigTo(*configPath, logOut)
			if err != nil {
				return err
			}
			d, err := buildDeps(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer d.close()

			if catalogID == "" {
				catalogID = d.catalogID()
			}
			catalog, err := d.catalogs.GetCatalog(ctx, catalogID)
			if err != nil {
				return err
			}

			visit := app.NewVisit(uuid.NewString(), catalog, feedback.NewBell(os.Stdout, logger), d.settings(), logger)
			defer visit.Close()
			return tui.Run(ctx, visit)
		},
	}
	cmd.Flags().StringVar(&catalogID, "catalog", "", "catalog to play (overrides catalog.id)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
