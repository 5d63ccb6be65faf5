package cli

import (
	"docket-cli/internal/store"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded messages (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := store.OpenJournal(cmd.Context(), app.cfg.Journal)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer j.Close()

			recs, err := j.Recent(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": recs})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Max records to return (0 = all)")
	return cmd
}
