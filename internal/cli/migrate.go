package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/fitjournal/internal/docstore"
)

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the document table and its indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Exec == nil {
				return fmt.Errorf("migrate needs a postgres connection")
			}
			if err := app.Exec(cmd.Context(), docstore.SchemaSQL); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}
