package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/fitjournal/internal/routines"
)

func newRoutinesCmd(app *App) *cobra.Command {
	routinesCmd := &cobra.Command{
		Use:   "routines",
		Short: "Custom routines of the signed in account",
	}

	routinesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List routines, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, user, err := app.signIn(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			list, err := routines.NewStore(app.Docs).List(cmd.Context(), user.UID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d/%d routines\n", len(list), routines.MaxRoutines)
			for _, r := range list {
				fmt.Fprintf(out, "%s  %-30s %d exercises  %s\n", r.ID, r.Name, len(r.Exercises), r.Color)
			}
			return nil
		},
	})

	var (
		description string
		color       string
	)
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, user, err := app.signIn(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			in := routines.RoutineInput{
				Name:  args[0],
				Color: routines.Color(color),
			}
			if description != "" {
				in.Description = &description
			}
			id, err := routines.NewStore(app.Docs).Create(cmd.Context(), user.UID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", id)
			return nil
		},
	}
	createCmd.Flags().StringVar(&description, "description", "", "routine description")
	createCmd.Flags().StringVar(&color, "color", string(routines.Palette[0]), "routine color, one of the palette")
	routinesCmd.AddCommand(createCmd)

	routinesCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, user, err := app.signIn(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			if err := routines.NewStore(app.Docs).Delete(cmd.Context(), user.UID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return routinesCmd
}
