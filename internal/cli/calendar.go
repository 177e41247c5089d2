package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/profile"
)

func newCalendarCmd(app *App) *cobra.Command {
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Completion calendar of a preset track",
	}

	newCalendar := func() *calendar.Calendar {
		return calendar.NewCalendar(
			calendar.DefaultCatalog(),
			profile.NewStore(app.Docs),
			calendar.NewToggleCache(1024*1024),
			app.location(),
		)
	}

	calendarCmd.AddCommand(&cobra.Command{
		Use:   "show <track>",
		Short: "Show the completed workout dates of a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, user, err := app.signIn(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			track := profile.Track(args[0])
			def, err := calendar.DefaultCatalog().Track(track)
			if err != nil {
				return err
			}
			dates, err := newCalendar().CompletedDates(cmd.Context(), user.UID, track)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			name := user.Email
			if p := session.Profile(); p != nil {
				name = p.Name
			}
			fmt.Fprintf(out, "%s, %s: %d workouts completed\n", name, def.Title, len(dates))
			for _, d := range dates {
				fmt.Fprintf(out, "  %s\n", d)
			}
			return nil
		},
	})

	calendarCmd.AddCommand(&cobra.Command{
		Use:   "reset <track>",
		Short: "Clear the completed workout dates of a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, user, err := app.signIn(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			track := profile.Track(args[0])
			if err := newCalendar().Reset(cmd.Context(), user.UID, track); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s calendar reset\n", track)
			return nil
		},
	})

	return calendarCmd
}
