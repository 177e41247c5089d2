package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/profile"
)

func newTracksCmd() *cobra.Command {
	tracksCmd := &cobra.Command{
		Use:         "tracks",
		Short:       "Preset training tracks",
		Annotations: map[string]string{offlineAnnotation: "true"},
	}

	tracksCmd.AddCommand(&cobra.Command{
		Use:         "list",
		Short:       "List the preset tracks",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, track := range calendar.DefaultCatalog().Tracks() {
				fmt.Fprintf(out, "%-12s %-12s %s\n", track.ID, track.Title, track.Subtitle)
			}
			return nil
		},
	})

	var asYAML bool
	showCmd := &cobra.Command{
		Use:         "show <track>",
		Short:       "Show the days and exercises of a track",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := calendar.DefaultCatalog().Track(profile.Track(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(def); err != nil {
					return err
				}
				return enc.Close()
			}

			fmt.Fprintf(out, "%s - %s\n", def.Title, def.Subtitle)
			for _, day := range def.Days {
				fmt.Fprintf(out, "\n[%s] %s: %s\n", day.ID, day.Label, day.Description)
				for _, ex := range day.Exercises {
					fmt.Fprintf(out, "  %-28s %-10s %d x %s\n", ex.Name, ex.Area, ex.Sets, ex.Reps)
				}
			}
			return nil
		},
	}
	showCmd.Flags().BoolVar(&asYAML, "yaml", false, "print the track definition as yaml")
	tracksCmd.AddCommand(showCmd)

	return tracksCmd
}
