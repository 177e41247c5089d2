package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2beens/fitjournal/internal/onerm"
)

func newOneRMCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "onerm <weight> <reps>",
		Short:       "Estimate the one rep max and the training loads",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
			if err != nil {
				return fmt.Errorf("weight: must be a number")
			}
			reps, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("reps: must be a whole number")
			}

			rm, err := onerm.Estimate(weight, reps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "1RM: %.0f kg\n", rm)
			for _, load := range onerm.Table(rm) {
				fmt.Fprintf(out, "  %3d%%  %.0f kg\n", load.Percent, load.Weight)
			}
			return nil
		},
	}
}
