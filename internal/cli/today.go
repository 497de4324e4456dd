package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var revealFlag bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the current puzzle slot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := instant()
		if err != nil {
			return err
		}
		svc, err := newService(nil)
		if err != nil {
			return err
		}
		p, err := svc.At(now)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		n, _ := svc.List().Stats()
		printf(out, "Slot:    %d (%s)\n", p.Slot, p.Label)
		printf(out, "Date:    %s\n", p.Date)
		printf(out, "Next:    %s\n", p.NextAt.Format(time.RFC3339))
		printf(out, "Answers: %d (list %s)\n", n, p.ListVersion)
		if revealFlag {
			printf(out, "Answer:  %s\n", p.Solution)
		}
		return nil
	},
}

func init() {
	addAtFlag(todayCmd)
	todayCmd.Flags().BoolVar(&revealFlag, "reveal", false, "Print the solution")
}
