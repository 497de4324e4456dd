package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/slotword/internal/game"
)

var scoreCmd = &cobra.Command{
	Use:   "score GUESS SOLUTION",
	Short: "Print the feedback for a guess against a solution",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fb, err := game.Score(strings.ToLower(args[0]), strings.ToLower(args[1]))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		marks := make([]string, len(fb))
		for i, m := range fb {
			marks[i] = string(m)
		}
		printf(out, "%s\n%s\n", renderRow(strings.ToLower(args[0]), fb), strings.Join(marks, " "))
		return nil
	},
}
