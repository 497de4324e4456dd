package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robalobadob/slotword/internal/game"
)

var (
	tileBase     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#ffffff"))
	exactStyle   = tileBase.Background(lipgloss.Color("#6aaa64"))
	presentStyle = tileBase.Background(lipgloss.Color("#c9b458"))
	absentStyle  = tileBase.Background(lipgloss.Color("#787c7e"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// renderRow draws one guess as coloured tiles.
func renderRow(guess string, fb game.Feedback) string {
	tiles := make([]string, 0, len(fb))
	for i, r := range []rune(strings.ToUpper(guess)) {
		if i >= len(fb) {
			break
		}
		style := absentStyle
		switch fb[i] {
		case game.MarkExact:
			style = exactStyle
		case game.MarkPresent:
			style = presentStyle
		}
		tiles = append(tiles, style.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the current puzzle in the terminal",
	Long:  "Play the current puzzle. Type one guess per line; an empty line or EOF quits.",
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
		sess, err := svc.NewSession(cmd.Context(), now)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printf(out, "%s\n", messageStyle.Render(sess.Message()))

		sc := bufio.NewScanner(cmd.InOrStdin())
		for sess.State() == game.StatePlaying && sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				break
			}
			fb, err := sess.Guess(line)
			switch {
			case errors.Is(err, game.ErrWrongLength), errors.Is(err, game.ErrInvalidLetter):
				printf(out, "%s\n", messageStyle.Render(fmt.Sprintf("Need %d letters", sess.Cols)))
				continue
			case errors.Is(err, game.ErrNotInList):
				printf(out, "%s\n", messageStyle.Render("Not in word list"))
				continue
			case err != nil:
				return err
			}
			printf(out, "%s  %d/%d\n", renderRow(line, fb), len(sess.Guesses()), sess.Rows)
		}
		if err := sc.Err(); err != nil {
			return err
		}
		if sess.State() != game.StatePlaying {
			printf(out, "%s\n", messageStyle.Render(sess.Message()))
		}
		return nil
	},
}

func init() {
	addAtFlag(playCmd)
}
