// Package cli implements the slotword commands.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/slotword/internal/config"
	"github.com/robalobadob/slotword/internal/puzzle"
	"github.com/robalobadob/slotword/internal/store"
	"github.com/robalobadob/slotword/internal/words"
)

var (
	cfg    config.Config
	atFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "slotword",
	Short:         "Scheduled word puzzle",
	Long:          "A word-guessing puzzle that rotates several times a day. Every player sees the same word in the same slot.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd, todayCmd, playCmd, scoreCmd, buildWordsCmd, hashPasswordCmd)
}

// addAtFlag registers --at on commands that evaluate an instant.
func addAtFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&atFlag, "at", "", "Evaluate at this instant (RFC3339) instead of now")
}

// instant returns --at when set, otherwise the current time.
func instant() (time.Time, error) {
	if atFlag == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, atFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	return t, nil
}

// newService loads the configured word list and builds the puzzle service.
func newService(archive store.Store) (*puzzle.Service, error) {
	list, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return nil, err
	}
	return puzzle.New(cfg.Schedule, cfg.Salt, cfg.MaxGuesses, list, archive)
}

func printf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}
