package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/slotword/internal/words"
)

var (
	outputFlag string
	lengthFlag int
)

var buildWordsCmd = &cobra.Command{
	Use:   "build-words SOURCE...",
	Short: "Merge plain-text dictionaries into a JSON word list",
	Long:  "Reads one word per line from each SOURCE and writes the sorted, deduplicated words of the puzzle length as a JSON array.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		readers := make([]io.Reader, 0, len(args))
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			readers = append(readers, f)
		}
		length := lengthFlag
		if length <= 0 {
			length = cfg.WordLength
		}
		list, err := words.Build(readers, length)
		if err != nil {
			return err
		}

		if outputFlag == "-" {
			return words.WriteJSON(cmd.OutOrStdout(), list)
		}
		f, err := os.Create(outputFlag)
		if err != nil {
			return err
		}
		if err := words.WriteJSON(f, list); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info().Int("words", len(list)).Str("path", outputFlag).Msg("built word list")
		return nil
	},
}

func init() {
	buildWordsCmd.Flags().StringVarP(&outputFlag, "output", "o", "words.json", "Output file, - for stdout")
	buildWordsCmd.Flags().IntVar(&lengthFlag, "length", 0, "Word length (default $WORD_LENGTH)")
}
