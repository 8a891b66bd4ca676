package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MinusGix/eyeutil/parse"
	"github.com/MinusGix/eyeutil/stream"
	"github.com/MinusGix/eyeutil/zstring"
)

var (
	strOffset int64
	strLength int64
	strMinLen int
)

// stringsCmd represents the strings command.
var stringsCmd = &cobra.Command{
	Use:   "strings <file>",
	Short: "Extract a table of null-terminated strings from a window",
	Long: `Read a window that holds null-terminated strings back to back and
print each one. The window must be exactly a string table: a trailing byte
run without a terminator is an error, not a partial result.

Example:
  eyeutil strings rom.bin --offset 0x400 --length 128 --min-len 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		length := strLength
		if length < 0 {
			total, err := stream.Length(f)
			if err != nil {
				return err
			}
			length = total - strOffset
			if length < 0 {
				return fmt.Errorf("offset %d past end of %s", strOffset, args[0])
			}
		}
		if _, err := f.Seek(strOffset, io.SeekStart); err != nil {
			return err
		}
		region, err := stream.At(f, length)
		if err != nil {
			return err
		}

		table, err := parse.Many(region, defaultOrder, zstring.Parse)
		if err != nil {
			logger.Error().
				Err(err).
				Int64("start", region.Start()).
				Int64("end", region.End()).
				Msg("window is not a clean string table")
			return err
		}

		minLen := strMinLen
		if minLen < 0 {
			minLen = cfg.MinStrLen
		}
		logger.Debug().Int("strings", len(table)).Int("min_len", minLen).Msg("table parsed")

		for _, z := range table {
			if z.Len() < minLen {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), z.String())
		}
		return nil
	},
}

func init() {
	stringsCmd.Flags().Int64Var(&strOffset, "offset", 0, "window start in bytes")
	stringsCmd.Flags().Int64Var(&strLength, "length", -1, "window length in bytes (default to end of file)")
	stringsCmd.Flags().IntVar(&strMinLen, "min-len", -1, "drop strings shorter than this (default from config)")
	rootCmd.AddCommand(stringsCmd)
}
