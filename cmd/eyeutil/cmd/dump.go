package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MinusGix/eyeutil/internal/hexdump"
	"github.com/MinusGix/eyeutil/stream"
)

var (
	dumpOffset int64
	dumpLength int64
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Hex dump a bounded window of a file",
	Long: `Dump a window of a file as hex rows with absolute offsets. Reads go
through a bounded view, so nothing outside the window is touched; a window
reaching past the end of the file dumps what exists.

Example:
  eyeutil dump firmware.bin --offset 0x0 --length 64`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		length := dumpLength
		if length < 0 {
			length = cfg.DumpLength
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := f.Seek(dumpOffset, io.SeekStart); err != nil {
			return err
		}
		region, err := stream.At(f, length)
		if err != nil {
			return err
		}
		logger.Debug().
			Int64("start", region.Start()).
			Int64("end", region.End()).
			Str("file", args[0]).
			Msg("dump window")

		data, err := stream.ReadToEnd(region)
		if err != nil {
			return err
		}
		return hexdump.Write(cmd.OutOrStdout(), data, region.Start())
	},
}

func init() {
	dumpCmd.Flags().Int64Var(&dumpOffset, "offset", 0, "window start in bytes")
	dumpCmd.Flags().Int64Var(&dumpLength, "length", -1, "window length in bytes (default from config)")
	rootCmd.AddCommand(dumpCmd)
}
