package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MinusGix/eyeutil"
	"github.com/MinusGix/eyeutil/parse"
)

var (
	peekOffset int64
	peekType   string
	peekCount  int
	peekOrder  string
)

// peekCmd represents the peek command.
var peekCmd = &cobra.Command{
	Use:   "peek <file>",
	Short: "Decode scalar values at an offset",
	Long: `Decode one or more fixed-width values starting at an offset and
print them, one per line.

Example:
  eyeutil peek header.bin --offset 8 --type u32 --count 4 --order be`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ord := defaultOrder
		if peekOrder != "" {
			var err error
			ord, err = eyeutil.ParseOrder(peekOrder)
			if err != nil {
				return err
			}
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := f.Seek(peekOffset, io.SeekStart); err != nil {
			return err
		}

		vals, err := decodeScalars(f, ord, peekType, peekCount)
		if err != nil {
			logger.Error().
				Err(err).
				Int64("offset", peekOffset).
				Str("type", peekType).
				Msg("decode failed")
			return err
		}
		for _, v := range vals {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

// decodeScalars reads count values of the named width and renders them.
func decodeScalars(f io.ReadSeeker, ord eyeutil.Order, typ string, count int) ([]string, error) {
	switch typ {
	case "u8":
		return renderAll(parse.Repeat(f, ord, count, parse.Uint8))
	case "i8":
		return renderAll(parse.Repeat(f, ord, count, parse.Int8))
	case "u16":
		return renderAll(parse.Repeat(f, ord, count, parse.Uint16))
	case "i16":
		return renderAll(parse.Repeat(f, ord, count, parse.Int16))
	case "u32":
		return renderAll(parse.Repeat(f, ord, count, parse.Uint32))
	case "i32":
		return renderAll(parse.Repeat(f, ord, count, parse.Int32))
	case "u64":
		return renderAll(parse.Repeat(f, ord, count, parse.Uint64))
	case "i64":
		return renderAll(parse.Repeat(f, ord, count, parse.Int64))
	case "u128":
		return renderAll(parse.Repeat(f, ord, count, parse.Uint128))
	case "i128":
		return renderAll(parse.Repeat(f, ord, count, parse.Int128))
	case "f32":
		return renderAll(parse.Repeat(f, ord, count, parse.Float32))
	case "f64":
		return renderAll(parse.Repeat(f, ord, count, parse.Float64))
	default:
		return nil, fmt.Errorf("scalar type: %w", eyeutil.EnumError(typ))
	}
}

func renderAll[T any](vals []T, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out, nil
}

func init() {
	peekCmd.Flags().Int64Var(&peekOffset, "offset", 0, "decode start in bytes")
	peekCmd.Flags().StringVar(&peekType, "type", "u32", "scalar type: u8..u128, i8..i128, f32, f64")
	peekCmd.Flags().IntVar(&peekCount, "count", 1, "number of values to decode")
	peekCmd.Flags().StringVar(&peekOrder, "order", "", "byte order: little or big (default from config)")
	rootCmd.AddCommand(peekCmd)
}
