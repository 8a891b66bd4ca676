package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MinusGix/eyeutil"
)

var (
	cfgPath string
	verbose bool

	cfg          *Config
	logger       zerolog.Logger
	defaultOrder eyeutil.Order
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "eyeutil",
	Short: "Inspect fixed binary layouts in files",
	Long: `eyeutil reads bounded windows of binary files and decodes fixed
layouts: hex dumps of regions, scalar values at offsets, and tables of
null-terminated strings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = resolveConfig(cfgPath)
		if err != nil {
			return err
		}
		logger, err = initLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		defaultOrder, err = eyeutil.ParseOrder(cfg.Order)
		if err != nil {
			return fmt.Errorf("config order: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. It is called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "eyeutil: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(level string, verbose bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Str("app", "eyeutil").Logger().Level(lvl), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $EYEUTIL_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
