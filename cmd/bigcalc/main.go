package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/govalues/bignum/internal/config"
	"github.com/govalues/bignum/internal/logging"
	"github.com/govalues/bignum/internal/render"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cmdMain = &cobra.Command{
	Use:               "bigcalc",
	Short:             "Arbitrary-precision integer and rational calculator",
	PersistentPreRunE: loadConfig,
	Run:               printUsageAndExit1,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var flagMain struct {
	ConfigFile string
}

// Set by loadConfig before any subcommand runs.
var (
	cfg    *config.Config
	logger = zerolog.Nop()
)

func init() {
	def := config.Default()
	flags := cmdMain.PersistentFlags()
	flags.StringVarP(&flagMain.ConfigFile, "config", "c", "", "Configuration file (yaml, toml or json)")
	flags.String("mode", string(def.Mode), "Arithmetic mode: integer or rational")
	flags.Int("precision", def.Precision, "Fractional digits of decimal expansions")
	flags.StringP("output", "o", string(def.Output), "Output format: text, json, yaml or table")
	flags.Bool("color", def.Color, "Colorize text output")
	flags.String("log-level", def.LogLevel, "Log level")
	flags.String("log-format", def.LogFormat, "Log format: plain, text or json")
}

func main() {
	err := cmdMain.Execute()
	if err != nil {
		fatalf("%v", err)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(flagMain.ConfigFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	l, err := logging.New(cmd.ErrOrStderr(), c.LogLevel, c.LogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	cfg, logger = c, l
	logger.Debug().Str("mode", string(cfg.Mode)).Int("precision", cfg.Precision).Str("output", string(cfg.Output)).Msg("Loaded configuration")
	return nil
}

// writeResults renders results to the command's output in the configured format.
func writeResults(cmd *cobra.Command, results []render.Result) error {
	opts := render.Options{Color: cfg.Color && !color.NoColor}
	return render.Write(cmd.OutOrStdout(), cfg.Output, results, opts)
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
