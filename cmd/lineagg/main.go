// Package main provides the lineagg command line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lineagg/internal/config"
)

// app holds the output streams and flag values shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)

	configPath     string
	timeout        time.Duration
	verbose        bool
	noColor        bool
	format         string
	reportPath     string
	rejectNegative bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lineagg",
		Short:         "Validated file-line aggregation",
		Long:          "lineagg sums the integer lines of a text file, skipping and reporting malformed lines.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Abort after this long (0 disables)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every event and raw error causes to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newAggregateCmd(a), newReadCmd(a), newSqrtCmd(a))
	return root
}

// settings merges defaults, the config file, the environment and flags, in
// increasing order of precedence.
func (a *app) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(a.lookup); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("report") {
		cfg.Report = a.reportPath
	}
	if flags.Changed("reject-negative") {
		cfg.RejectNegative = a.rejectNegative
	}
	return cfg, cfg.Validate()
}

func (a *app) logger(cfg config.Config) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(a.stderr, "lineagg: ", log.LstdFlags)
}

// colored reports whether ANSI colour should be used on stdout.
func (a *app) colored(cfg config.Config) bool {
	return !cfg.NoColor && !color.NoColor && a.stdout == os.Stdout
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) int {
	a := &app{stdout: stdout, stderr: stderr, lookup: lookup}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.shown {
			fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		}
		return ee.code
	}
	// Anything cobra rejected before a command ran is a usage problem.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitUsage
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}
