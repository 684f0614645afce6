package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"lineagg/internal/aggregate"
	"lineagg/internal/config"
	"lineagg/internal/report"
	"lineagg/internal/source"
)

func newAggregateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate <path>",
		Short: "Sum the integer lines of a file",
		Long: "Resolve a file, read it line by line and sum every line that is a base-10 integer. " +
			"Malformed lines are reported and skipped; they do not change the exit code.",
		Args: cobra.ExactArgs(1),
		RunE: a.runAggregate,
	}
	cmd.Flags().StringVarP(&a.format, "format", "f", config.FormatText, "Output format: text or json")
	cmd.Flags().StringVarP(&a.reportPath, "report", "r", "", "Also write a JSON report to this file")
	cmd.Flags().BoolVar(&a.rejectNegative, "reject-negative", false, "Treat negative integers as malformed")
	return cmd
}

func (a *app) runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := a.settings(cmd)
	if err != nil {
		return usageError(err)
	}
	logger := a.logger(cfg)
	ctx, cancel := withTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	path := args[0]
	doc := report.NewDocumentReporter(path, cfg.Verbose)

	src, err := source.NewResolver(logger).Resolve(ctx, path)
	if err != nil {
		logger.Printf("resolve failed: %v", err)
		doc.Fail(err)
		a.finish(cfg, doc, logger)
		fmt.Fprintln(a.stderr, report.Describe(err))
		return runError(err, true)
	}

	reporters := report.Multi{}
	if cfg.Format == config.FormatText {
		reporters = append(reporters, report.NewConsole(a.stdout, a.stderr, a.colored(cfg)))
	}
	reporters = append(reporters, doc)
	if cfg.Verbose {
		reporters = append(reporters, report.NewLog(logger))
	}

	agg := aggregate.NewAggregator(aggregate.Options{RejectNegative: cfg.RejectNegative}, logger)
	_, err = agg.Run(ctx, src, reporters)
	a.finish(cfg, doc, logger)
	if err != nil {
		if cfg.Format != config.FormatText {
			fmt.Fprintln(a.stderr, report.Describe(err))
		}
		return runError(err, true)
	}
	return nil
}

// finish emits the JSON document when requested. A report file that cannot
// be written is logged and noted on stderr but does not change the outcome.
func (a *app) finish(cfg config.Config, doc *report.DocumentReporter, logger *log.Logger) {
	d := doc.Document()
	if cfg.Format == config.FormatJSON {
		if err := report.EncodeDocument(a.stdout, d); err != nil {
			logger.Printf("encode report: %v", err)
		}
	}
	if cfg.Report == "" {
		return
	}
	if err := report.WriteDocument(cfg.Report, d); err != nil {
		logger.Printf("write report %s: %v", cfg.Report, err)
		fmt.Fprintf(a.stderr, "Warning: could not write report to %s.\n", cfg.Report)
	}
}
