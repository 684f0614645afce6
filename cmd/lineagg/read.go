package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineagg/internal/aggregate"
	"lineagg/internal/report"
	"lineagg/internal/source"
)

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Print the lines of a file",
		Long:  "Resolve a file and print its lines unchanged, reporting a categorised message if it cannot be read.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRead,
	}
}

func (a *app) runRead(cmd *cobra.Command, args []string) error {
	cfg, err := a.settings(cmd)
	if err != nil {
		return usageError(err)
	}
	logger := a.logger(cfg)
	ctx, cancel := withTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	src, err := source.NewResolver(logger).Resolve(ctx, args[0])
	if err == nil {
		_, err = aggregate.Scan(ctx, src, func(rec aggregate.Record) {
			fmt.Fprintln(a.stdout, rec.Text)
		})
	}
	if err != nil {
		logger.Printf("read %s: %v", args[0], err)
		fmt.Fprintln(a.stderr, report.Describe(err))
		return runError(err, true)
	}
	return nil
}
