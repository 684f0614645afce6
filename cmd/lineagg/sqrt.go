package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lineagg/internal/numeric"
)

func newSqrtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <value>...",
		Short: "Print the square root of each value",
		Long:  "Compute square roots. Non-numeric and negative inputs are reported per value and do not stop the others.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runSqrt,
		// Values are taken verbatim so negative numbers are not read as flags.
		DisableFlagParsing: true,
	}
}

func (a *app) runSqrt(cmd *cobra.Command, args []string) error {
	for _, in := range args {
		v, err := numeric.SquareRoot(in)
		if err != nil {
			fmt.Fprintf(a.stdout, "Error: %s\n", sqrtMessage(err))
			continue
		}
		fmt.Fprintf(a.stdout, "The square root of %s is %v.\n", in, v)
	}
	return nil
}

func sqrtMessage(err error) string {
	switch {
	case errors.Is(err, numeric.ErrNotANumber):
		return "Input must be a valid number."
	case errors.Is(err, numeric.ErrNegative):
		return "Square roots of negative numbers are not supported."
	default:
		return "An unexpected error occurred."
	}
}
