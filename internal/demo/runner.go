// Package demo runs the weighted average calculator over configured example
// datasets, printing results and reporting rejected input.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/soltixdb/wavg/internal/config"
	"github.com/soltixdb/wavg/internal/logging"
	"github.com/soltixdb/wavg/internal/weighted"
)

// Runner evaluates datasets one after another
type Runner struct {
	out       io.Writer
	logger    *logging.Logger
	precision int
}

// Summary counts the outcome of a Run
type Summary struct {
	Computed int
	Failed   int
}

// NewRunner creates a runner that prints results to out with the given number
// of decimal places. A nil logger falls back to the global logger.
func NewRunner(out io.Writer, logger *logging.Logger, precision int) *Runner {
	if logger == nil {
		logger = logging.Global()
	}
	return &Runner{
		out:       out,
		logger:    logger,
		precision: precision,
	}
}

// Run computes every dataset in order. Invalid input is logged and skipped;
// it never stops the run.
func (r *Runner) Run(datasets []config.Dataset) Summary {
	var summary Summary

	for _, ds := range datasets {
		result, err := weighted.AverageAny(ds.Values, ds.Weights)
		if err != nil {
			summary.Failed++
			r.reportError(ds, err)
			continue
		}

		if _, err := fmt.Fprintf(r.out, "Weighted average of %v with weights %v is: %.*f\n",
			ds.Values, ds.Weights, r.precision, result); err != nil {
			summary.Failed++
			r.logger.Error("Failed to write result", "dataset", ds.Name, "error", err)
			continue
		}
		summary.Computed++
	}

	return summary
}

func (r *Runner) reportError(ds config.Dataset, err error) {
	var invalid *weighted.InvalidInputError
	if errors.As(err, &invalid) {
		r.logger.Error("Error calculating weighted average",
			"dataset", ds.Name, "code", invalid.Code, "error", err)
		return
	}
	r.logger.Error("Unexpected error calculating weighted average", "dataset", ds.Name, "error", err)
}
