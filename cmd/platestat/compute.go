// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/platestat/internal/platefile"
	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/stat"
	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

const (
	modeStandard   = "standard"
	modeAggregated = "aggregated"
)

var errNoWells = errors.New("no listed well is present on the plate")

// request holds the compute flags.
type request struct {
	stat     string
	mode     string
	begin    int
	length   int
	windowed bool
	p        float64
	weights  []string
	decimal  bool
	wells    string
}

func newComputeCmd(a *app) *cobra.Command {
	var req request
	cmd := &cobra.Command{
		Use:   "compute FILE",
		Short: "Compute a statistic per well or pooled over the plate",
		Long: `compute evaluates a statistic over the wells of a plate file.

Standard mode prints one line per well; aggregated mode pools every value
(row-major) and prints one line. --begin/--length restrict each well to a
window, --weights multiplies the i-th window value by the i-th weight.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.mode != modeStandard && req.mode != modeAggregated {
				return fmt.Errorf("--mode must be %q or %q, got %q", modeStandard, modeAggregated, req.mode)
			}
			req.windowed = cmd.Flags().Changed("begin") || cmd.Flags().Changed("length")

			f, err := platefile.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("computing",
				slog.String("file", args[0]),
				slog.String("stat", req.stat),
				slog.String("mode", req.mode),
				slog.Bool("decimal", req.decimal),
			)
			if req.decimal {
				p, err := platefile.Decimal(f, plate.WithLogger(a.logger))
				if err != nil {
					return err
				}
				return compute(cmd.OutOrStdout(), p, decimalDomain, req, a.cfg.Delimiter)
			}
			p, err := platefile.Float(f, plate.WithLogger(a.logger))
			if err != nil {
				return err
			}

			return compute(cmd.OutOrStdout(), p, floatDomain, req, a.cfg.Delimiter)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&req.stat, "stat", "mean", "statistic name")
	fl.StringVar(&req.mode, "mode", modeStandard, "standard (per well) or aggregated (pooled)")
	fl.IntVar(&req.begin, "begin", 0, "window start within each well")
	fl.IntVar(&req.length, "length", 0, "window length within each well")
	fl.Float64Var(&req.p, "p", 0.5, "quantile in [0,1] for --stat quantile")
	fl.StringSliceVar(&req.weights, "weights", nil, "weights applied to window values, in order")
	fl.BoolVar(&req.decimal, "decimal", false, "use exact decimal arithmetic")
	fl.StringVar(&req.wells, "wells", "", "restrict to these wells (e.g. A1,B2)")

	return cmd
}

// compute runs req against p and prints tab-separated results.
func compute[T any](out io.Writer, p *plate.Plate[T], d domain[T], req request, delimiter string) error {
	s, err := d.statistic(req.stat, req.p, req.weights)
	if err != nil {
		return err
	}
	set, err := selectWells(p, req.wells, delimiter)
	if err != nil {
		return err
	}

	if req.mode == modeAggregated {
		var v T
		if req.windowed {
			v, err = s.SetAggregatedWindow(set, req.begin, req.length)
		} else {
			v, err = s.SetAggregated(set)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", p.Label(), d.format(v))

		return nil
	}

	var res *stat.Results[*well.Well[T], T]
	if req.windowed {
		res, err = s.SetWindow(set, req.begin, req.length)
	} else {
		res, err = s.Set(set)
	}
	if err != nil {
		return err
	}
	for w, v := range res.All() {
		fmt.Fprintf(out, "%s\t%s\n", w.ID(), d.format(v))
	}

	return nil
}

// selectWells returns the plate's set, or the subset named by list.
func selectWells[T any](p *plate.Plate[T], list, delimiter string) (*wellset.WellSet[T], error) {
	if list == "" {
		return p.Set(), nil
	}
	ids, err := well.ParseIDs(list, delimiter)
	if err != nil {
		return nil, err
	}
	probes := make([]*well.Well[T], len(ids))
	for i, id := range ids {
		probes[i] = well.Probe[T](id)
	}
	subset := p.Set().GetWells(probes...)
	if subset == nil {
		return nil, fmt.Errorf("--wells %s: %w", list, errNoWells)
	}

	return subset, nil
}
