// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/platestat/internal/platefile"
	"github.com/katalvlaran/platestat/plate"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Print plate dimensions and wells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := platefile.Load(args[0])
			if err != nil {
				return err
			}
			p, err := platefile.Decimal(f, plate.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "plate %s: %dx%d, %d of %d wells\n", p.Label(), p.Rows(), p.Columns(), p.Len(), p.Capacity())
			if d := p.Descriptor(); d != "" {
				fmt.Fprintf(out, "descriptor: %s\n", d)
			}
			for w := range p.All() {
				fmt.Fprintf(out, "%s\t%d\t%v\n", w.ID(), w.Len(), w.Values())
			}

			return nil
		},
	}
}
