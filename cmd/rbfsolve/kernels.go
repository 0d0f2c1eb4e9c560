// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/posespace/rbf"
	"github.com/spf13/cobra"
)

func kernelsCmd(a *app) *cobra.Command {
	var (
		radius float64
		upTo   float64
		steps  int
	)
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "Tabulate every kernel over a distance sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return errors.New("--steps must be >= 1")
			}
			r := rbf.ClampRadius(radius)
			if r != radius {
				a.log.Warn().Float64("radius", radius).Float64("clamped", r).Msg("radius below floor")
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			header := table.Row{"distance"}
			for _, k := range rbf.KernelTypes() {
				header = append(header, k.String())
			}
			tw.AppendHeader(header)

			for i := 0; i <= steps; i++ {
				d := upTo * float64(i) / float64(steps)
				row := table.Row{strconv.FormatFloat(d, 'f', 3, 64)}
				for _, k := range rbf.KernelTypes() {
					row = append(row, strconv.FormatFloat(rbf.Kernel(d, r, k), 'f', 4, 64))
				}
				tw.AppendRow(row)
			}
			tw.Render()

			return nil
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 1.0, "kernel radius")
	cmd.Flags().Float64Var(&upTo, "max", 2.0, "largest distance")
	cmd.Flags().IntVar(&steps, "steps", 8, "number of intervals")

	return cmd
}
