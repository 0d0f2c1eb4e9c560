// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/posespace/matrix"
	"github.com/katalvlaran/posespace/rbf"
	"github.com/spf13/cobra"
)

func inspectCmd(a *app) *cobra.Command {
	var precision int
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the kernel matrix, its inverse and the solved weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rig, err := a.loadRig()
			if err != nil {
				return err
			}
			set := rig.TrainingSet()
			inputs := make([][]float64, len(set))
			names := make([]string, len(set))
			for i, p := range set {
				if inputs[i], err = rig.Policy().Conform(p.Input, rig.InputDim); err != nil {
					return fmt.Errorf("pose %d: %w", i, err)
				}
				names[i] = p.Name
				if names[i] == "" {
					names[i] = "pose[" + strconv.Itoa(i) + "]"
				}
			}

			cfg := rig.KernelConfig()
			gram, err := rbf.KernelMatrix(inputs, cfg)
			if err != nil {
				return err
			}
			s, err := rig.NewSolver(rbf.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err = s.Rebuild(set, cfg); err != nil {
				return err
			}
			weights, err := s.Weights()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kernel=%s radius=%g poses=%d\n", cfg.Type, cfg.Radius, len(set))
			if len(set) == 0 {
				return nil
			}
			inv, err := matrix.Inverse(gram)
			if err != nil {
				return err
			}

			outCols := make([]string, rig.OutputDim)
			for j := range outCols {
				outCols[j] = "out[" + strconv.Itoa(j) + "]"
			}
			renderMatrix(out, "kernel matrix", names, names, gram, precision)
			renderMatrix(out, "inverse", names, names, inv, precision)
			renderMatrix(out, "weights", names, outCols, weights, precision)

			return nil
		},
	}
	cmd.Flags().IntVar(&precision, "precision", 4, "digits after the decimal point")

	return cmd
}

// renderMatrix writes m as a titled table with labelled rows and columns.
func renderMatrix(w io.Writer, title string, rows, cols []string, m matrix.Matrix, precision int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(title)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(cols)+1)
	header = append(header, "")
	for _, c := range cols {
		header = append(header, c)
	}
	tw.AppendHeader(header)

	for i := 0; i < m.Rows(); i++ {
		row := make(table.Row, 0, m.Cols()+1)
		row = append(row, rows[i])
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			row = append(row, strconv.FormatFloat(v, 'f', precision, 64))
		}
		tw.AppendRow(row)
	}
	tw.Render()
}
