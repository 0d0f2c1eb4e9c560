// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/posespace/config"
	"github.com/katalvlaran/posespace/rbf"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// evalResult is one evaluated driver in the YAML report.
type evalResult struct {
	Name   string    `yaml:"name"`
	Input  []float64 `yaml:"input,flow"`
	Output []float64 `yaml:"output,flow"`
}

type evalReport struct {
	Kernel    string       `yaml:"kernel"`
	Radius    float64      `yaml:"radius"`
	Normalize string       `yaml:"normalize"`
	Poses     int          `yaml:"poses"`
	Results   []evalResult `yaml:"results"`
}

func evalCmd(a *app) *cobra.Command {
	var (
		drivers   []string
		normalize string
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Rebuild the rig and evaluate its drivers",
		Long: "Rebuild the rig and evaluate every driver listed in the rig file plus any\n" +
			"--driver given on the command line. Results are written as YAML.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rig, err := a.loadRig()
			if err != nil {
				return err
			}
			norm := rig.Normalization()
			if normalize != "" {
				if norm, err = rbf.ParseNormalization(normalize); err != nil {
					return err
				}
			}
			named, err := collectDrivers(rig, drivers)
			if err != nil {
				return err
			}

			s, err := rig.NewSolver(rbf.WithLogger(a.log))
			if err != nil {
				return err
			}
			cfg := rig.KernelConfig()
			if err = s.Rebuild(rig.TrainingSet(), cfg); err != nil {
				return err
			}

			results := make([]evalResult, len(named))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(workers, 1))
			for i, d := range named {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, err := s.Evaluate(d.Input, norm)
					if err != nil {
						return fmt.Errorf("driver %q: %w", d.Name, err)
					}
					results[i] = evalResult{Name: d.Name, Input: d.Input, Output: out}

					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}
			a.log.Info().Int("drivers", len(results)).Msg("evaluated")

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()

			return enc.Encode(evalReport{
				Kernel:    cfg.Type.String(),
				Radius:    cfg.Radius,
				Normalize: norm.String(),
				Poses:     len(rig.Poses),
				Results:   results,
			})
		},
	}
	cmd.Flags().StringArrayVar(&drivers, "driver", nil, "extra driver as comma-separated components (repeatable)")
	cmd.Flags().StringVar(&normalize, "normalize", "", "override the rig normalization: none|clamp_sum|minmax_sum")
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent evaluations")

	return cmd
}

// collectDrivers returns the rig drivers followed by the command-line ones.
// Unnamed drivers are labelled by position.
func collectDrivers(rig *config.Rig, extra []string) ([]config.Driver, error) {
	out := make([]config.Driver, 0, len(rig.Drivers)+len(extra))
	for i, d := range rig.Drivers {
		if d.Name == "" {
			d.Name = fmt.Sprintf("driver[%d]", i)
		}
		out = append(out, d)
	}
	for i, raw := range extra {
		v, err := parseVector(raw)
		if err != nil {
			return nil, fmt.Errorf("--driver %q: %w", raw, err)
		}
		out = append(out, config.Driver{Name: fmt.Sprintf("arg[%d]", i), Input: v})
	}

	return out, nil
}

// parseVector parses "0.5, 1,-2" into its components. An empty string is the
// empty vector.
func parseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	v := make([]float64, len(parts))
	var err error
	for i, p := range parts {
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return nil, err
		}
	}

	return v, nil
}
