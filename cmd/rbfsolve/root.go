// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/posespace/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errNoRig = errors.New("no rig file given (use --rig)")

// app carries the persistent flags and the logger shared by subcommands.
type app struct {
	rigPath  string
	logLevel string
	log      zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:          "rbfsolve",
		Short:        "RBF pose-space interpolation tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(strings.ToLower(a.logLevel))
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(lvl).
				With().Timestamp().Str("cmd", cmd.Name()).
				Logger()

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.rigPath, "rig", "", "rig file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: trace|debug|info|warn|error|disabled")

	root.AddCommand(evalCmd(a))
	root.AddCommand(inspectCmd(a))
	root.AddCommand(kernelsCmd(a))

	return root
}

// loadRig reads the rig named by --rig.
func (a *app) loadRig() (*config.Rig, error) {
	if a.rigPath == "" {
		return nil, errNoRig
	}
	rig, err := config.Load(a.rigPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Str("rig", a.rigPath).
		Int("poses", len(rig.Poses)).
		Int("input_dim", rig.InputDim).
		Int("output_dim", rig.OutputDim).
		Msg("rig loaded")

	return rig, nil
}
