// SPDX-License-Identifier: MIT

// Command rbfsolve loads a rig file and drives the RBF pose interpolator from
// the command line: evaluate drivers, inspect the solved system, or tabulate
// the kernels.
//
//	rbfsolve eval --rig elbow.yaml --driver 0.25 --driver 0.75
//	rbfsolve inspect --rig elbow.yaml
//	rbfsolve kernels --radius 1.5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
