// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements bitbench, a small demonstration CLI over
// pkg/kernel. It is not part of the library's public
// contract (spec.md §6 is explicit that the library itself has "no CLI, no
// configuration file"); it exists to exercise the dispatcher and predicate
// kernels from the command line the way go-corset's own cmd tree
// demonstrates its compiler.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building with make; "(unknown version)" via go run/go install.
var Version string

var rootCmd = &cobra.Command{
	Use:   "bitbench",
	Short: "Demonstration CLI for the vecbitset predicate-kernel library.",
	Long:  "bitbench demonstrates the vectorized bitset and predicate-kernel library: running predicate kernels over columns, and reporting which backend the dispatcher bound for each operator/type slot.",
	Run: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "version") {
			fmt.Println("bitbench", versionString())
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

func versionString() string {
	if Version != "" {
		return Version
	}

	return "(unknown version)"
}

// Execute runs the root command; called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(predicateCmd)
}

func setVerbosity(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
