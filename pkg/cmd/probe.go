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
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/dispatch"
)

// probeCmd is the Go-native equivalent of the original source's internal
// cpu_support_avx2()/cpu_support_avx512() functions: it surfaces, per
// (operator-family, element-type) slot, which backend pkg/kernel/dispatch
// bound when its table was first initialized.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "report which predicate-kernel backend is bound for each operator/type slot.",
	Run: func(cmd *cobra.Command, _ []string) {
		setVerbosity(cmd)
		runProbeCmd()
	},
}

func runProbeCmd() {
	families := []kernel.OpFamily{
		kernel.FamilyCompareColumn,
		kernel.FamilyCompareVal,
		kernel.FamilyWithinRangeColumn,
		kernel.FamilyWithinRangeVal,
		kernel.FamilyArithCompare,
	}

	for _, family := range families {
		for _, kind := range kernel.AllElementKinds {
			backend := dispatch.Default.Bound(family, kind)
			fmt.Printf("%-20s %-4s -> %s\n", family, kind, backend)
		}
	}
}
