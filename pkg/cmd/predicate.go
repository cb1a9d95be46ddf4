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
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/vecpolicy"
)

// predicateCmd demonstrates compare_val<f64,Op> end to end: scalar demo
// data -> dispatcher -> packed bitmask -> printed as ascending set indices.
var predicateCmd = &cobra.Command{
	Use:   "predicate",
	Short: "evaluate compare_val<f64,Op> over a small demo column and print the resulting bitmask.",
	Run: func(cmd *cobra.Command, _ []string) {
		setVerbosity(cmd)
		runPredicateCmd(cmd)
	},
}

func init() {
	predicateCmd.Flags().String("op", "GT", "comparison operator: EQ, NE, LT, LE, GT, GE")
	predicateCmd.Flags().Float64("value", 0, "scalar value to compare every column element against")
}

func parseCmpOp(s string) (kernel.CmpOp, error) {
	switch strings.ToUpper(s) {
	case "EQ":
		return kernel.EQ, nil
	case "NE":
		return kernel.NE, nil
	case "LT":
		return kernel.LT, nil
	case "LE":
		return kernel.LE, nil
	case "GT":
		return kernel.GT, nil
	case "GE":
		return kernel.GE, nil
	default:
		return 0, fmt.Errorf("unknown comparison operator %q", s)
	}
}

func runPredicateCmd(cmd *cobra.Command) {
	op, err := parseCmpOp(GetString(cmd, "op"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	v := GetFloat64(cmd, "value")

	col := make([]float64, 40)
	for i := range col {
		col[i] = float64(i) - 20
	}

	log.Debugf("bitbench: evaluating compare_val<f64,%s> v=%v over %d elements", op, v, len(col))

	mask := vecpolicy.CompareVal(col, uint(len(col)), op, v)

	fmt.Print("set indices: [")

	first := true

	for i := range col {
		if kernel.GetBit(mask, i) {
			if !first {
				fmt.Print(", ")
			}

			fmt.Print(i)

			first = false
		}
	}

	fmt.Println("]")
}
