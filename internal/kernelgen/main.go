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

// Command kernelgen template-generates the per-element-type scalar-kernel
// wrapper files under pkg/kernel/scalar (kernel_int8.go ... kernel_float64.go).
//
// The generic logic lives once in pkg/kernel/scalar/generic.go; what this
// tool produces is the concrete, named instantiation of that logic for each
// of the six element types, the boilerplate a dispatch table needs since Go
// cannot store an uninstantiated generic function as a value. This mirrors
// pkg/util/field/internal/generator's use of bavard to produce one
// element.go per field modulus from a single template.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

type elementSpec struct {
	// Name is the Go scalar kernel suffix, e.g. "I8", "F32".
	Name string
	// GoType is the underlying Go type, e.g. "int8", "float32".
	GoType string
	// Integral selects the int64-accumulator arithmetic path; otherwise the
	// no-widening float path (with the Div-as-multiply reformulation) is used.
	Integral bool
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "vecbitset")

	specs := []elementSpec{
		{Name: "I8", GoType: "int8", Integral: true},
		{Name: "I16", GoType: "int16", Integral: true},
		{Name: "I32", GoType: "int32", Integral: true},
		{Name: "I64", GoType: "int64", Integral: true},
		{Name: "F32", GoType: "float32", Integral: false},
		{Name: "F64", GoType: "float64", Integral: false},
	}

	for _, spec := range specs {
		assertNoError(bgen.Generate(spec, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../pkg/kernel/scalar/kernel_%s.go", spec.GoType),
				Templates: []string{"scalar_kernel.go.tmpl"},
				BuildTag:  "",
			},
		), "for element kind %q", spec.Name)
	}
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
