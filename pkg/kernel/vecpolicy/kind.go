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
package vecpolicy

import "github.com/vecbitset/vecbitset/pkg/kernel"

// kindOf maps a Go element type parameter to the ElementKind the dispatch
// table keys slots by. There are exactly six instantiations; the default
// panics rather than silently misclassifying an unsupported type.
func kindOf[T kernel.Numeric]() kernel.ElementKind {
	var zero T

	switch any(zero).(type) {
	case int8:
		return kernel.I8
	case int16:
		return kernel.I16
	case int32:
		return kernel.I32
	case int64:
		return kernel.I64
	case float32:
		return kernel.F32
	case float64:
		return kernel.F64
	default:
		panic("vecpolicy: unsupported element type")
	}
}
