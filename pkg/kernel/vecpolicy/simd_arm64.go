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

//go:build arm64

package vecpolicy

import (
	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/dispatch"
	"github.com/vecbitset/vecbitset/pkg/kernel/simdsve"
)

func simdCompareVal[T kernel.Numeric](backend dispatch.Backend, col []T, n uint, op kernel.CmpOp, v T, res []byte) bool {
	if backend != dispatch.SVE {
		return false
	}

	return simdsve.CompareVal(col, n, op, v, res)
}

func simdCompareColumn[T kernel.Numeric](backend dispatch.Backend, a, b []T, n uint, op kernel.CmpOp, res []byte) bool {
	if backend != dispatch.SVE {
		return false
	}

	return simdsve.CompareColumn(a, b, n, op, res)
}

func simdWithinRangeVal[T kernel.Numeric](backend dispatch.Backend, lo, hi T, x []T, n uint, r kernel.Range, res []byte) bool {
	if backend != dispatch.SVE {
		return false
	}

	return simdsve.WithinRangeVal(lo, hi, x, n, r, res)
}

func simdWithinRangeColumn[T kernel.Numeric](backend dispatch.Backend, lo, hi, x []T, n uint, r kernel.Range, res []byte) bool {
	if backend != dispatch.SVE {
		return false
	}

	return simdsve.WithinRangeColumn(lo, hi, x, n, r, res)
}

func simdArithCompareInt[T kernel.Integer](backend dispatch.Backend, col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, res []byte) bool {
	if backend != dispatch.SVE {
		return false
	}

	return simdsve.ArithCompareInt(col, n, aop, r, v, cop, res)
}

func simdArithCompareFloat[T kernel.Float](backend dispatch.Backend, col []T, n uint, aop kernel.ArithOp, r, v T, cop kernel.CmpOp, res []byte) bool {
	if backend != dispatch.SVE {
		return false
	}

	return simdsve.ArithCompareFloat(col, n, aop, r, v, cop, res)
}
