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

//go:build amd64

package vecpolicy

import (
	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/dispatch"
	"github.com/vecbitset/vecbitset/pkg/kernel/simdavx2"
	"github.com/vecbitset/vecbitset/pkg/kernel/simdavx512"
)

func simdCompareVal[T kernel.Numeric](backend dispatch.Backend, col []T, n uint, op kernel.CmpOp, v T, res []byte) bool {
	switch backend {
	case dispatch.AVX512:
		return simdavx512.CompareVal(col, n, op, v, res)
	case dispatch.AVX2:
		return simdavx2.CompareVal(col, n, op, v, res)
	default:
		return false
	}
}

func simdCompareColumn[T kernel.Numeric](backend dispatch.Backend, a, b []T, n uint, op kernel.CmpOp, res []byte) bool {
	switch backend {
	case dispatch.AVX512:
		return simdavx512.CompareColumn(a, b, n, op, res)
	case dispatch.AVX2:
		return simdavx2.CompareColumn(a, b, n, op, res)
	default:
		return false
	}
}

func simdWithinRangeVal[T kernel.Numeric](backend dispatch.Backend, lo, hi T, x []T, n uint, r kernel.Range, res []byte) bool {
	switch backend {
	case dispatch.AVX512:
		return simdavx512.WithinRangeVal(lo, hi, x, n, r, res)
	case dispatch.AVX2:
		return simdavx2.WithinRangeVal(lo, hi, x, n, r, res)
	default:
		return false
	}
}

func simdWithinRangeColumn[T kernel.Numeric](backend dispatch.Backend, lo, hi, x []T, n uint, r kernel.Range, res []byte) bool {
	switch backend {
	case dispatch.AVX512:
		return simdavx512.WithinRangeColumn(lo, hi, x, n, r, res)
	case dispatch.AVX2:
		return simdavx2.WithinRangeColumn(lo, hi, x, n, r, res)
	default:
		return false
	}
}

func simdArithCompareInt[T kernel.Integer](backend dispatch.Backend, col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, res []byte) bool {
	switch backend {
	case dispatch.AVX512:
		return simdavx512.ArithCompareInt(col, n, aop, r, v, cop, res)
	case dispatch.AVX2:
		return simdavx2.ArithCompareInt(col, n, aop, r, v, cop, res)
	default:
		return false
	}
}

func simdArithCompareFloat[T kernel.Float](backend dispatch.Backend, col []T, n uint, aop kernel.ArithOp, r, v T, cop kernel.CmpOp, res []byte) bool {
	switch backend {
	case dispatch.AVX512:
		return simdavx512.ArithCompareFloat(col, n, aop, r, v, cop, res)
	case dispatch.AVX2:
		return simdavx2.ArithCompareFloat(col, n, aop, r, v, cop, res)
	default:
		return false
	}
}
