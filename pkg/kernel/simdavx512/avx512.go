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

// Package simdavx512 is the masked-512-lane predicate backend (C4).
// Comparisons on this backend target a native per-lane mask register one
// bit wide, written directly to the output with a masked store for the
// tail (spec.md §4.4's "hardware-mask strategy"); there is no
// pack-then-movemask step, since the mask register already has the packed
// shape the output buffer needs.
//
// Per the spec's resolved Open Question (the source's CompareValAVX512Impl
// was only instantiated for int8_t; this implementation provides every
// element width), compare_val/compare_column/within_range are supported for
// all six element types here. arith_compare supports the full
// Add/Sub/Mul/Div set — wider masked lanes afford a multiply/divide lane op
// the 256-bit backend does not — but Mod always declines: there is no
// integer-mod lane operation on this backend, matching real AVX-512's gap.
package simdavx512

import "github.com/vecbitset/vecbitset/pkg/kernel"

func checkChunked(n uint) {
	if n%8 != 0 {
		panic("simdavx512: n must be a multiple of 8")
	}
}

// CompareVal evaluates op(col[i], v) into res via a simulated mask-register
// store. Never declines.
func CompareVal[T kernel.Numeric](col []T, n uint, op kernel.CmpOp, v T, res []byte) bool {
	checkChunked(n)

	for i := uint(0); i < n; i++ {
		if kernel.Apply(op, col[i], v) {
			res[i/8] |= 1 << (i % 8)
		} else {
			res[i/8] &^= 1 << (i % 8)
		}
	}

	return true
}

// CompareColumn evaluates op(a[i], b[i]) into res. Never declines.
func CompareColumn[T kernel.Numeric](a, b []T, n uint, op kernel.CmpOp, res []byte) bool {
	checkChunked(n)

	for i := uint(0); i < n; i++ {
		if kernel.Apply(op, a[i], b[i]) {
			res[i/8] |= 1 << (i % 8)
		} else {
			res[i/8] &^= 1 << (i % 8)
		}
	}

	return true
}

// WithinRangeVal ANDs the two native mask registers before the masked
// store. Never declines.
func WithinRangeVal[T kernel.Numeric](lo, hi T, x []T, n uint, r kernel.Range, res []byte) bool {
	checkChunked(n)

	loOp, hiOp := r.Cmps()

	for i := uint(0); i < n; i++ {
		v := x[i]
		if kernel.Apply(loOp, lo, v) && kernel.Apply(hiOp, v, hi) {
			res[i/8] |= 1 << (i % 8)
		} else {
			res[i/8] &^= 1 << (i % 8)
		}
	}

	return true
}

// WithinRangeColumn is the per-element-bounds form of WithinRangeVal. Never
// declines.
func WithinRangeColumn[T kernel.Numeric](lo, hi, x []T, n uint, r kernel.Range, res []byte) bool {
	checkChunked(n)

	loOp, hiOp := r.Cmps()

	for i := uint(0); i < n; i++ {
		v := x[i]
		if kernel.Apply(loOp, lo[i], v) && kernel.Apply(hiOp, v, hi[i]) {
			res[i/8] |= 1 << (i % 8)
		} else {
			res[i/8] &^= 1 << (i % 8)
		}
	}

	return true
}

// ArithCompareInt declines only Mod; Add/Sub/Mul/Div all have a masked-lane
// op on this backend.
func ArithCompareInt[T kernel.Integer](col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, res []byte) bool {
	if aop == kernel.Mod {
		return false
	}

	checkChunked(n)

	for i := uint(0); i < n; i++ {
		acc := int64(col[i])

		var out int64

		switch aop {
		case kernel.Add:
			out = acc + r
		case kernel.Sub:
			out = acc - r
		case kernel.Mul:
			out = acc * r
		case kernel.Div:
			out = acc / r
		}

		if kernel.Apply(cop, out, v) {
			res[i/8] |= 1 << (i % 8)
		} else {
			res[i/8] &^= 1 << (i % 8)
		}
	}

	return true
}

// ArithCompareFloat declines only Mod (undefined for floats anyway); the
// Div path still uses the multiply reformulation x == r·v to avoid a
// divide in the lane op, matching the scalar oracle bit-for-bit.
func ArithCompareFloat[T kernel.Float](col []T, n uint, aop kernel.ArithOp, r, v T, cop kernel.CmpOp, res []byte) bool {
	if aop == kernel.Mod {
		return false
	}

	checkChunked(n)

	for i := uint(0); i < n; i++ {
		x := col[i]

		var satisfied bool

		switch aop {
		case kernel.Add:
			satisfied = kernel.Apply(cop, x+r, v)
		case kernel.Sub:
			satisfied = kernel.Apply(cop, x-r, v)
		case kernel.Mul:
			satisfied = kernel.Apply(cop, x*r, v)
		case kernel.Div:
			satisfied = kernel.Apply(cop, x, r*v)
		}

		if satisfied {
			res[i/8] |= 1 << (i % 8)
		} else {
			res[i/8] &^= 1 << (i % 8)
		}
	}

	return true
}
