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

// Package scalar provides the non-vectorized reference predicate kernels
// (C3): the oracle every SIMD backend is checked against, and the fallback
// path the vectorized policy wrapper (C5) takes whenever a SIMD backend
// declines or for a head/tail remainder too small to vectorize.
//
// Every kernel here is generic over the output storage word O so it can
// write either into a freestanding packed bitmask (O = byte, outStart = 0,
// per the §6 predicate-kernel API) or directly into a bitset's own storage
// at an arbitrary bit offset, the way C5 needs when filling in a head or
// tail that starts mid-word. This is the "written using the bit-proxy so it
// works for any start-bit offset" requirement: writeBit bottoms out in
// pkg/bit's single-bit Fill, which is built on the same mask machinery as
// every other C2 bulk operation.
package scalar

import (
	"github.com/vecbitset/vecbitset/pkg/bit"
	"github.com/vecbitset/vecbitset/pkg/kernel"
)

func writeBit[O bit.Word](out []O, start, i uint, value bool) {
	bit.Fill(out, start+i, 1, value)
}

// CompareVal evaluates op(col[i], v) for i in [0,n) into out starting at bit
// outStart.
func CompareVal[T kernel.Numeric, O bit.Word](col []T, n uint, op kernel.CmpOp, v T, out []O, outStart uint) {
	for i := uint(0); i < n; i++ {
		writeBit(out, outStart, i, kernel.Apply(op, col[i], v))
	}
}

// CompareColumn evaluates op(a[i], b[i]) for i in [0,n).
func CompareColumn[T kernel.Numeric, O bit.Word](a, b []T, n uint, op kernel.CmpOp, out []O, outStart uint) {
	for i := uint(0); i < n; i++ {
		writeBit(out, outStart, i, kernel.Apply(op, a[i], b[i]))
	}
}

// WithinRangeVal evaluates r(lo, x[i], hi) for i in [0,n) with scalar bounds.
func WithinRangeVal[T kernel.Numeric, O bit.Word](lo, hi T, x []T, n uint, r kernel.Range, out []O, outStart uint) {
	loOp, hiOp := r.Cmps()

	for i := uint(0); i < n; i++ {
		v := x[i]
		writeBit(out, outStart, i, kernel.Apply(loOp, lo, v) && kernel.Apply(hiOp, v, hi))
	}
}

// WithinRangeColumn evaluates r(lo[i], x[i], hi[i]) for i in [0,n) with
// per-element bounds columns.
func WithinRangeColumn[T kernel.Numeric, O bit.Word](lo, hi, x []T, n uint, r kernel.Range, out []O, outStart uint) {
	loOp, hiOp := r.Cmps()

	for i := uint(0); i < n; i++ {
		v := x[i]
		writeBit(out, outStart, i, kernel.Apply(loOp, lo[i], v) && kernel.Apply(hiOp, v, hi[i]))
	}
}

// ArithCompareInt evaluates cop(aop(col[i], r), v) for i in [0,n), widening
// col[i] and r to an int64 accumulator before the arithmetic, per §4.3.
func ArithCompareInt[T kernel.Integer, O bit.Word](col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, out []O, outStart uint) {
	for i := uint(0); i < n; i++ {
		acc := int64(col[i])

		var res int64

		switch aop {
		case kernel.Add:
			res = acc + r
		case kernel.Sub:
			res = acc - r
		case kernel.Mul:
			res = acc * r
		case kernel.Div:
			res = acc / r
		case kernel.Mod:
			res = acc % r
		default:
			panic("kernel/scalar: unknown ArithOp")
		}

		writeBit(out, outStart, i, kernel.Apply(cop, res, v))
	}
}

// ArithCompareFloat evaluates cop(aop(col[i], r), v) for i in [0,n) without
// widening (T is already the accumulator type). Div uses the multiply
// reformulation x == r·v in place of x/r == v, per the spec's Design Notes,
// so that the scalar and SIMD paths stay bit-for-bit identical near
// rounding boundaries. Mod has no floating-point definition here; arith ops
// are restricted to {Add,Sub,Mul,Div} for floating element types.
func ArithCompareFloat[T kernel.Float, O bit.Word](col []T, n uint, aop kernel.ArithOp, r, v T, cop kernel.CmpOp, out []O, outStart uint) {
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
		default:
			panic("kernel/scalar: Mod/unknown ArithOp is undefined for floating element types")
		}

		writeBit(out, outStart, i, satisfied)
	}
}
