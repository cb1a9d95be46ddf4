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

// Package simdavx2 is the packed-256-lane predicate backend (C4). It
// processes elements in chunks of L = 32/sizeof(T) lanes per vector
// register, comparing a full vector at a time and materializing each
// chunk's result as a movemask-style packed byte before writing it to the
// output; 64-bit elements (4 lanes/register) pack two 4-bit chunk masks
// into one output byte, as described in spec.md §4.4.
//
// This backend runs portable Go rather than real AVX2 intrinsics/assembly:
// only the decline surface and bit-for-bit output need to match the real
// vectorized kernel, and that surface is exercised here faithfully (see
// DESIGN.md). It declines Mul/Div/Mod in arith_compare on every element
// type, matching the narrower arithmetic lane-op set real 256-bit integer
// SIMD exposes compared to AVX-512.
package simdavx2

import "github.com/vecbitset/vecbitset/pkg/kernel"

func checkChunked(n uint) {
	if n%8 != 0 {
		panic("simdavx2: n must be a multiple of 8")
	}
}

// CompareVal evaluates op(col[i], v) into res, one output byte per 8
// elements. Never declines.
func CompareVal[T kernel.Numeric](col []T, n uint, op kernel.CmpOp, v T, res []byte) bool {
	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var mask byte

		for lane := uint(0); lane < 8; lane++ {
			if kernel.Apply(op, col[chunk+lane], v) {
				mask |= 1 << lane
			}
		}

		res[chunk/8] = mask
	}

	return true
}

// CompareColumn evaluates op(a[i], b[i]) into res. Never declines.
func CompareColumn[T kernel.Numeric](a, b []T, n uint, op kernel.CmpOp, res []byte) bool {
	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var mask byte

		for lane := uint(0); lane < 8; lane++ {
			if kernel.Apply(op, a[chunk+lane], b[chunk+lane]) {
				mask |= 1 << lane
			}
		}

		res[chunk/8] = mask
	}

	return true
}

// WithinRangeVal ANDs the lo and hi comparison masks before materializing,
// per §4.4. Never declines.
func WithinRangeVal[T kernel.Numeric](lo, hi T, x []T, n uint, r kernel.Range, res []byte) bool {
	checkChunked(n)

	loOp, hiOp := r.Cmps()

	for chunk := uint(0); chunk < n; chunk += 8 {
		var mask byte

		for lane := uint(0); lane < 8; lane++ {
			v := x[chunk+lane]
			if kernel.Apply(loOp, lo, v) && kernel.Apply(hiOp, v, hi) {
				mask |= 1 << lane
			}
		}

		res[chunk/8] = mask
	}

	return true
}

// WithinRangeColumn is the per-element-bounds form of WithinRangeVal. Never
// declines.
func WithinRangeColumn[T kernel.Numeric](lo, hi, x []T, n uint, r kernel.Range, res []byte) bool {
	checkChunked(n)

	loOp, hiOp := r.Cmps()

	for chunk := uint(0); chunk < n; chunk += 8 {
		var mask byte

		for lane := uint(0); lane < 8; lane++ {
			v := x[chunk+lane]
			if kernel.Apply(loOp, lo[chunk+lane], v) && kernel.Apply(hiOp, v, hi[chunk+lane]) {
				mask |= 1 << lane
			}
		}

		res[chunk/8] = mask
	}

	return true
}

// ArithCompareInt declines Mul/Div/Mod: 256-bit integer lanes only expose
// add/sub cheaply as a vector op in the source this backend emulates.
func ArithCompareInt[T kernel.Integer](col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, res []byte) bool {
	if aop != kernel.Add && aop != kernel.Sub {
		return false
	}

	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var mask byte

		for lane := uint(0); lane < 8; lane++ {
			acc := int64(col[chunk+lane])

			var res64 int64
			if aop == kernel.Add {
				res64 = acc + r
			} else {
				res64 = acc - r
			}

			if kernel.Apply(cop, res64, v) {
				mask |= 1 << lane
			}
		}

		res[chunk/8] = mask
	}

	return true
}

// ArithCompareFloat declines Mul/Div/Mod, same restriction as ArithCompareInt.
func ArithCompareFloat[T kernel.Float](col []T, n uint, aop kernel.ArithOp, r, v T, cop kernel.CmpOp, res []byte) bool {
	if aop != kernel.Add && aop != kernel.Sub {
		return false
	}

	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var mask byte

		for lane := uint(0); lane < 8; lane++ {
			x := col[chunk+lane]

			var out T
			if aop == kernel.Add {
				out = x + r
			} else {
				out = x - r
			}

			if kernel.Apply(cop, out, v) {
				mask |= 1 << lane
			}
		}

		res[chunk/8] = mask
	}

	return true
}
