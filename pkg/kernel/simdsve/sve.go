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

// Package simdsve is the scalable-vector-length predicate backend (C4). A
// real SVE kernel processes eight hardware vectors (of runtime-determined
// width V elements) at a time into eight native predicate registers, then
// combines them with a reduction tree of shifts and even/odd interleaves
// (depth log2(lane_bytes)+3) into one contiguous 8·V-bit packed mask,
// zero-padding the trailing partial block. This emulation collapses that
// combiner to its observable effect: 8 elements in, 1 output byte out, in
// ascending index order, which is all the scalar oracle and the other
// backends can be compared against.
//
// arith_compare only supports Add/Sub, same restriction as the 256-bit
// backend: SVE's integer arithmetic predicate chains in the source this
// emulates do not fuse a multiply or divide ahead of the compare.
package simdsve

import "github.com/vecbitset/vecbitset/pkg/kernel"

func checkChunked(n uint) {
	if n%8 != 0 {
		panic("simdsve: n must be a multiple of 8")
	}
}

// combine folds eight per-lane predicates for one output byte.
func combine(lane [8]bool) byte {
	var mask byte

	for i, p := range lane {
		if p {
			mask |= 1 << uint(i)
		}
	}

	return mask
}

// CompareVal evaluates op(col[i], v) into res. Never declines.
func CompareVal[T kernel.Numeric](col []T, n uint, op kernel.CmpOp, v T, res []byte) bool {
	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var lane [8]bool
		for i := range lane {
			lane[i] = kernel.Apply(op, col[chunk+uint(i)], v)
		}

		res[chunk/8] = combine(lane)
	}

	return true
}

// CompareColumn evaluates op(a[i], b[i]) into res. Never declines.
func CompareColumn[T kernel.Numeric](a, b []T, n uint, op kernel.CmpOp, res []byte) bool {
	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var lane [8]bool
		for i := range lane {
			lane[i] = kernel.Apply(op, a[chunk+uint(i)], b[chunk+uint(i)])
		}

		res[chunk/8] = combine(lane)
	}

	return true
}

// WithinRangeVal ANDs the lo/hi predicate pair per lane before combining.
// Never declines.
func WithinRangeVal[T kernel.Numeric](lo, hi T, x []T, n uint, r kernel.Range, res []byte) bool {
	checkChunked(n)

	loOp, hiOp := r.Cmps()

	for chunk := uint(0); chunk < n; chunk += 8 {
		var lane [8]bool
		for i := range lane {
			v := x[chunk+uint(i)]
			lane[i] = kernel.Apply(loOp, lo, v) && kernel.Apply(hiOp, v, hi)
		}

		res[chunk/8] = combine(lane)
	}

	return true
}

// WithinRangeColumn is the per-element-bounds form of WithinRangeVal. Never
// declines.
func WithinRangeColumn[T kernel.Numeric](lo, hi, x []T, n uint, r kernel.Range, res []byte) bool {
	checkChunked(n)

	loOp, hiOp := r.Cmps()

	for chunk := uint(0); chunk < n; chunk += 8 {
		var lane [8]bool
		for i := range lane {
			v := x[chunk+uint(i)]
			lane[i] = kernel.Apply(loOp, lo[chunk+uint(i)], v) && kernel.Apply(hiOp, v, hi[chunk+uint(i)])
		}

		res[chunk/8] = combine(lane)
	}

	return true
}

// ArithCompareInt declines Mul/Div/Mod.
func ArithCompareInt[T kernel.Integer](col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, res []byte) bool {
	if aop != kernel.Add && aop != kernel.Sub {
		return false
	}

	checkChunked(n)

	for chunk := uint(0); chunk < n; chunk += 8 {
		var lane [8]bool

		for i := range lane {
			acc := int64(col[chunk+uint(i)])

			var out int64
			if aop == kernel.Add {
				out = acc + r
			} else {
				out = acc - r
			}

			lane[i] = kernel.Apply(cop, out, v)
		}

		res[chunk/8] = combine(lane)
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
		var lane [8]bool

		for i := range lane {
			x := col[chunk+uint(i)]

			var out T
			if aop == kernel.Add {
				out = x + r
			} else {
				out = x - r
			}

			lane[i] = kernel.Apply(cop, out, v)
		}

		res[chunk/8] = combine(lane)
	}

	return true
}
