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

// Package vecpolicy is the vectorized policy wrapper (C5): it decides, for
// every predicate call, which part of the element range a SIMD backend may
// see and which part the scalar reference (C3) must handle.
//
// The predicate-kernel API (§6) always writes into a packed bitmask
// starting at bit 0, so the "head" of spec.md §4.2's head/body/tail
// decomposition is vacuous here (0 is always a word and byte boundary); the
// only split that matters is body (the largest prefix whose length is a
// multiple of 8) against tail (the `n % 8` remainder). The body is offered
// to whichever backend pkg/kernel/dispatch bound for this (family,
// element-type) slot; a decline (or no SIMD backend at all) falls the whole
// body back to scalar. The tail is always scalar — sub-byte masking is not
// worth the SIMD complexity (§4.5).
package vecpolicy

import (
	log "github.com/sirupsen/logrus"

	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/dispatch"
	"github.com/vecbitset/vecbitset/pkg/kernel/scalar"
)

func bodyLen(n uint) uint { return n / 8 * 8 }

func declined(family kernel.OpFamily, kind kernel.ElementKind, backend dispatch.Backend) {
	log.Debugf("kernel/vecpolicy: %s/%s declined on %s, falling back to scalar", family, kind, backend)
}

// CompareVal evaluates op(col[i], v) for i in [0,n) into a fresh packed
// bitmask.
func CompareVal[T kernel.Numeric](col []T, n uint, op kernel.CmpOp, v T) []byte {
	kind := kindOf[T]()
	res := make([]byte, kernel.BitmaskBytes(int(n)))
	backend := dispatch.Default.Bound(kernel.FamilyCompareVal, kind)

	body := bodyLen(n)

	wrote := false
	if body > 0 {
		wrote = simdCompareVal(backend, col[:body], body, op, v, res)
		if !wrote {
			declined(kernel.FamilyCompareVal, kind, backend)
		}
	}

	if !wrote {
		scalar.CompareVal(col, body, op, v, res, 0)
	}

	if n > body {
		scalar.CompareVal(col[body:], n-body, op, v, res, body)
	}

	return res
}

// CompareColumn evaluates op(a[i], b[i]) for i in [0,n) into a fresh packed
// bitmask.
func CompareColumn[T kernel.Numeric](a, b []T, n uint, op kernel.CmpOp) []byte {
	kind := kindOf[T]()
	res := make([]byte, kernel.BitmaskBytes(int(n)))
	backend := dispatch.Default.Bound(kernel.FamilyCompareColumn, kind)

	body := bodyLen(n)

	wrote := false
	if body > 0 {
		wrote = simdCompareColumn(backend, a[:body], b[:body], body, op, res)
		if !wrote {
			declined(kernel.FamilyCompareColumn, kind, backend)
		}
	}

	if !wrote {
		scalar.CompareColumn(a, b, body, op, res, 0)
	}

	if n > body {
		scalar.CompareColumn(a[body:], b[body:], n-body, op, res, body)
	}

	return res
}

// WithinRangeVal evaluates r(lo, x[i], hi) for i in [0,n) into a fresh
// packed bitmask.
func WithinRangeVal[T kernel.Numeric](lo, hi T, x []T, n uint, r kernel.Range) []byte {
	kind := kindOf[T]()
	res := make([]byte, kernel.BitmaskBytes(int(n)))
	backend := dispatch.Default.Bound(kernel.FamilyWithinRangeVal, kind)

	body := bodyLen(n)

	wrote := false
	if body > 0 {
		wrote = simdWithinRangeVal(backend, lo, hi, x[:body], body, r, res)
		if !wrote {
			declined(kernel.FamilyWithinRangeVal, kind, backend)
		}
	}

	if !wrote {
		scalar.WithinRangeVal(lo, hi, x, body, r, res, 0)
	}

	if n > body {
		scalar.WithinRangeVal(lo, hi, x[body:], n-body, r, res, body)
	}

	return res
}

// WithinRangeColumn evaluates r(lo[i], x[i], hi[i]) for i in [0,n) into a
// fresh packed bitmask.
func WithinRangeColumn[T kernel.Numeric](lo, hi, x []T, n uint, r kernel.Range) []byte {
	kind := kindOf[T]()
	res := make([]byte, kernel.BitmaskBytes(int(n)))
	backend := dispatch.Default.Bound(kernel.FamilyWithinRangeColumn, kind)

	body := bodyLen(n)

	wrote := false
	if body > 0 {
		wrote = simdWithinRangeColumn(backend, lo[:body], hi[:body], x[:body], body, r, res)
		if !wrote {
			declined(kernel.FamilyWithinRangeColumn, kind, backend)
		}
	}

	if !wrote {
		scalar.WithinRangeColumn(lo, hi, x, body, r, res, 0)
	}

	if n > body {
		scalar.WithinRangeColumn(lo[body:], hi[body:], x[body:], n-body, r, res, body)
	}

	return res
}

// ArithCompareInt evaluates cop(aop(col[i], r), v) for i in [0,n) into a
// fresh packed bitmask, widening to an int64 accumulator.
func ArithCompareInt[T kernel.Integer](col []T, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp) []byte {
	kind := kindOf[T]()
	res := make([]byte, kernel.BitmaskBytes(int(n)))
	backend := dispatch.Default.Bound(kernel.FamilyArithCompare, kind)

	body := bodyLen(n)

	wrote := false
	if body > 0 {
		wrote = simdArithCompareInt(backend, col[:body], body, aop, r, v, cop, res)
		if !wrote {
			declined(kernel.FamilyArithCompare, kind, backend)
		}
	}

	if !wrote {
		scalar.ArithCompareInt(col, body, aop, r, v, cop, res, 0)
	}

	if n > body {
		scalar.ArithCompareInt(col[body:], n-body, aop, r, v, cop, res, body)
	}

	return res
}

// ArithCompareFloat evaluates cop(aop(col[i], r), v) for i in [0,n) into a
// fresh packed bitmask, without widening.
func ArithCompareFloat[T kernel.Float](col []T, n uint, aop kernel.ArithOp, r, v T, cop kernel.CmpOp) []byte {
	kind := kindOf[T]()
	res := make([]byte, kernel.BitmaskBytes(int(n)))
	backend := dispatch.Default.Bound(kernel.FamilyArithCompare, kind)

	body := bodyLen(n)

	wrote := false
	if body > 0 {
		wrote = simdArithCompareFloat(backend, col[:body], body, aop, r, v, cop, res)
		if !wrote {
			declined(kernel.FamilyArithCompare, kind, backend)
		}
	}

	if !wrote {
		scalar.ArithCompareFloat(col, body, aop, r, v, cop, res, 0)
	}

	if n > body {
		scalar.ArithCompareFloat(col[body:], n-body, aop, r, v, cop, res, body)
	}

	return res
}
