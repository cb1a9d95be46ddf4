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
package dispatch

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vecbitset/vecbitset/pkg/kernel"
)

type slot struct {
	family kernel.OpFamily
	kind   kernel.ElementKind
}

// Table is the process-wide, immutable-after-init dispatch table: one
// Backend per (operator-family, element-type) slot. Every slot starts
// Unbound and transitions exactly once, at Init, to Bound(backend) — no
// re-dispatch at runtime, per spec.md §4.7's state machine.
type Table struct {
	mu     sync.Once
	bound  map[slot]Backend
	widest Backend
}

// Default is the package-level table populated by the first call to
// Init (or lazily, by the first call to Bound). Any goroutine may read it
// without locking once initialization has happened, since binding a slot
// never changes after that point.
var Default = &Table{}

// Init probes the CPU once and populates every slot. Calling it more than
// once is a no-op; the first call wins, matching the one-shot state
// machine.
func (t *Table) Init() {
	t.mu.Do(func() {
		t.widest = widestAvailable()
		t.bound = make(map[slot]Backend, len(kernel.AllElementKinds)*5)

		families := []kernel.OpFamily{
			kernel.FamilyCompareColumn,
			kernel.FamilyCompareVal,
			kernel.FamilyWithinRangeColumn,
			kernel.FamilyWithinRangeVal,
			kernel.FamilyArithCompare,
		}

		for _, family := range families {
			for _, kind := range kernel.AllElementKinds {
				t.bound[slot{family, kind}] = t.widest

				log.Infof("kernel/dispatch: bound %s/%s -> %s", family, kind, t.widest)
			}
		}
	})
}

// Bound returns the backend bound to a (family, kind) slot, initializing
// the table on first use.
func (t *Table) Bound(family kernel.OpFamily, kind kernel.ElementKind) Backend {
	t.Init()
	return t.bound[slot{family, kind}]
}
