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
package bexp

import (
	"fmt"

	"github.com/consensys/predsel/pkg/dnf"
)

// SlotAllocator assigns slot indices to predicate names on first use,
// bounded by the fixed term width.  It doubles as a parsing environment for
// callers which do not know their predicate set up front, such as the
// command-line tools.
type SlotAllocator struct {
	slots map[string]uint
	names []string
}

// NewSlotAllocator constructs an empty allocator.
func NewSlotAllocator() *SlotAllocator {
	return &SlotAllocator{slots: make(map[string]uint)}
}

// Resolve returns the slot occupied by a given name, allocating the next
// free slot for names not seen before.  Allocation fails once every slot is
// taken.
func (p *SlotAllocator) Resolve(name string) (uint, bool) {
	if slot, ok := p.slots[name]; ok {
		return slot, true
	}
	// Check a slot remains
	if uint(len(p.names)) >= dnf.Width {
		return 0, false
	}
	//
	slot := uint(len(p.names))
	p.slots[name] = slot
	p.names = append(p.names, name)
	//
	return slot, true
}

// Lookup returns the slot occupied by a given name, without allocating.
func (p *SlotAllocator) Lookup(name string) (uint, bool) {
	slot, ok := p.slots[name]
	//
	return slot, ok
}

// Name returns the predicate name occupying a given slot.
func (p *SlotAllocator) Name(slot uint) string {
	if slot < uint(len(p.names)) {
		return p.names[slot]
	}
	//
	return fmt.Sprintf("p%d", slot)
}

// Count returns the number of slots allocated so far.
func (p *SlotAllocator) Count() uint {
	return uint(len(p.names))
}

// Environment exposes this allocator as a parsing environment.
func (p *SlotAllocator) Environment() Environment {
	return p.Resolve
}
