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
package dedup

import (
	"strings"

	"github.com/consensys/predsel/pkg/dnf"
)

// A reasonably simple hashset over minterms which permits collisions.
// Minterm hashcodes combine two words into one and are not guaranteed
// unique, so collisions are handled gracefully using buckets rather than
// simply discarding them.  Calling optimisers use this to deduplicate
// identical subexpressions across query plans.

// Set defines a minterm set backed by a map of hashcodes to buckets, where
// membership within a bucket is resolved by bitwise equality.
type Set struct {
	// items maps hashcodes to *buckets* of minterms.
	items map[uint64][]dnf.Minterm
	// count of minterms across all buckets.
	count uint
}

// NewSet creates a new Set with a given underlying capacity.
func NewSet(size uint) *Set {
	return &Set{make(map[uint64][]dnf.Minterm, size), 0}
}

// Size returns the number of unique minterms stored in this set.
func (p *Set) Size() uint {
	return p.count
}

// Insert a minterm into this set, returning true if it was already
// contained and false otherwise.
func (p *Set) Insert(term dnf.Minterm) bool {
	hash := term.Hash()
	// Lookup existing bucket
	bucket := p.items[hash]
	//
	for _, item := range bucket {
		if item.Equals(term) {
			return true
		}
	}
	//
	p.items[hash] = append(bucket, term)
	p.count++
	//
	return false
}

// InsertAll inserts every minterm of a given maxterm, returning the number
// which were already contained.
func (p *Set) InsertAll(term *dnf.Maxterm) uint {
	duplicates := uint(0)
	//
	for _, m := range term.Minterms() {
		if p.Insert(m) {
			duplicates++
		}
	}
	//
	return duplicates
}

// Contains checks whether the given minterm is contained within this set,
// or not.
func (p *Set) Contains(term dnf.Minterm) bool {
	for _, item := range p.items[term.Hash()] {
		if item.Equals(term) {
			return true
		}
	}
	//
	return false
}

func (p *Set) String() string {
	var builder strings.Builder
	//
	first := true
	// Write opening brace
	builder.WriteString("{")
	// Iterate all buckets
	for _, bucket := range p.items {
		for _, item := range bucket {
			if !first {
				builder.WriteString(",")
			}
			//
			first = false
			//
			builder.WriteString(item.String())
		}
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
