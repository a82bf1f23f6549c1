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
package dnf

import (
	"fmt"
	"math/bits"
)

// Width is the fixed number of predicate slots available within a single
// term.  This is a hard architectural constraint, not a configuration knob:
// an expression mentioning more than Width distinct predicates cannot be
// represented.
const Width uint = 64

// BitTerm provides the underlying storage for a term: a pair of fixed-width
// bit vectors, where mask determines which predicate slots participate in
// the term, and predicates determines the polarity of each participating
// slot.  Predicate bits outside the mask are always zero.
type BitTerm struct {
	predicates uint64
	mask       uint64
}

// NewBitTerm constructs a BitTerm from explicit predicate and mask words.
// Predicate bits outside the mask are discarded, maintaining the invariant
// that only participating slots carry a polarity.
func NewBitTerm(predicates uint64, mask uint64) BitTerm {
	return BitTerm{predicates & mask, mask}
}

// BitTermFromStrings constructs a BitTerm from two strings of '0' / '1'
// characters, where the rightmost character denotes slot zero.  This is the
// most convenient form for tests and for literal construction from an
// upstream predicate-indexing pass.  Malformed patterns indicate a confused
// caller and panic.
func BitTermFromStrings(predicates string, mask string) BitTerm {
	return NewBitTerm(parseBits(predicates), parseBits(mask))
}

// Set the given slot to a given polarity, marking it as participating in
// this term.  Slots at or beyond the fixed width panic, converting silent
// corruption into an observable fault.
func (p *BitTerm) Set(index uint, value bool) {
	if index >= Width {
		panic(fmt.Sprintf("predicate slot %d out of range", index))
	}
	//
	bit := uint64(1) << index
	p.mask |= bit
	//
	if value {
		p.predicates |= bit
	} else {
		p.predicates &= ^bit
	}
}

// Flip inverts the polarity of every participating slot.  Slots outside the
// mask are unaffected.
func (p *BitTerm) Flip() {
	p.predicates = ^p.predicates & p.mask
}

// Size returns the fixed width of this term, not the number of
// participating slots.
func (p BitTerm) Size() uint {
	return Width
}

// Predicates returns the polarity word of this term.
func (p BitTerm) Predicates() uint64 {
	return p.predicates
}

// Mask returns the participation word of this term.
func (p BitTerm) Mask() uint64 {
	return p.mask
}

// Equals determines whether two terms are bitwise identical.
func (p BitTerm) Equals(other BitTerm) bool {
	return p == other
}

// String returns a human-readable form "(predicates, mask)" for diagnostic
// purposes.  Both words are trimmed to the highest participating slot.
func (p BitTerm) String() string {
	width := max(1, bits.Len64(p.mask))
	//
	return fmt.Sprintf("(%0*b, %0*b)", width, p.predicates, width, p.mask)
}

func parseBits(pattern string) uint64 {
	var word uint64
	//
	if uint(len(pattern)) > Width {
		panic("bit pattern exceeds fixed width")
	}
	//
	for _, c := range pattern {
		switch c {
		case '0':
			word = word << 1
		case '1':
			word = (word << 1) | 1
		default:
			panic(fmt.Sprintf("malformed bit pattern %q", pattern))
		}
	}
	//
	return word
}
