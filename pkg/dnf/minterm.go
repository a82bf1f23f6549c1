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
	"math/bits"
	"strings"
)

// FNV1a constants used for combining term words into a hashcode.
const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Minterm represents a conjunction of literals, stored as a masked, signed
// bit pattern.  The empty minterm (all-zero mask) represents logical truth.
// Minterms are value types: they are copied wherever needed and never
// aliased.
type Minterm struct {
	term BitTerm
}

// NewMinterm constructs a minterm from explicit predicate and mask words.
func NewMinterm(predicates uint64, mask uint64) Minterm {
	return Minterm{NewBitTerm(predicates, mask)}
}

// MintermFromStrings constructs a minterm from '0' / '1' bit patterns,
// where the rightmost character denotes slot zero.
func MintermFromStrings(predicates string, mask string) Minterm {
	return Minterm{BitTermFromStrings(predicates, mask)}
}

// NewLiteral constructs a minterm constraining a single slot to a given
// polarity.
func NewLiteral(index uint, value bool) Minterm {
	var term BitTerm
	//
	term.Set(index, value)
	//
	return Minterm{term}
}

// Set the given slot to a given polarity within this conjunction.
func (p *Minterm) Set(index uint, value bool) {
	p.term.Set(index, value)
}

// Size returns the fixed width of this term.
func (p Minterm) Size() uint {
	return p.term.Size()
}

// Predicates returns the polarity word of this term.
func (p Minterm) Predicates() uint64 {
	return p.term.Predicates()
}

// Mask returns the participation word of this term.
func (p Minterm) Mask() uint64 {
	return p.term.Mask()
}

// IsAlwaysTrue checks whether this minterm is the empty conjunction, which
// holds under every assignment.
func (p Minterm) IsAlwaysTrue() bool {
	return p.term.mask == 0
}

// CanAbsorb determines whether this minterm subsumes another via the
// absorption law.  That is, whether this term constrains a subset of the
// other's slots and agrees with it on every constrained polarity, as "a"
// absorbs "a ∧ b".
func (p Minterm) CanAbsorb(other Minterm) bool {
	if p.term.mask&^other.term.mask != 0 {
		return false
	}
	//
	return p.term.predicates == other.term.predicates&p.term.mask
}

// Conflicts returns the slots which both minterms constrain to opposite
// polarities.  A non-zero result means their conjunction is unsatisfiable.
func (p Minterm) Conflicts(other Minterm) uint64 {
	return p.term.mask & other.term.mask & (p.term.predicates ^ other.term.predicates)
}

// And computes the conjunction of two minterms.  Conflicting literals render
// the conjunction unsatisfiable, in which case the result is the empty
// (constant false) maxterm; otherwise the result is a single minterm
// constraining the union of both slot sets.
func (p Minterm) And(other Minterm) Maxterm {
	if p.Conflicts(other) != 0 {
		return Maxterm{}
	}
	//
	combined := Minterm{BitTerm{
		p.term.predicates | other.term.predicates,
		p.term.mask | other.term.mask,
	}}
	//
	return Maxterm{[]Minterm{combined}}
}

// Negate applies De Morgan's law to this conjunction, producing the
// disjunction of single-literal negations (one minterm per participating
// slot, in ascending slot order).  The empty minterm (truth) negates to the
// empty maxterm (falsehood).
func (p Minterm) Negate() Maxterm {
	var (
		result Maxterm
		mask   = p.term.mask
	)
	//
	for mask != 0 {
		index := uint(bits.TrailingZeros64(mask))
		result.OrMinterm(NewLiteral(index, p.term.predicates&(uint64(1)<<index) == 0))
		// Clear lowest participating slot
		mask &= mask - 1
	}
	//
	return result
}

// Eval determines whether this conjunction holds under a given assignment
// of polarities to slots.  Bits of the assignment outside the mask are
// ignored.
func (p Minterm) Eval(assignment uint64) bool {
	return assignment&p.term.mask == p.term.predicates
}

// Equals determines whether two minterms are bitwise identical.
func (p Minterm) Equals(other Minterm) bool {
	return p.term == other.term
}

// Hash returns an FNV1a hashcode combining the predicate and mask words,
// suitable for hash-based containers maintained by a calling optimiser.
func (p Minterm) Hash() uint64 {
	hash := offset64
	hash = (hash ^ p.term.predicates) * prime64
	hash = (hash ^ p.term.mask) * prime64
	//
	return hash
}

// String returns the "(predicates, mask)" diagnostic form of this term.
func (p Minterm) String() string {
	return p.term.String()
}

// Format returns a human-readable rendition of this conjunction, mapping
// slot indices to names via the given function.  Braces are included only
// when requested and necessary.
func (p Minterm) Format(braces bool, mapping func(uint) string) string {
	var (
		builder strings.Builder
		mask    = p.term.mask
	)
	//
	if p.IsAlwaysTrue() {
		return "⊤"
	}
	//
	braces = braces && bits.OnesCount64(mask) > 1
	//
	if braces {
		builder.WriteString("(")
	}
	//
	for first := true; mask != 0; first = false {
		index := uint(bits.TrailingZeros64(mask))
		//
		if !first {
			builder.WriteString(" ∧ ")
		}
		//
		if p.term.predicates&(uint64(1)<<index) == 0 {
			builder.WriteString("¬")
		}
		//
		builder.WriteString(mapping(index))
		//
		mask &= mask - 1
	}
	//
	if braces {
		builder.WriteString(")")
	}
	//
	return builder.String()
}
