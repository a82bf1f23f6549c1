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
	"slices"
	"strings"
)

// Maxterm represents a boolean expression in Disjunctive Normal Form: an
// ordered disjunction of minterms.  The empty maxterm represents constant
// falsehood, whilst a maxterm holding exactly one empty minterm represents
// constant truth.  No other special encodings exist.  Canonical minimality
// is not maintained automatically; callers must invoke RemoveRedundancies
// when a minimal form is required.
type Maxterm struct {
	minterms []Minterm
}

// NewMaxterm constructs a maxterm from one or more minterms.  Constructing
// from an explicitly empty list is a contract violation and panics:
// constant falsehood is the zero value (or the result of logical
// operations), and must not be spelled as an empty literal list.
func NewMaxterm(minterms ...Minterm) Maxterm {
	if len(minterms) == 0 {
		panic("maxterm requires at least one minterm")
	}
	//
	return Maxterm{slices.Clone(minterms)}
}

// TruthMaxterm constructs either constant truth or constant falsehood.
func TruthMaxterm(value bool) Maxterm {
	if value {
		return Maxterm{[]Minterm{{}}}
	}
	//
	return Maxterm{}
}

// And returns the conjunction of two maxterms.
func And(lhs Maxterm, rhs Maxterm) Maxterm {
	result := lhs.Clone()
	result.And(rhs)
	//
	return result
}

// Or returns the disjunction of two maxterms.
func Or(lhs Maxterm, rhs Maxterm) Maxterm {
	result := lhs.Clone()
	result.Or(rhs)
	//
	return result
}

// Not returns the negation of a maxterm.
func Not(term Maxterm) Maxterm {
	return term.Negate()
}

// Minterms returns the individual minterms disjoined within this maxterm.
func (p Maxterm) Minterms() []Minterm {
	return p.minterms
}

// Clone this maxterm, ensuring the result shares no state with the
// original.
func (p Maxterm) Clone() Maxterm {
	return Maxterm{slices.Clone(p.minterms)}
}

// IsAlwaysTrue checks whether this maxterm is constant truth: exactly one
// minterm which is itself always true.
func (p Maxterm) IsAlwaysTrue() bool {
	return len(p.minterms) == 1 && p.minterms[0].IsAlwaysTrue()
}

// IsAlwaysFalse checks whether this maxterm is constant falsehood, i.e. the
// empty disjunction.
func (p Maxterm) IsAlwaysFalse() bool {
	return len(p.minterms) == 0
}

// OrMinterm disjoins a single minterm onto this maxterm.  No simplification
// is performed.
func (p *Maxterm) OrMinterm(m Minterm) {
	p.minterms = append(p.minterms, m)
}

// Or disjoins another maxterm onto this one, appending its minterms in
// order.  No simplification is performed.
func (p *Maxterm) Or(other Maxterm) {
	p.minterms = append(p.minterms, other.minterms...)
}

// And conjoins another maxterm onto this one by distributing conjunction
// over disjunction: every pairing of minterms is conjoined, and the
// satisfiable results disjoined together.  This is quadratic in the number
// of minterms and performs no deduplication.
func (p *Maxterm) And(other Maxterm) {
	var result Maxterm
	//
	for i := range p.minterms {
		for j := range other.minterms {
			result.Or(p.minterms[i].And(other.minterms[j]))
		}
	}
	//
	*p = result
}

// Negate applies De Morgan's law over the disjunction: the negation of
// every minterm is computed, and the results conjoined in order.  The empty
// maxterm (falsehood) negates to truth, whilst any always-true minterm
// forces the negation to falsehood at that point in the fold.
func (p Maxterm) Negate() Maxterm {
	result := TruthMaxterm(true)
	//
	for i := range p.minterms {
		result.And(p.minterms[i].Negate())
	}
	//
	return result
}

// Append disjoins a fresh single-literal minterm onto this maxterm.
func (p *Maxterm) Append(index uint, value bool) {
	p.OrMinterm(NewLiteral(index, value))
}

// AppendEmpty disjoins a fresh empty (always true) minterm onto this
// maxterm.
func (p *Maxterm) AppendEmpty() {
	p.OrMinterm(Minterm{})
}

// Mask returns the union of the participation words of every minterm,
// identifying which slots this expression mentions at all.
func (p Maxterm) Mask() uint64 {
	var mask uint64
	//
	for i := range p.minterms {
		mask |= p.minterms[i].Mask()
	}
	//
	return mask
}

// Eval determines whether this expression holds under a given assignment of
// polarities to slots.
func (p Maxterm) Eval(assignment uint64) bool {
	for i := range p.minterms {
		if p.minterms[i].Eval(assignment) {
			return true
		}
	}
	//
	return false
}

// Equals determines whether two maxterms are structurally identical, that
// is they hold bitwise-equal minterms in the same order.
func (p Maxterm) Equals(other Maxterm) bool {
	if len(p.minterms) != len(other.minterms) {
		return false
	}
	//
	for i := range p.minterms {
		if !p.minterms[i].Equals(other.minterms[i]) {
			return false
		}
	}
	//
	return true
}

// String returns a bracketed list of the "(predicates, mask)" forms of the
// individual minterms, for diagnostic purposes only.
func (p Maxterm) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i := range p.minterms {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(p.minterms[i].String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Format returns a human-readable rendition of this expression, mapping
// slot indices to names via the given function.
func (p Maxterm) Format(mapping func(uint) string) string {
	var (
		builder strings.Builder
		braces  = len(p.minterms) > 1
	)
	// check for truth or falsehood
	if p.IsAlwaysFalse() {
		return "⊥"
	} else if p.IsAlwaysTrue() {
		return "⊤"
	}
	//
	for i := range p.minterms {
		if i != 0 {
			builder.WriteString(" ∨ ")
		}
		//
		builder.WriteString(p.minterms[i].Format(braces, mapping))
	}
	//
	return builder.String()
}
