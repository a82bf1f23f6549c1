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
	"sort"
)

// RemoveRedundancies minimises this expression in place using the
// absorption law: any minterm subsumed by a more general minterm is
// dropped.  Minterms are first stably sorted by ascending literal count.
// Absorption only ever flows from a more general term (smaller mask) to a
// more specific one, so after sorting a single pass against the kept terms
// suffices; stability preserves insertion order amongst terms of equal
// literal count, making the result deterministic.
func (p *Maxterm) RemoveRedundancies() {
	sort.SliceStable(p.minterms, func(i, j int) bool {
		return bits.OnesCount64(p.minterms[i].Mask()) < bits.OnesCount64(p.minterms[j].Mask())
	})
	//
	kept := make([]Minterm, 0, len(p.minterms))
	//
	for _, m := range p.minterms {
		if !absorbed(kept, m) {
			kept = append(kept, m)
		}
	}
	//
	p.minterms = kept
}

// ExtractCommonPredicates factors out literals which every minterm
// constrains to the same polarity, turning (a ∧ X₁) ∨ (a ∧ X₂) into
// a ∧ (X₁ ∨ X₂).  The returned factor conjoined with the returned residual
// is logically equivalent to the receiver, which is left unchanged.  If
// removing the factor leaves some minterm with no literals at all, then
// every branch is vacuously satisfied once the factor holds, and the
// residual collapses to truth.
func (p Maxterm) ExtractCommonPredicates() (Minterm, Maxterm) {
	if p.IsAlwaysFalse() {
		return Minterm{}, p.Clone()
	}
	//
	var (
		commonTrue  = ^uint64(0)
		commonFalse = ^uint64(0)
	)
	// A slot is common-true only if every minterm constrains it true, and
	// common-false only if every minterm constrains it false.
	for i := range p.minterms {
		commonTrue &= p.minterms[i].Predicates()
		commonFalse &= p.minterms[i].Mask() ^ p.minterms[i].Predicates()
	}
	//
	var (
		residual  = p.Clone()
		collapsed = false
	)
	//
	for i := range residual.minterms {
		term := &residual.minterms[i].term
		// Globally implied slots are no longer locally constrained.
		term.predicates &= ^commonTrue
		term.mask &= ^(commonTrue | commonFalse)
		//
		collapsed = collapsed || term.mask == 0
	}
	//
	if collapsed {
		residual = TruthMaxterm(true)
	}
	//
	return Minterm{BitTerm{commonTrue, commonTrue | commonFalse}}, residual
}

func absorbed(kept []Minterm, m Minterm) bool {
	for i := range kept {
		if kept[i].CanAbsorb(m) {
			return true
		}
	}
	//
	return false
}
