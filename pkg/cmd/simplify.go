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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/predsel/pkg/dnf"
	"github.com/consensys/predsel/pkg/dnf/dedup"
	"github.com/consensys/predsel/pkg/source/bexp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression(s)",
	Short: "simplify one or more boolean predicate expressions.",
	Long: `Canonicalise the given expression(s) into disjunctive normal
	form and minimise the result using the absorption law.  Multiple
	expressions are combined by disjunction unless --conjoin is given.
	Predicate names are assigned slots in order of first use.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			conjoin   = GetFlag(cmd, "conjoin")
			factor    = GetFlag(cmd, "factor")
			raw       = GetFlag(cmd, "raw")
			allocator = bexp.NewSlotAllocator()
			combined  dnf.Maxterm
		)
		// Parse and combine all expressions
		for i, arg := range args {
			term := parseExpression(arg, allocator)
			//
			log.Debugf("parsed %q into %d minterm(s) over %d predicate(s)",
				arg, len(term.Minterms()), allocator.Count())
			//
			switch {
			case i == 0:
				combined = term
			case conjoin:
				combined.And(term)
			default:
				combined.Or(term)
			}
		}
		// Report duplication across the combined expression
		set := dedup.NewSet(uint(len(combined.Minterms())))
		duplicates := set.InsertAll(&combined)
		//
		log.Debugf("combined expression has %d distinct minterm(s), %d duplicate(s)",
			set.Size(), duplicates)
		// Minimise
		if !raw {
			combined.RemoveRedundancies()
			log.Debugf("%d minterm(s) remain after redundancy removal", len(combined.Minterms()))
		}
		//
		if factor {
			common, residual := combined.ExtractCommonPredicates()
			printFactored(cmd, common, residual, allocator)
		} else {
			fmt.Println(render(cmd, &combined, allocator))
		}
	},
}

func printFactored(cmd *cobra.Command, common dnf.Minterm, residual dnf.Maxterm, allocator *bexp.SlotAllocator) {
	if common.IsAlwaysTrue() {
		// Nothing was extracted
		fmt.Println(render(cmd, &residual, allocator))
		return
	}
	//
	if useUnicode(cmd) {
		rendered := residual.Format(allocator.Name)
		// Brace the residual whenever it retains multiple branches
		if len(residual.Minterms()) > 1 {
			rendered = "(" + rendered + ")"
		}
		//
		fmt.Printf("%s ∧ %s\n", common.Format(true, allocator.Name), rendered)
	} else {
		fmt.Printf("%s & %s\n", common.String(), residual.String())
	}
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().Bool("conjoin", false, "combine expressions with conjunction rather than disjunction")
	simplifyCmd.Flags().Bool("factor", false, "extract predicates common to every branch")
	simplifyCmd.Flags().Bool("raw", false, "skip redundancy removal")
}
