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
	"strings"

	"github.com/consensys/predsel/pkg/dnf"
	"github.com/consensys/predsel/pkg/source/bexp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression [assignment(s)]",
	Short: "evaluate a boolean predicate expression.",
	Long: `Evaluate a given expression under an assignment given as name=0
	or name=1 arguments.  When no assignment is given, a complete truth
	table over the mentioned predicates is printed instead.`,
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
		allocator := bexp.NewSlotAllocator()
		term := parseExpression(args[0], allocator)
		//
		if len(args) == 1 {
			printTruthTable(cmd, &term, allocator)
			return
		}
		//
		assignment := parseAssignment(args[1:], &term, allocator)
		//
		for _, m := range term.Minterms() {
			log.Debugf("minterm %s evaluates %t", m.String(), m.Eval(assignment))
		}
		//
		fmt.Println(term.Eval(assignment))
	},
}

// Determine the assignment word described by a sequence of name=0 / name=1
// arguments, checking every mentioned predicate is assigned.
func parseAssignment(args []string, term *dnf.Maxterm, allocator *bexp.SlotAllocator) uint64 {
	var assignment, assigned uint64
	//
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || (value != "0" && value != "1") {
			fmt.Printf("malformed assignment %q\n", arg)
			os.Exit(2)
		}
		//
		slot, ok := allocator.Lookup(name)
		if !ok {
			fmt.Printf("predicate %q not mentioned in expression\n", name)
			os.Exit(2)
		}
		//
		assigned |= uint64(1) << slot
		//
		if value == "1" {
			assignment |= uint64(1) << slot
		}
	}
	// Every mentioned predicate must be assigned
	if missing := term.Mask() &^ assigned; missing != 0 {
		for slot := uint(0); slot < dnf.Width; slot++ {
			if missing&(uint64(1)<<slot) != 0 {
				fmt.Printf("predicate %q unassigned\n", allocator.Name(slot))
			}
		}
		//
		os.Exit(2)
	}
	//
	return assignment
}

func printTruthTable(cmd *cobra.Command, term *dnf.Maxterm, allocator *bexp.SlotAllocator) {
	count := allocator.Count()
	//
	if limit := GetUint(cmd, "limit"); count > limit {
		fmt.Printf("expression mentions %d predicates, truth table limited to %d (see --limit)\n", count, limit)
		os.Exit(2)
	}
	// Header row
	for slot := uint(0); slot < count; slot++ {
		fmt.Printf("%s ", allocator.Name(slot))
	}
	//
	fmt.Println("|")
	// One row per assignment
	for assignment := uint64(0); assignment < uint64(1)<<count; assignment++ {
		for slot := uint(0); slot < count; slot++ {
			value := (assignment >> slot) & 1
			fmt.Printf("%*d ", len(allocator.Name(slot)), value)
		}
		//
		fmt.Printf("| %t\n", term.Eval(assignment))
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Uint("limit", 10, "maximum number of predicates for truth table output")
}
