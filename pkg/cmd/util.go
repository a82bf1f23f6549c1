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
	"github.com/consensys/predsel/pkg/source"
	"github.com/consensys/predsel/pkg/source/bexp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error
// arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a given expression, reporting any syntax errors and exiting on
// failure.
func parseExpression(input string, allocator *bexp.SlotAllocator) dnf.Maxterm {
	term, errs := bexp.Parse(input, allocator.Environment())
	//
	if len(errs) > 0 {
		reportErrors(errs)
		os.Exit(2)
	}
	//
	return term
}

// Report one or more syntax errors to the console.
func reportErrors(errs []source.SyntaxError) {
	for _, err := range errs {
		fmt.Printf("%s:%s\n", err.SourceFile().Filename(), err.Error())
	}
}

// Unicode output is used when writing to an actual terminal, since the
// connective symbols are far easier to read; piped output falls back to the
// raw bit-pattern form unless forced.
func useUnicode(cmd *cobra.Command) bool {
	return GetFlag(cmd, "unicode") || term.IsTerminal(int(os.Stdout.Fd()))
}

// Render a maxterm either as named predicates or in its raw bit-pattern
// form.
func render(cmd *cobra.Command, maxterm *dnf.Maxterm, allocator *bexp.SlotAllocator) string {
	if useUnicode(cmd) {
		return maxterm.Format(allocator.Name)
	}
	//
	return maxterm.String()
}
