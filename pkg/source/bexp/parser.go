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
	"slices"

	"github.com/consensys/predsel/pkg/dnf"
	"github.com/consensys/predsel/pkg/source"
	"github.com/consensys/predsel/pkg/source/lex"
)

// Environment resolves predicate names to slot indices.  The boolean result
// determines whether the name is permitted at all.
type Environment func(name string) (uint, bool)

// Parse a given input string into a maxterm in disjunctive normal form.
// The environment determines the set of permitted predicate names and the
// slot each occupies.
func Parse(input string, environment Environment) (dnf.Maxterm, []source.SyntaxError) {
	var (
		empty   dnf.Maxterm
		srcfile = source.NewSourceFile("expr", []byte(input))
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")

		return empty, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = removeWhitespace(tokens)
	//
	parser := &Parser{environment, srcfile, tokens, 0}
	// Parse term
	term, errs := parser.parseTerm()
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return empty, parser.syntaxErrors(parser.lookahead(), "unknown token")
	}
	// All good!
	return term, errs
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// IDENTIFIER signals a predicate name.
const IDENTIFIER uint = 4

// NOT represents logical negation
const NOT uint = 5

// OR represents logical disjunction
const OR uint = 6

// AND represents logical conjunction
const AND uint = 7

// TRUE represents logical truth
const TRUE uint = 8

// FALSE represents logical falsehood
const FALSE uint = 9

// CONNECTIVES captures the set of logical connectives.
var CONNECTIVES = []uint{AND, OR}

// Rule for describing whitespace
var whitespace lex.Scanner = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t')))

var identifierStart lex.Scanner = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner = lex.And(identifierStart, identifierRest)

// lexing rules
var rules []lex.Rule = []lex.Rule{
	lex.NewRule(lex.Unit('('), LBRACE),
	lex.NewRule(lex.Unit(')'), RBRACE),
	lex.NewRule(lex.Unit('!'), NOT),
	lex.NewRule(lex.Unit('¬'), NOT),
	lex.NewRule(lex.Unit('|', '|'), OR),
	lex.NewRule(lex.Unit('∨'), OR),
	lex.NewRule(lex.Unit('&', '&'), AND),
	lex.NewRule(lex.Unit('∧'), AND),
	lex.NewRule(lex.Unit('⊤'), TRUE),
	lex.NewRule(lex.Unit('⊥'), FALSE),
	lex.NewRule(whitespace, WHITESPACE),
	lex.NewRule(identifier, IDENTIFIER),
	lex.NewRule(lex.Eof(), END_OF),
}

// Parser provides a recursive descent parser for boolean expressions over
// abstract predicate slots.
type Parser struct {
	environment Environment
	srcfile     *source.File
	tokens      []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseTerm() (dnf.Maxterm, []source.SyntaxError) {
	var (
		empty      dnf.Maxterm
		term, errs = p.parseUnitTerm()
	)
	// initialise lookahead
	kind := p.lookahead().Kind
	//
	for len(errs) == 0 && !p.follows(END_OF, RBRACE) {
		// Sanity check
		if !p.follows(CONNECTIVES...) {
			return empty, p.syntaxErrors(p.lookahead(), "expected logical connective")
		} else if !p.follows(kind) {
			return empty, p.syntaxErrors(p.lookahead(), "braces required")
		}
		// Consume connective
		p.expect(kind)
		//
		var next dnf.Maxterm
		//
		next, errs = p.parseUnitTerm()
		//
		if len(errs) == 0 && kind == OR {
			term.Or(next)
		} else if len(errs) == 0 {
			term.And(next)
		}
	}
	//
	return term, errs
}

func (p *Parser) parseUnitTerm() (dnf.Maxterm, []source.SyntaxError) {
	var (
		empty dnf.Maxterm
		token = p.lookahead()
	)
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedTerm()
	case NOT:
		return p.parseNegatedTerm()
	case IDENTIFIER:
		return p.parsePredicate()
	case TRUE:
		p.expect(TRUE)
		return dnf.TruthMaxterm(true), nil
	case FALSE:
		p.expect(FALSE)
		return dnf.TruthMaxterm(false), nil
	}
	//
	return empty, p.syntaxErrors(token, "unknown expression")
}

func (p *Parser) parseBracketedTerm() (dnf.Maxterm, []source.SyntaxError) {
	var empty dnf.Maxterm
	//
	p.expect(LBRACE)
	//
	term, errs := p.parseTerm()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return empty, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return term, errs
}

func (p *Parser) parseNegatedTerm() (dnf.Maxterm, []source.SyntaxError) {
	var empty dnf.Maxterm
	//
	p.expect(NOT)
	//
	term, errs := p.parseUnitTerm()
	//
	if len(errs) != 0 {
		return empty, errs
	}
	//
	return term.Negate(), nil
}

func (p *Parser) parsePredicate() (dnf.Maxterm, []source.SyntaxError) {
	var empty dnf.Maxterm
	//
	id := p.expect(IDENTIFIER)
	name := p.string(id)
	// Check predicate valid
	if slot, ok := p.environment(name); ok {
		return dnf.NewMaxterm(dnf.NewLiteral(slot, true)), nil
	}
	// Nope
	return empty, p.syntaxErrors(id, "unknown predicate")
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}

func removeWhitespace(tokens []lex.Token) []lex.Token {
	kept := make([]lex.Token, 0, len(tokens))
	//
	for _, t := range tokens {
		if t.Kind != WHITESPACE {
			kept = append(kept, t)
		}
	}
	//
	return kept
}
