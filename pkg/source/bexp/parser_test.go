package bexp

import (
	"fmt"
	"testing"

	"github.com/consensys/predsel/pkg/dnf"
)

func Test_Parse_01(t *testing.T) {
	testParse(t, "a", dnf.NewMaxterm(dnf.NewLiteral(0, true)))
}

func Test_Parse_02(t *testing.T) {
	testParse(t, "!a", dnf.NewMaxterm(dnf.NewLiteral(0, false)))
}

func Test_Parse_03(t *testing.T) {
	testParse(t, "a && b", dnf.NewMaxterm(dnf.NewMinterm(0b11, 0b11)))
}

func Test_Parse_04(t *testing.T) {
	testParse(t, "a || b", dnf.NewMaxterm(
		dnf.NewLiteral(0, true),
		dnf.NewLiteral(1, true)))
}

func Test_Parse_05(t *testing.T) {
	testParse(t, "a && !b", dnf.NewMaxterm(dnf.NewMinterm(0b01, 0b11)))
}

func Test_Parse_06(t *testing.T) {
	// unicode connectives parse identically
	testParse(t, "a ∧ ¬b", dnf.NewMaxterm(dnf.NewMinterm(0b01, 0b11)))
}

func Test_Parse_07(t *testing.T) {
	testParse(t, "(a && b) || c", dnf.NewMaxterm(
		dnf.NewMinterm(0b011, 0b011),
		dnf.NewLiteral(2, true)))
}

func Test_Parse_08(t *testing.T) {
	// negation distributes over the bracketed conjunction
	testParse(t, "!(a && b)", dnf.NewMaxterm(
		dnf.NewLiteral(0, false),
		dnf.NewLiteral(1, false)))
}

func Test_Parse_09(t *testing.T) {
	term := testParseAny(t, "⊤")
	//
	if !term.IsAlwaysTrue() {
		t.Errorf("expected truth, got %s", term.String())
	}
}

func Test_Parse_10(t *testing.T) {
	term := testParseAny(t, "⊥")
	//
	if !term.IsAlwaysFalse() {
		t.Errorf("expected falsehood, got %s", term.String())
	}
}

func Test_Parse_11(t *testing.T) {
	// conflicting conjunction collapses to falsehood
	term := testParseAny(t, "a && !a")
	//
	if !term.IsAlwaysFalse() {
		t.Errorf("expected falsehood, got %s", term.String())
	}
}

func Test_Parse_12(t *testing.T) {
	// conjunction distributes over both disjuncts
	testParse(t, "(a || b) && c", dnf.NewMaxterm(
		dnf.NewMinterm(0b101, 0b101),
		dnf.NewMinterm(0b110, 0b110)))
}

// Errors

func Test_ParseErr_01(t *testing.T) {
	// mixing connectives requires braces
	testParseErr(t, "a && b || c")
}

func Test_ParseErr_02(t *testing.T) {
	testParseErr(t, "(a && b")
}

func Test_ParseErr_03(t *testing.T) {
	testParseErr(t, "a &&")
}

func Test_ParseErr_04(t *testing.T) {
	testParseErr(t, "a b")
}

func Test_ParseErr_05(t *testing.T) {
	// '#' matches no lexing rule
	testParseErr(t, "a # b")
}

func Test_ParseErr_06(t *testing.T) {
	// environment rejects every name
	_, errs := Parse("a", func(string) (uint, bool) { return 0, false })
	//
	if len(errs) == 0 {
		t.Errorf("expected unknown predicate error")
	}
}

// Allocator

func Test_Allocator_01(t *testing.T) {
	allocator := NewSlotAllocator()
	// names are allocated in order of first use
	if slot, ok := allocator.Resolve("x"); !ok || slot != 0 {
		t.Errorf("expected slot 0, got %d", slot)
	}
	//
	if slot, ok := allocator.Resolve("y"); !ok || slot != 1 {
		t.Errorf("expected slot 1, got %d", slot)
	}
	// resolution is stable
	if slot, ok := allocator.Resolve("x"); !ok || slot != 0 {
		t.Errorf("expected slot 0, got %d", slot)
	}
	//
	if name := allocator.Name(1); name != "y" {
		t.Errorf("expected name y, got %s", name)
	}
}

func Test_Allocator_02(t *testing.T) {
	allocator := NewSlotAllocator()
	// exhaust every slot
	for i := uint(0); i < dnf.Width; i++ {
		if _, ok := allocator.Resolve(fmt.Sprintf("p%d", i)); !ok {
			t.Errorf("allocation of slot %d should succeed", i)
		}
	}
	//
	if _, ok := allocator.Resolve("overflow"); ok {
		t.Errorf("allocation beyond the fixed width should fail")
	}
	//
	if _, ok := allocator.Lookup("overflow"); ok {
		t.Errorf("failed allocation should not be recorded")
	}
}

// ============================================================================
// Framework
// ============================================================================

func testParse(t *testing.T, input string, expected dnf.Maxterm) {
	actual := testParseAny(t, input)
	//
	if !expected.Equals(actual) {
		t.Errorf("parsing %s: expected %s, got %s", input, expected.String(), actual.String())
	}
}

func testParseAny(t *testing.T, input string) dnf.Maxterm {
	term, errs := Parse(input, NewSlotAllocator().Environment())
	// Sanity check errors
	if len(errs) > 0 {
		t.Errorf("parsing %s: %s", input, errs[0].Message())
		t.FailNow()
	}
	//
	return term
}

func testParseErr(t *testing.T, input string) {
	if _, errs := Parse(input, NewSlotAllocator().Environment()); len(errs) == 0 {
		t.Errorf("parsing %s should fail", input)
	}
}
