package engine

import (
	"strings"
	"sync"
	"testing"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	c, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if c == nil {
		t.Fatal("expected non-nil composition")
	}
	if !c.IsEmpty() {
		t.Errorf("expected empty composition, got %d elements", c.Count())
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	c, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if c == nil || !c.IsEmpty() {
		t.Fatal("expected empty composition")
	}
}

func TestEvaluateExpressionWithoutEmit(t *testing.T) {
	eng := NewEngine()

	// Building geometry without emitting it leaves the result empty.
	c, evalErrs, err := eng.Evaluate(`(circle :radius 1)`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if !c.IsEmpty() {
		t.Errorf("expected empty composition without emit, got %d elements", c.Count())
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine()

	c, evalErrs, err := eng.Evaluate("(emit (circle :radius 1)")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil composition on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for syntax error")
	}
	if evalErrs[0].Message == "" {
		t.Error("eval error message should not be empty")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	eng := NewEngine()

	c, evalErrs, err := eng.Evaluate("(+ 1 undefined-symbol)")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil composition on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvaluateBuiltinError(t *testing.T) {
	eng := NewEngine()

	c, evalErrs, err := eng.Evaluate(`(emit (circle :radius -1))`)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil composition on builtin error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
	if !strings.Contains(evalErrs[0].Message, "radius") {
		t.Errorf("error message %q does not mention the bad parameter", evalErrs[0].Message)
	}
}

func TestEvaluateFreshEnvironmentPerCall(t *testing.T) {
	eng := NewEngine()

	// Definitions do not leak between evaluations.
	_, evalErrs, err := eng.Evaluate(`(def r 2)`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("first evaluation failed: %v %v", err, evalErrs)
	}
	c, evalErrs, err := eng.Evaluate(`(emit (circle :radius r))`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if c != nil || len(evalErrs) == 0 {
		t.Error("expected eval error for symbol defined in a previous evaluation")
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	eng := NewEngine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, evalErrs, err := eng.Evaluate(`(emit (circle :radius 1))`)
			if err != nil {
				// Concurrent evaluations may supersede each other.
				if !strings.Contains(err.Error(), "superseded") {
					t.Errorf("unexpected fatal error: %v", err)
				}
				return
			}
			if len(evalErrs) > 0 {
				t.Errorf("unexpected eval errors: %v", evalErrs)
				return
			}
			if len(c.Circles) != 1 {
				t.Errorf("expected 1 circle, got %d", len(c.Circles))
			}
		}()
	}
	wg.Wait()
}

func TestParseZygomysErrorLineInfo(t *testing.T) {
	cases := []struct {
		name     string
		msg      string
		wantLine int
	}{
		{"long form", "Error on line 3: undefined symbol", 3},
		{"short form", "line 12: unexpected token", 12},
		{"no line info", "something went wrong", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := parseZygomysError(errString(tc.msg))
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1", len(errs))
			}
			if errs[0].Line != tc.wantLine {
				t.Errorf("line = %d, want %d", errs[0].Line, tc.wantLine)
			}
			if errs[0].Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }
