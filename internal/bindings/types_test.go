package bindings

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStatusSuccess(t *testing.T) {
	for _, code := range []int64{0, 1, 2, 42, 1 << 40} {
		if err := loadStatus(code, "stale detail"); err != nil {
			t.Errorf("loadStatus(%d) = %v, want nil", code, err)
		}
	}
}

func TestLoadStatusFailure(t *testing.T) {
	err := loadStatus(-1, "Error in model string, line 3: unknown symbol 'k9'")
	if err == nil {
		t.Fatal("loadStatus(-1) = nil, want error")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("loadStatus(-1) = %T, want *LoadError", err)
	}
	if le.Code != -1 {
		t.Errorf("Code = %d, want -1", le.Code)
	}
	if !strings.Contains(le.Error(), "unknown symbol 'k9'") {
		t.Errorf("Error() = %q, missing library detail", le.Error())
	}
}

func TestLoadErrorMessageWithoutDetail(t *testing.T) {
	e := &LoadError{Code: -2}
	if got := e.Error(); !strings.Contains(got, "code -2") {
		t.Errorf("Error() = %q, want code in message", got)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	e := &NotFoundError{What: "reaction rate", Detail: "no reaction 7 in module 'demo'"}
	got := e.Error()
	if !strings.Contains(got, "reaction rate") || !strings.Contains(got, "module 'demo'") {
		t.Errorf("Error() = %q, want subject and detail", got)
	}
}

func TestSymbolKindString(t *testing.T) {
	cases := map[SymbolKind]string{
		AllSymbols:      "symbols",
		AllSpecies:      "species",
		AllReactions:    "reactions",
		AllDNAStrands:   "DNA strands",
		SymbolKind(999): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
