package bindings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to a clear diagnostic
	// instead of a link error at runtime.
	ErrNotBuilt = errors.New("antimony/internal/bindings: native bindings not built")
)

// LoadError reports a failed load or compile operation. Code is the negative
// sentinel returned by the native library; Detail is the library's error
// buffer at the time of failure.
type LoadError struct {
	Code   int64
	Detail string
}

func (e *LoadError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("antimony: load failed (code %d)", e.Code)
	}
	return fmt.Sprintf("antimony: load failed (code %d): %s", e.Code, e.Detail)
}

// NotFoundError reports a single-value query that returned null where null
// means "no such entity": an unknown module or symbol name, or an index past
// the corresponding count.
type NotFoundError struct {
	What   string
	Detail string
}

func (e *NotFoundError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("antimony: %s not found", e.What)
	}
	return fmt.Sprintf("antimony: %s not found: %s", e.What, e.Detail)
}

// loadStatus translates a load-family result code into an error. Any
// non-negative code, including 0, is success; detail is only consulted on
// failure.
func loadStatus(code int64, detail string) error {
	if code >= 0 {
		return nil
	}
	return &LoadError{Code: code, Detail: detail}
}

// SymbolPair records one synchronization relation between two symbols of a
// composed module: Former is the submodule-local name, Replacement the name
// it was synchronized to.
type SymbolPair struct {
	Former      string
	Replacement string
}

// SymbolKind selects a symbol category for the *OfType query family. Values
// mirror the return_type enumeration in antimony_api.h and must not be
// reordered.
type SymbolKind int

const (
	AllSymbols SymbolKind = iota
	AllSpecies
	AllFormulas
	AllReactions
	AllInteractions
	AllEvents
	AllCompartments
	AllDNAStrands
	AllUnknown
)

func (k SymbolKind) String() string {
	switch k {
	case AllSymbols:
		return "symbols"
	case AllSpecies:
		return "species"
	case AllFormulas:
		return "formulas"
	case AllReactions:
		return "reactions"
	case AllInteractions:
		return "interactions"
	case AllEvents:
		return "events"
	case AllCompartments:
		return "compartments"
	case AllDNAStrands:
		return "DNA strands"
	default:
		return "unknown"
	}
}
