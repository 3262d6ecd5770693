package antimony

import "github.com/antimony-lang/antimony-go/internal/bindings"

// Module is a named view into the active module set. It holds no native
// state of its own; every method re-queries the library under the session
// lock, so a Module from a superseded load silently refers to whatever the
// active set now defines under that name.
type Module struct {
	s    *Session
	name string
}

// Name returns the module name this view queries.
func (m *Module) Name() string { return m.name }

func (m *Module) locked(fn func() error) error {
	if m == nil {
		return ErrSessionClosed
	}
	return m.s.locked(fn)
}

// SymbolKind selects a symbol category for the symbol query family.
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

func (k SymbolKind) String() string { return bindings.SymbolKind(k).String() }

// SymbolCount reports how many symbols of the given kind the module defines.
// Count queries never fail; an unknown kind simply counts zero.
func (m *Module) SymbolCount(kind SymbolKind) (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumSymbols(m.name, bindings.SymbolKind(kind))
		return nil
	})
	return n, err
}

// SymbolNames lists the names of every symbol of the given kind.
func (m *Module) SymbolNames(kind SymbolKind) ([]string, error) {
	var names []string
	err := m.locked(func() error {
		names = bindings.SymbolNames(m.name, bindings.SymbolKind(kind))
		return nil
	})
	return names, err
}

// SymbolName returns the name of the n-th symbol of the given kind.
func (m *Module) SymbolName(kind SymbolKind, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthSymbolName(m.name, bindings.SymbolKind(kind), n)
	})
}

// SymbolEquations lists the defining equation of every symbol of the given
// kind, in symbol order. Symbols without an equation appear as "".
func (m *Module) SymbolEquations(kind SymbolKind) ([]string, error) {
	var eqs []string
	err := m.locked(func() error {
		eqs = bindings.SymbolEquations(m.name, bindings.SymbolKind(kind))
		return nil
	})
	return eqs, err
}

// SymbolEquation returns the defining equation of the n-th symbol of the
// given kind. An existing symbol with no equation yields "" with a nil
// error; an out-of-range index yields a NotFoundError. The two cases are
// deliberately distinct.
func (m *Module) SymbolEquation(kind SymbolKind, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthSymbolEquation(m.name, bindings.SymbolKind(kind), n)
	})
}

// InitialAssignments lists the initial assignment of every symbol of the
// given kind, "" where unset.
func (m *Module) InitialAssignments(kind SymbolKind) ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.SymbolInitialAssignments(m.name, bindings.SymbolKind(kind))
		return nil
	})
	return out, err
}

// InitialAssignment returns the n-th symbol's initial assignment, with the
// same unset-vs-missing distinction as SymbolEquation.
func (m *Module) InitialAssignment(kind SymbolKind, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthSymbolInitialAssignment(m.name, bindings.SymbolKind(kind), n)
	})
}

// AssignmentRules lists the assignment rule of every symbol of the given
// kind, "" where unset.
func (m *Module) AssignmentRules(kind SymbolKind) ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.SymbolAssignmentRules(m.name, bindings.SymbolKind(kind))
		return nil
	})
	return out, err
}

// AssignmentRule returns the n-th symbol's assignment rule, with the same
// unset-vs-missing distinction as SymbolEquation.
func (m *Module) AssignmentRule(kind SymbolKind, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthSymbolAssignmentRule(m.name, bindings.SymbolKind(kind), n)
	})
}

// RateRules lists the rate rule of every symbol of the given kind, "" where
// unset.
func (m *Module) RateRules(kind SymbolKind) ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.SymbolRateRules(m.name, bindings.SymbolKind(kind))
		return nil
	})
	return out, err
}

// RateRule returns the n-th symbol's rate rule, with the same
// unset-vs-missing distinction as SymbolEquation.
func (m *Module) RateRule(kind SymbolKind, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthSymbolRateRule(m.name, bindings.SymbolKind(kind), n)
	})
}

// query wraps a single-value bindings call with lock and error remapping.
func (m *Module) query(fn func() (string, error)) (string, error) {
	var out string
	err := m.locked(func() error {
		v, err := fn()
		if err != nil {
			return remapError(err)
		}
		out = v
		return nil
	})
	return out, err
}
