package antimony

import "github.com/antimony-lang/antimony-go/internal/bindings"

// SymbolPair records one synchronization between a submodule symbol and the
// symbol it was replaced by during module composition.
type SymbolPair struct {
	Former      string
	Replacement string
}

// ReplacementCount reports how many symbol replacements module composition
// performed in this module.
func (m *Module) ReplacementCount() (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumReplacedSymbols(m.name)
		return nil
	})
	return n, err
}

// ReplacementPair returns the n-th synchronization as a pair. Unlike the
// array queries, an out-of-range index is a NotFoundError: a pair can be
// absent but never empty.
func (m *Module) ReplacementPair(n int) (SymbolPair, error) {
	var out SymbolPair
	err := m.locked(func() error {
		p, err := bindings.NthReplacementPair(m.name, n)
		if err != nil {
			return remapError(err)
		}
		out = SymbolPair{Former: p.Former, Replacement: p.Replacement}
		return nil
	})
	return out, err
}

// ReplacementPairs returns every synchronization in order. The count and the
// per-index queries run inside one lock acquisition so the count cannot go
// stale against an intervening load.
func (m *Module) ReplacementPairs() ([]SymbolPair, error) {
	var out []SymbolPair
	err := m.locked(func() error {
		n := bindings.NumReplacedSymbols(m.name)
		out = make([]SymbolPair, 0, n)
		for i := 0; i < n; i++ {
			p, err := bindings.NthReplacementPair(m.name, i)
			if err != nil {
				return remapError(err)
			}
			out = append(out, SymbolPair{Former: p.Former, Replacement: p.Replacement})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FormerSymbolName returns the submodule-local half of the n-th pair.
func (m *Module) FormerSymbolName(n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthFormerSymbolName(m.name, n)
	})
}

// ReplacementSymbolName returns the replacing half of the n-th pair.
func (m *Module) ReplacementSymbolName(n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthReplacementSymbolName(m.name, n)
	})
}
