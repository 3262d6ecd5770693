package antimony

import "github.com/antimony-lang/antimony-go/internal/bindings"

// Reaction queries. The jagged results (reactant/product names and
// stoichiometries) are indexed by reaction: result[i] describes reaction i
// and may be empty, as in a synthesis reaction with no reactants. Empty is
// an ordinary value here, never an error.

// ReactionCount reports how many reactions the module defines. Zero for an
// unknown module; count queries never fail.
func (m *Module) ReactionCount() (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumReactions(m.name)
		return nil
	})
	return n, err
}

// ReactionNames lists every reaction name in reaction order.
func (m *Module) ReactionNames() ([]string, error) {
	return m.SymbolNames(AllReactions)
}

// ReactionName returns the name of reaction n, or a NotFoundError if n is
// past the reaction count.
func (m *Module) ReactionName(n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthReactionName(m.name, n)
	})
}

// RateLaws lists every reaction's rate law in reaction order, "" for
// reactions with no assigned rate.
func (m *Module) RateLaws() ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.ReactionRates(m.name)
		return nil
	})
	return out, err
}

// RateLaw returns reaction n's rate law. A reaction with no assigned rate
// yields "" with a nil error; an index past the reaction count yields a
// NotFoundError.
func (m *Module) RateLaw(n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthReactionRate(m.name, n)
	})
}

// ReactantCounts returns the number of reactants of each reaction.
func (m *Module) ReactantCounts() ([]int, error) {
	var out []int
	err := m.locked(func() error {
		out = bindings.NumReactants(m.name)
		return nil
	})
	return out, err
}

// ProductCounts returns the number of products of each reaction.
func (m *Module) ProductCounts() ([]int, error) {
	var out []int
	err := m.locked(func() error {
		out = bindings.NumProducts(m.name)
		return nil
	})
	return out, err
}

// ReactantNames returns the reactant names of each reaction.
func (m *Module) ReactantNames() ([][]string, error) {
	var out [][]string
	err := m.locked(func() error {
		out = bindings.ReactantNames(m.name)
		return nil
	})
	return out, err
}

// ReactionReactantNames returns the reactant names of reaction n. Empty for
// an out-of-range index or a reaction with no reactants.
func (m *Module) ReactionReactantNames(n int) ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.NthReactionReactantNames(m.name, n)
		return nil
	})
	return out, err
}

// ProductNames returns the product names of each reaction.
func (m *Module) ProductNames() ([][]string, error) {
	var out [][]string
	err := m.locked(func() error {
		out = bindings.ProductNames(m.name)
		return nil
	})
	return out, err
}

// ReactionProductNames returns the product names of reaction n. Empty for
// an out-of-range index or a reaction with no products.
func (m *Module) ReactionProductNames(n int) ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.NthReactionProductNames(m.name, n)
		return nil
	})
	return out, err
}

// ReactantStoichiometries returns each reaction's reactant stoichiometries,
// parallel to ReactantNames.
func (m *Module) ReactantStoichiometries() ([][]float64, error) {
	var out [][]float64
	err := m.locked(func() error {
		out = bindings.ReactantStoichiometries(m.name)
		return nil
	})
	return out, err
}

// ProductStoichiometries returns each reaction's product stoichiometries,
// parallel to ProductNames.
func (m *Module) ProductStoichiometries() ([][]float64, error) {
	var out [][]float64
	err := m.locked(func() error {
		out = bindings.ProductStoichiometries(m.name)
		return nil
	})
	return out, err
}

// InteractionCount reports how many interactions the module defines.
func (m *Module) InteractionCount() (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumInteractions(m.name)
		return nil
	})
	return n, err
}

// InteractorNames returns the interactor names of each interaction.
func (m *Module) InteractorNames() ([][]string, error) {
	var out [][]string
	err := m.locked(func() error {
		out = bindings.InteractorNames(m.name)
		return nil
	})
	return out, err
}

// InteractorCounts returns the number of interactors of each interaction.
func (m *Module) InteractorCounts() ([]int, error) {
	var out []int
	err := m.locked(func() error {
		out = bindings.NumInteractors(m.name)
		return nil
	})
	return out, err
}

// InteracteeNames returns the reaction each interaction acts on, one per
// interaction.
func (m *Module) InteracteeNames() ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.InteracteeNames(m.name)
		return nil
	})
	return out, err
}

// InteractionKind is the native divider code of an interaction: activation,
// inhibition, or unknown influence.
type InteractionKind int

const (
	InteractionUnknown    InteractionKind = 0
	InteractionActivation InteractionKind = 1
	InteractionInhibition InteractionKind = 2
)

// InteractionKinds returns the divider code of each interaction.
func (m *Module) InteractionKinds() ([]InteractionKind, error) {
	var out []InteractionKind
	err := m.locked(func() error {
		codes := bindings.InteractionDividers(m.name)
		out = make([]InteractionKind, len(codes))
		for i, c := range codes {
			out[i] = InteractionKind(c)
		}
		return nil
	})
	return out, err
}

// DNAStrandCount reports how many DNA strands the module defines.
func (m *Module) DNAStrandCount() (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumDNAStrands(m.name)
		return nil
	})
	return n, err
}

// DNAStrandSizes returns the number of elements in each DNA strand.
func (m *Module) DNAStrandSizes() ([]int, error) {
	var out []int
	err := m.locked(func() error {
		out = bindings.DNAStrandSizes(m.name)
		return nil
	})
	return out, err
}

// DNAStrands returns the element names of each DNA strand, 5' to 3'.
func (m *Module) DNAStrands() ([][]string, error) {
	var out [][]string
	err := m.locked(func() error {
		out = bindings.DNAStrands(m.name)
		return nil
	})
	return out, err
}
