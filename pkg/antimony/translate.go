package antimony

import "github.com/antimony-lang/antimony-go/internal/bindings"

// Translation queries. Each returns the module rendered in the target
// format; failures (unknown module, untranslatable construct) surface as a
// NotFoundError carrying the library's diagnostic.

// SBML returns the module as an SBML document.
func (m *Module) SBML() (string, error) {
	return m.query(func() (string, error) {
		return bindings.SBMLString(m.name)
	})
}

// Antimony returns the module as flattened Antimony source.
func (m *Module) Antimony() (string, error) {
	return m.query(func() (string, error) {
		return bindings.AntimonyString(m.name)
	})
}

// Jarnac returns the module as a Jarnac script.
func (m *Module) Jarnac() (string, error) {
	return m.query(func() (string, error) {
		return bindings.JarnacString(m.name)
	})
}
