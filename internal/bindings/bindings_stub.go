//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds and Windows. These let the rest of
// the repository compile without the native library; anything that would
// reach the foreign ABI reports ErrNotBuilt instead.

func LastError() string { return "" }

func LoadFile(string) (int64, error)           { return 0, ErrNotBuilt }
func LoadString(string) (int64, error)         { return 0, ErrNotBuilt }
func LoadAntimonyFile(string) (int64, error)   { return 0, ErrNotBuilt }
func LoadAntimonyString(string) (int64, error) { return 0, ErrNotBuilt }
func LoadSBMLFile(string) (int64, error)       { return 0, ErrNotBuilt }
func LoadSBMLString(string) (int64, error)     { return 0, ErrNotBuilt }

func RevertTo(int64) error { return ErrNotBuilt }

func ClearPreviousLoads() {}
func AddDirectory(string) {}
func FreeAll()            {}

func NumModules() int                   { return 0 }
func ModuleNames() []string             { return nil }
func NthModuleName(int) (string, error) { return "", ErrNotBuilt }
func MainModuleName() (string, error)   { return "", ErrNotBuilt }
func CheckModuleName(string) bool       { return false }

func NumSymbols(string, SymbolKind) int         { return 0 }
func SymbolNames(string, SymbolKind) []string   { return nil }
func NthSymbolName(string, SymbolKind, int) (string, error) {
	return "", ErrNotBuilt
}
func SymbolEquations(string, SymbolKind) []string { return nil }
func NthSymbolEquation(string, SymbolKind, int) (string, error) {
	return "", ErrNotBuilt
}
func SymbolInitialAssignments(string, SymbolKind) []string { return nil }
func NthSymbolInitialAssignment(string, SymbolKind, int) (string, error) {
	return "", ErrNotBuilt
}
func SymbolAssignmentRules(string, SymbolKind) []string { return nil }
func NthSymbolAssignmentRule(string, SymbolKind, int) (string, error) {
	return "", ErrNotBuilt
}
func SymbolRateRules(string, SymbolKind) []string { return nil }
func NthSymbolRateRule(string, SymbolKind, int) (string, error) {
	return "", ErrNotBuilt
}

func NumReactions(string) int                      { return 0 }
func NthReactionName(string, int) (string, error)  { return "", ErrNotBuilt }
func ReactionRates(string) []string                { return nil }
func NthReactionRate(string, int) (string, error)  { return "", ErrNotBuilt }
func NumReactants(string) []int                    { return nil }
func NumProducts(string) []int                     { return nil }
func ReactantNames(string) [][]string              { return nil }
func NthReactionReactantNames(string, int) []string { return nil }
func ProductNames(string) [][]string               { return nil }
func NthReactionProductNames(string, int) []string { return nil }
func ReactantStoichiometries(string) [][]float64   { return nil }
func ProductStoichiometries(string) [][]float64    { return nil }

func NumInteractions(string) int        { return 0 }
func InteractorNames(string) [][]string { return nil }
func NumInteractors(string) []int       { return nil }
func InteracteeNames(string) []string   { return nil }
func InteractionDividers(string) []int  { return nil }

func NumEvents(string) int                      { return 0 }
func EventNames(string) []string                { return nil }
func NthEventName(string, int) (string, error)  { return "", ErrNotBuilt }
func EventTrigger(string, int) (string, error)  { return "", ErrNotBuilt }
func NumEventAssignments(string, int) int       { return 0 }
func NthEventAssignmentVariable(string, int, int) (string, error) {
	return "", ErrNotBuilt
}
func NthEventAssignmentEquation(string, int, int) (string, error) {
	return "", ErrNotBuilt
}

func NumDNAStrands(string) int       { return 0 }
func DNAStrandSizes(string) []int    { return nil }
func DNAStrands(string) [][]string   { return nil }

func NumReplacedSymbols(string) int { return 0 }
func NthReplacementPair(string, int) (SymbolPair, error) {
	return SymbolPair{}, ErrNotBuilt
}
func NthFormerSymbolName(string, int) (string, error) {
	return "", ErrNotBuilt
}
func NthReplacementSymbolName(string, int) (string, error) {
	return "", ErrNotBuilt
}

func SBMLString(string) (string, error)     { return "", ErrNotBuilt }
func AntimonyString(string) (string, error) { return "", ErrNotBuilt }
func JarnacString(string) (string, error)   { return "", ErrNotBuilt }
