//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -lantimony
#cgo darwin CFLAGS: -I/usr/local/include -I/opt/homebrew/include
#cgo darwin LDFLAGS: -L/usr/local/lib -L/opt/homebrew/lib
#cgo linux CFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib -L/usr/local/lib64

#include <stdlib.h>
#include <stdbool.h>

// Extern declarations mirroring the libAntimony C ABI (antimony_api.h).
// The library owns every returned buffer until freeAll.

extern long loadFile(const char* filename);
extern long loadString(const char* model);
extern long loadAntimonyFile(const char* filename);
extern long loadAntimonyString(const char* model);
extern long loadSBMLFile(const char* filename);
extern long loadSBMLString(const char* model);
extern long revertTo(long index);
extern void clearPreviousLoads(void);
extern void addDirectory(const char* directory);
extern void freeAll(void);
extern char* getLastError(void);

extern unsigned long getNumModules(void);
extern char** getModuleNames(void);
extern char* getNthModuleName(unsigned long n);
extern char* getMainModuleName(void);
extern bool checkModuleName(const char* moduleName);

extern unsigned long getNumSymbolsOfType(const char* moduleName, int rtype);
extern char** getSymbolNamesOfType(const char* moduleName, int rtype);
extern char* getNthSymbolNameOfType(const char* moduleName, int rtype, unsigned long n);
extern char** getSymbolEquationsOfType(const char* moduleName, int rtype);
extern char* getNthSymbolEquationOfType(const char* moduleName, int rtype, unsigned long n);
extern char** getSymbolInitialAssignmentsOfType(const char* moduleName, int rtype);
extern char* getNthSymbolInitialAssignmentOfType(const char* moduleName, int rtype, unsigned long n);
extern char** getSymbolAssignmentRulesOfType(const char* moduleName, int rtype);
extern char* getNthSymbolAssignmentRuleOfType(const char* moduleName, int rtype, unsigned long n);
extern char** getSymbolRateRulesOfType(const char* moduleName, int rtype);
extern char* getNthSymbolRateRuleOfType(const char* moduleName, int rtype, unsigned long n);

extern unsigned long getNumReactions(const char* moduleName);
extern char* getNthReactionName(const char* moduleName, unsigned long rxn);
extern char** getReactionRates(const char* moduleName);
extern char* getNthReactionRate(const char* moduleName, unsigned long rxn);
extern unsigned long* getNumReactants(const char* moduleName);
extern unsigned long* getNumProducts(const char* moduleName);
extern char*** getReactantNames(const char* moduleName);
extern char** getNthReactionReactantNames(const char* moduleName, unsigned long rxn);
extern char*** getProductNames(const char* moduleName);
extern char** getNthReactionProductNames(const char* moduleName, unsigned long rxn);
extern double** getReactantStoichiometries(const char* moduleName);
extern double** getProductStoichiometries(const char* moduleName);

extern unsigned long getNumInteractions(const char* moduleName);
extern char*** getInteractorNames(const char* moduleName);
extern unsigned long* getNumInteractors(const char* moduleName);
extern char** getInteracteeNames(const char* moduleName);
extern int* getInteractionDividers(const char* moduleName);

extern unsigned long getNumEvents(const char* moduleName);
extern char** getEventNames(const char* moduleName);
extern char* getNthEventName(const char* moduleName, unsigned long event);
extern char* getTriggerForEvent(const char* moduleName, unsigned long event);
extern unsigned long getNumAssignmentsForEvent(const char* moduleName, unsigned long event);
extern char* getNthAssignmentVariableForEvent(const char* moduleName, unsigned long event, unsigned long n);
extern char* getNthAssignmentEquationForEvent(const char* moduleName, unsigned long event, unsigned long n);

extern unsigned long getNumDNAStrands(const char* moduleName);
extern unsigned long* getDNAStrandSizes(const char* moduleName);
extern char*** getDNAStrands(const char* moduleName);

extern unsigned long getNumReplacedSymbolNames(const char* moduleName);
extern char** getNthReplacementSymbolPair(const char* moduleName, unsigned long n);
extern char* getNthFormerSymbolName(const char* moduleName, unsigned long n);
extern char* getNthReplacementSymbolName(const char* moduleName, unsigned long n);

extern char* getSBMLString(const char* moduleName);
extern char* getAntimonyString(const char* moduleName);
extern char* getJarnacString(const char* moduleName);
*/
import "C"

import "unsafe"

// The wrappers below are mechanical: marshal arguments, call, decode the
// result immediately. Foreign returns are never freed individually; the
// library releases everything at once in FreeAll.

func cstr(s string) *C.char {
	return C.CString(s)
}

func cfree(p *C.char) {
	C.free(unsafe.Pointer(p))
}

// LastError copies the library's shared error buffer. The buffer is
// overwritten by any failing call, so read it before issuing the next one.
func LastError() string {
	return goText(unsafe.Pointer(C.getLastError()))
}

func checkLoad(code int64) error {
	if code >= 0 {
		return nil
	}
	return loadStatus(code, LastError())
}

func notFound(what string) error {
	return &NotFoundError{What: what, Detail: LastError()}
}

// Load operations. Each returns the handle index of the freshly loaded
// module set, or a LoadError with the library's diagnostic.

func LoadFile(path string) (int64, error) {
	cp := cstr(path)
	defer cfree(cp)
	code := int64(C.loadFile(cp))
	return code, checkLoad(code)
}

func LoadString(model string) (int64, error) {
	cm := cstr(model)
	defer cfree(cm)
	code := int64(C.loadString(cm))
	return code, checkLoad(code)
}

func LoadAntimonyFile(path string) (int64, error) {
	cp := cstr(path)
	defer cfree(cp)
	code := int64(C.loadAntimonyFile(cp))
	return code, checkLoad(code)
}

func LoadAntimonyString(model string) (int64, error) {
	cm := cstr(model)
	defer cfree(cm)
	code := int64(C.loadAntimonyString(cm))
	return code, checkLoad(code)
}

func LoadSBMLFile(path string) (int64, error) {
	cp := cstr(path)
	defer cfree(cp)
	code := int64(C.loadSBMLFile(cp))
	return code, checkLoad(code)
}

func LoadSBMLString(model string) (int64, error) {
	cm := cstr(model)
	defer cfree(cm)
	code := int64(C.loadSBMLString(cm))
	return code, checkLoad(code)
}

// RevertTo switches the active module set back to a previously returned
// handle index. Checked like the load family: negative means failure.
func RevertTo(index int64) error {
	return checkLoad(int64(C.revertTo(C.long(index))))
}

func ClearPreviousLoads() {
	C.clearPreviousLoads()
}

func AddDirectory(dir string) {
	cd := cstr(dir)
	defer cfree(cd)
	C.addDirectory(cd)
}

// FreeAll releases every allocation the library has made since the later of
// process start and the previous FreeAll. It must be the final call of a
// session; decoded Go values are unaffected.
func FreeAll() {
	C.freeAll()
}

// Module set queries.

func NumModules() int {
	return int(C.getNumModules())
}

func ModuleNames() []string {
	n := NumModules()
	return goTextArray(unsafe.Pointer(C.getModuleNames()), n)
}

func NthModuleName(n int) (string, error) {
	p := C.getNthModuleName(C.ulong(n))
	if p == nil {
		return "", notFound("module name")
	}
	return goText(unsafe.Pointer(p)), nil
}

func MainModuleName() (string, error) {
	p := C.getMainModuleName()
	if p == nil {
		return "", notFound("main module")
	}
	return goText(unsafe.Pointer(p)), nil
}

func CheckModuleName(module string) bool {
	cm := cstr(module)
	defer cfree(cm)
	return bool(C.checkModuleName(cm))
}

// Symbol queries by kind.

func NumSymbols(module string, kind SymbolKind) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumSymbolsOfType(cm, C.int(kind)))
}

func SymbolNames(module string, kind SymbolKind) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumSymbolsOfType(cm, C.int(kind)))
	return goTextArray(unsafe.Pointer(C.getSymbolNamesOfType(cm, C.int(kind))), n)
}

func NthSymbolName(module string, kind SymbolKind, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthSymbolNameOfType(cm, C.int(kind), C.ulong(n))
	if p == nil {
		return "", notFound("symbol name")
	}
	return goText(unsafe.Pointer(p)), nil
}

func SymbolEquations(module string, kind SymbolKind) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumSymbolsOfType(cm, C.int(kind)))
	return goTextArray(unsafe.Pointer(C.getSymbolEquationsOfType(cm, C.int(kind))), n)
}

// NthSymbolEquation is tri-state: "" with nil error means the symbol exists
// but has no equation; a nil foreign pointer means no such symbol.
func NthSymbolEquation(module string, kind SymbolKind, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthSymbolEquationOfType(cm, C.int(kind), C.ulong(n))
	if p == nil {
		return "", notFound("symbol equation")
	}
	return goText(unsafe.Pointer(p)), nil
}

func SymbolInitialAssignments(module string, kind SymbolKind) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumSymbolsOfType(cm, C.int(kind)))
	return goTextArray(unsafe.Pointer(C.getSymbolInitialAssignmentsOfType(cm, C.int(kind))), n)
}

func NthSymbolInitialAssignment(module string, kind SymbolKind, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthSymbolInitialAssignmentOfType(cm, C.int(kind), C.ulong(n))
	if p == nil {
		return "", notFound("initial assignment")
	}
	return goText(unsafe.Pointer(p)), nil
}

func SymbolAssignmentRules(module string, kind SymbolKind) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumSymbolsOfType(cm, C.int(kind)))
	return goTextArray(unsafe.Pointer(C.getSymbolAssignmentRulesOfType(cm, C.int(kind))), n)
}

func NthSymbolAssignmentRule(module string, kind SymbolKind, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthSymbolAssignmentRuleOfType(cm, C.int(kind), C.ulong(n))
	if p == nil {
		return "", notFound("assignment rule")
	}
	return goText(unsafe.Pointer(p)), nil
}

func SymbolRateRules(module string, kind SymbolKind) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumSymbolsOfType(cm, C.int(kind)))
	return goTextArray(unsafe.Pointer(C.getSymbolRateRulesOfType(cm, C.int(kind))), n)
}

func NthSymbolRateRule(module string, kind SymbolKind, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthSymbolRateRuleOfType(cm, C.int(kind), C.ulong(n))
	if p == nil {
		return "", notFound("rate rule")
	}
	return goText(unsafe.Pointer(p)), nil
}

// Reaction queries. The jagged decodes fetch their paired counts in the same
// call sequence; counts are never cached across loads.

func NumReactions(module string) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumReactions(cm))
}

func NthReactionName(module string, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthReactionName(cm, C.ulong(n))
	if p == nil {
		return "", notFound("reaction name")
	}
	return goText(unsafe.Pointer(p)), nil
}

func ReactionRates(module string) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	return goTextArray(unsafe.Pointer(C.getReactionRates(cm)), n)
}

// NthReactionRate is tri-state: "" with nil error means the reaction has no
// assigned rate law; a nil foreign pointer means no such reaction.
func NthReactionRate(module string, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthReactionRate(cm, C.ulong(n))
	if p == nil {
		return "", notFound("reaction rate")
	}
	return goText(unsafe.Pointer(p)), nil
}

func NumReactants(module string) []int {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	return goCountArray(unsafe.Pointer(C.getNumReactants(cm)), n)
}

func NumProducts(module string) []int {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	return goCountArray(unsafe.Pointer(C.getNumProducts(cm)), n)
}

func ReactantNames(module string) [][]string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	inner := goCountArray(unsafe.Pointer(C.getNumReactants(cm)), n)
	return goJaggedText(unsafe.Pointer(C.getReactantNames(cm)), inner)
}

func NthReactionReactantNames(module string, n int) []string {
	cm := cstr(module)
	defer cfree(cm)
	counts := goCountArray(unsafe.Pointer(C.getNumReactants(cm)), int(C.getNumReactions(cm)))
	if n < 0 || n >= len(counts) {
		return nil
	}
	return goTextArray(unsafe.Pointer(C.getNthReactionReactantNames(cm, C.ulong(n))), counts[n])
}

func ProductNames(module string) [][]string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	inner := goCountArray(unsafe.Pointer(C.getNumProducts(cm)), n)
	return goJaggedText(unsafe.Pointer(C.getProductNames(cm)), inner)
}

func NthReactionProductNames(module string, n int) []string {
	cm := cstr(module)
	defer cfree(cm)
	counts := goCountArray(unsafe.Pointer(C.getNumProducts(cm)), int(C.getNumReactions(cm)))
	if n < 0 || n >= len(counts) {
		return nil
	}
	return goTextArray(unsafe.Pointer(C.getNthReactionProductNames(cm, C.ulong(n))), counts[n])
}

func ReactantStoichiometries(module string) [][]float64 {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	inner := goCountArray(unsafe.Pointer(C.getNumReactants(cm)), n)
	return goJaggedNumbers(unsafe.Pointer(C.getReactantStoichiometries(cm)), inner)
}

func ProductStoichiometries(module string) [][]float64 {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumReactions(cm))
	inner := goCountArray(unsafe.Pointer(C.getNumProducts(cm)), n)
	return goJaggedNumbers(unsafe.Pointer(C.getProductStoichiometries(cm)), inner)
}

// Interaction queries.

func NumInteractions(module string) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumInteractions(cm))
}

func InteractorNames(module string) [][]string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumInteractions(cm))
	inner := goCountArray(unsafe.Pointer(C.getNumInteractors(cm)), n)
	return goJaggedText(unsafe.Pointer(C.getInteractorNames(cm)), inner)
}

func NumInteractors(module string) []int {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumInteractions(cm))
	return goCountArray(unsafe.Pointer(C.getNumInteractors(cm)), n)
}

func InteracteeNames(module string) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumInteractions(cm))
	return goTextArray(unsafe.Pointer(C.getInteracteeNames(cm)), n)
}

func InteractionDividers(module string) []int {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumInteractions(cm))
	return goEnumArray(unsafe.Pointer(C.getInteractionDividers(cm)), n)
}

// Event queries.

func NumEvents(module string) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumEvents(cm))
}

func EventNames(module string) []string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumEvents(cm))
	return goTextArray(unsafe.Pointer(C.getEventNames(cm)), n)
}

func NthEventName(module string, event int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthEventName(cm, C.ulong(event))
	if p == nil {
		return "", notFound("event name")
	}
	return goText(unsafe.Pointer(p)), nil
}

func EventTrigger(module string, event int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getTriggerForEvent(cm, C.ulong(event))
	if p == nil {
		return "", notFound("event trigger")
	}
	return goText(unsafe.Pointer(p)), nil
}

func NumEventAssignments(module string, event int) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumAssignmentsForEvent(cm, C.ulong(event)))
}

func NthEventAssignmentVariable(module string, event, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthAssignmentVariableForEvent(cm, C.ulong(event), C.ulong(n))
	if p == nil {
		return "", notFound("event assignment variable")
	}
	return goText(unsafe.Pointer(p)), nil
}

func NthEventAssignmentEquation(module string, event, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthAssignmentEquationForEvent(cm, C.ulong(event), C.ulong(n))
	if p == nil {
		return "", notFound("event assignment equation")
	}
	return goText(unsafe.Pointer(p)), nil
}

// DNA strand queries.

func NumDNAStrands(module string) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumDNAStrands(cm))
}

func DNAStrandSizes(module string) []int {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumDNAStrands(cm))
	return goCountArray(unsafe.Pointer(C.getDNAStrandSizes(cm)), n)
}

func DNAStrands(module string) [][]string {
	cm := cstr(module)
	defer cfree(cm)
	n := int(C.getNumDNAStrands(cm))
	inner := goCountArray(unsafe.Pointer(C.getDNAStrandSizes(cm)), n)
	return goJaggedText(unsafe.Pointer(C.getDNAStrands(cm)), inner)
}

// Replacement (synchronization) queries.

func NumReplacedSymbols(module string) int {
	cm := cstr(module)
	defer cfree(cm)
	return int(C.getNumReplacedSymbolNames(cm))
}

func NthReplacementPair(module string, n int) (SymbolPair, error) {
	cm := cstr(module)
	defer cfree(cm)
	pair, err := goPair(unsafe.Pointer(C.getNthReplacementSymbolPair(cm, C.ulong(n))))
	if err != nil {
		return SymbolPair{}, notFound("replacement pair")
	}
	return pair, nil
}

func NthFormerSymbolName(module string, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthFormerSymbolName(cm, C.ulong(n))
	if p == nil {
		return "", notFound("former symbol name")
	}
	return goText(unsafe.Pointer(p)), nil
}

func NthReplacementSymbolName(module string, n int) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getNthReplacementSymbolName(cm, C.ulong(n))
	if p == nil {
		return "", notFound("replacement symbol name")
	}
	return goText(unsafe.Pointer(p)), nil
}

// Translation queries. A nil return means the module is unknown or the
// translation failed; the library's error buffer has the detail.

func SBMLString(module string) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getSBMLString(cm)
	if p == nil {
		return "", notFound("SBML translation")
	}
	return goText(unsafe.Pointer(p)), nil
}

func AntimonyString(module string) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getAntimonyString(cm)
	if p == nil {
		return "", notFound("Antimony translation")
	}
	return goText(unsafe.Pointer(p)), nil
}

func JarnacString(module string) (string, error) {
	cm := cstr(module)
	defer cfree(cm)
	p := C.getJarnacString(cm)
	if p == nil {
		return "", notFound("Jarnac translation")
	}
	return goText(unsafe.Pointer(p)), nil
}
