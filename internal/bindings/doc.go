// Package bindings hosts the thin cgo layer that links the Go API to the
// native libAntimony library. The real implementation lives behind build tags
// so that the rest of the repository can compile without cgo or the shared
// library installed.
//
// Every foreign return value is decoded into Go-owned memory before the
// wrapper returns; nothing outside this package ever sees a foreign pointer.
// The native library keeps ownership of all of its allocations until FreeAll,
// so individual returns are never freed here.
package bindings
