// Package internalcheck holds repository-invariant tests. They parse the
// source tree and fail when a package crosses the FFI isolation boundary:
// only internal/bindings may touch cgo or unsafe, everything else stays in
// plain Go.
package internalcheck
