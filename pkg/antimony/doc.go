// Package antimony is a Go wrapper around libAntimony, the native library
// that parses Antimony reaction-network models and translates them to and
// from SBML. The native library does all of the real work; this package owns
// the call surface, the copy-out marshaling of every returned buffer, and
// the session lifetime.
//
// The native library keeps process-global state: one error buffer, one
// active module set, and one pool of outstanding allocations. Because of
// that, at most one Session may be live per process and every call is
// serialized behind its lock. Close releases all native allocations in a
// single step; values returned before Close remain valid because nothing
// this package returns ever aliases native memory.
//
// Typical use:
//
//	s, err := antimony.Open()
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if _, err := s.LoadFile("model.ant"); err != nil {
//	    return err
//	}
//	main, err := s.MainModule()
//	if err != nil {
//	    return err
//	}
//	sbml, err := main.SBML()
package antimony
