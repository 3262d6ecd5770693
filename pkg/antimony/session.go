package antimony

import (
	"sync"

	"github.com/antimony-lang/antimony-go/internal/bindings"
)

// The native library holds one process-wide module set, error buffer, and
// allocation pool, so session exclusivity is enforced at package level.
var (
	liveMu sync.Mutex
	live   bool
)

// Session is an exclusive handle on the native library. All queries hang off
// it (directly or via Module) and are serialized behind its mutex. Close
// releases every native allocation in one step and must be the session's
// final operation; previously returned values stay valid.
//
// Session is not reference counted: at most one may be live per process, and
// a closed Session cannot be reopened.
type Session struct {
	mu     sync.Mutex
	closed bool
}

// Open acquires the process-wide session. It fails with ErrSessionActive if
// another Session has been opened and not yet closed.
func Open() (*Session, error) {
	liveMu.Lock()
	defer liveMu.Unlock()
	if live {
		return nil, ErrSessionActive
	}
	live = true
	return &Session{}, nil
}

// Close releases all outstanding native allocations. It is the only place
// the library's bulk free is invoked; calling Close twice returns
// ErrSessionClosed, and every other method does the same afterward.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	bindings.FreeAll()
	s.closed = true

	liveMu.Lock()
	live = false
	liveMu.Unlock()
	return nil
}

// locked runs fn under the session mutex, rejecting closed sessions. Every
// foreign call in the package goes through here.
func (s *Session) locked(fn func() error) error {
	if s == nil {
		return ErrSessionClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return fn()
}

// Handle identifies one loaded module set. Load operations return a new
// Handle; RevertTo makes an earlier one active again. Handles are only
// meaningful within the Session that produced them.
type Handle int64

// LoadString parses a model in either Antimony or SBML form, autodetected.
func (s *Session) LoadString(model string) (Handle, error) {
	return s.load(func() (int64, error) { return bindings.LoadString(model) })
}

// LoadFile parses a model file in either Antimony or SBML form.
func (s *Session) LoadFile(path string) (Handle, error) {
	return s.load(func() (int64, error) { return bindings.LoadFile(path) })
}

// LoadAntimonyString parses Antimony source only.
func (s *Session) LoadAntimonyString(model string) (Handle, error) {
	return s.load(func() (int64, error) { return bindings.LoadAntimonyString(model) })
}

// LoadAntimonyFile parses an Antimony source file only.
func (s *Session) LoadAntimonyFile(path string) (Handle, error) {
	return s.load(func() (int64, error) { return bindings.LoadAntimonyFile(path) })
}

// LoadSBMLString parses SBML only.
func (s *Session) LoadSBMLString(model string) (Handle, error) {
	return s.load(func() (int64, error) { return bindings.LoadSBMLString(model) })
}

// LoadSBMLFile parses an SBML file only.
func (s *Session) LoadSBMLFile(path string) (Handle, error) {
	return s.load(func() (int64, error) { return bindings.LoadSBMLFile(path) })
}

func (s *Session) load(fn func() (int64, error)) (Handle, error) {
	var h Handle
	err := s.locked(func() error {
		idx, err := fn()
		if err != nil {
			return remapError(err)
		}
		h = Handle(idx)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return h, nil
}

// RevertTo makes a previously loaded module set active again. Counts and
// indices obtained before the switch must not be reused afterward.
func (s *Session) RevertTo(h Handle) error {
	return s.locked(func() error {
		return remapError(bindings.RevertTo(int64(h)))
	})
}

// ClearPreviousLoads drops every module set loaded so far without releasing
// native allocations; those are only reclaimed by Close.
func (s *Session) ClearPreviousLoads() error {
	return s.locked(func() error {
		bindings.ClearPreviousLoads()
		return nil
	})
}

// AddDirectory registers an extra directory searched by file-based loads and
// by import statements inside Antimony source.
func (s *Session) AddDirectory(dir string) error {
	return s.locked(func() error {
		bindings.AddDirectory(dir)
		return nil
	})
}

// LastError returns the native library's most recent diagnostic. The buffer
// is overwritten by any failing call; errors returned by this package
// already carry the relevant text, so this is mainly a debugging aid.
func (s *Session) LastError() (string, error) {
	var out string
	err := s.locked(func() error {
		out = bindings.LastError()
		return nil
	})
	return out, err
}

// ModuleCount reports how many modules the active set defines.
func (s *Session) ModuleCount() (int, error) {
	var n int
	err := s.locked(func() error {
		n = bindings.NumModules()
		return nil
	})
	return n, err
}

// ModuleNames lists every module in the active set, including submodules.
func (s *Session) ModuleNames() ([]string, error) {
	var names []string
	err := s.locked(func() error {
		names = bindings.ModuleNames()
		return nil
	})
	return names, err
}

// MainModuleName reports the entry-point module of the active set.
func (s *Session) MainModuleName() (string, error) {
	var name string
	err := s.locked(func() error {
		n, err := bindings.MainModuleName()
		if err != nil {
			return remapError(err)
		}
		name = n
		return nil
	})
	return name, err
}

// Module resolves a module by name, returning a NotFoundError if the active
// set defines no module with that name.
func (s *Session) Module(name string) (*Module, error) {
	var m *Module
	err := s.locked(func() error {
		if !bindings.CheckModuleName(name) {
			return &NotFoundError{What: "module '" + name + "'", Detail: bindings.LastError()}
		}
		m = &Module{s: s, name: name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MainModule resolves the active set's entry-point module.
func (s *Session) MainModule() (*Module, error) {
	name, err := s.MainModuleName()
	if err != nil {
		return nil, err
	}
	return &Module{s: s, name: name}, nil
}
