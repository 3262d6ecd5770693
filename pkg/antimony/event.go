package antimony

import "github.com/antimony-lang/antimony-go/internal/bindings"

// EventCount reports how many events the module defines.
func (m *Module) EventCount() (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumEvents(m.name)
		return nil
	})
	return n, err
}

// EventNames lists every event name in event order.
func (m *Module) EventNames() ([]string, error) {
	var out []string
	err := m.locked(func() error {
		out = bindings.EventNames(m.name)
		return nil
	})
	return out, err
}

// EventName returns the name of event n.
func (m *Module) EventName(n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthEventName(m.name, n)
	})
}

// EventTrigger returns the trigger condition of event n.
func (m *Module) EventTrigger(n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.EventTrigger(m.name, n)
	})
}

// EventAssignmentCount reports how many assignments event n performs when it
// fires. Zero for an out-of-range event; count queries never fail.
func (m *Module) EventAssignmentCount(event int) (int, error) {
	var n int
	err := m.locked(func() error {
		n = bindings.NumEventAssignments(m.name, event)
		return nil
	})
	return n, err
}

// EventAssignmentVariable returns the variable the n-th assignment of the
// given event writes to.
func (m *Module) EventAssignmentVariable(event, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthEventAssignmentVariable(m.name, event, n)
	})
}

// EventAssignmentEquation returns the formula the n-th assignment of the
// given event assigns.
func (m *Module) EventAssignmentEquation(event, n int) (string, error) {
	return m.query(func() (string, error) {
		return bindings.NthEventAssignmentEquation(m.name, event, n)
	})
}
