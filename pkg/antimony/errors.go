package antimony

import (
	"errors"
	"fmt"

	"github.com/antimony-lang/antimony-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (cgo disabled or unsupported platform).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrSessionClosed is returned by any operation on a closed Session,
	// including a second Close.
	ErrSessionClosed = errors.New("antimony: session has been closed")

	// ErrSessionActive is returned by Open while another Session is live.
	// The native library is process-global, so sessions cannot overlap.
	ErrSessionActive = errors.New("antimony: another session is active")

	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("antimony: not found")

	// ErrLoadFailed matches any *LoadError via errors.Is.
	ErrLoadFailed = errors.New("antimony: load failed")
)

// LoadError reports a failed load or compile operation. Detail carries the
// native library's diagnostic text at the time of failure.
type LoadError struct {
	Code   int64
	Detail string
}

func (e *LoadError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("antimony: load failed (code %d)", e.Code)
	}
	return fmt.Sprintf("antimony: load failed (code %d): %s", e.Code, e.Detail)
}

func (e *LoadError) Is(target error) bool { return target == ErrLoadFailed }

// NotFoundError reports a query for an entity that does not exist: an
// unknown module or symbol name, or an index past the corresponding count.
// It is distinct from a legitimately unset value, which is an empty string
// with a nil error.
type NotFoundError struct {
	What   string
	Detail string
}

func (e *NotFoundError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("antimony: %s not found", e.What)
	}
	return fmt.Sprintf("antimony: %s not found: %s", e.What, e.Detail)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// remapError converts bindings-layer errors to their public shapes.
// Sentinels such as ErrNotBuilt pass through untouched.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	var le *bindings.LoadError
	if errors.As(err, &le) {
		return &LoadError{Code: le.Code, Detail: le.Detail}
	}
	var nf *bindings.NotFoundError
	if errors.As(err, &nf) {
		return &NotFoundError{What: nf.What, Detail: nf.Detail}
	}
	return err
}
