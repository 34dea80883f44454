package scene

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid scene")
)

// Kind is a coarse classification for scene errors.
type Kind string

const (
	KindNotFound Kind = "not_found"
	KindInvalid  Kind = "invalid_scene"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  Kind
	Path  string // optional: scene file
	Field string // optional: offending field
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" %s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match ErrNotFound / ErrInvalid by kind.
func (e *OpError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalid:
		return e.Kind == KindInvalid
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func invalidField(path, field string, err error) error {
	return &OpError{Op: "scene.map", Kind: KindInvalid, Path: path, Field: field, Err: err}
}
