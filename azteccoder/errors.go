package azteccoder

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedValueShape = errors.New("azteccoder: unsupported value shape")
	ErrArrayLengthMismatch   = errors.New("azteccoder: array length mismatch")
	ErrMissingStructField    = errors.New("azteccoder: missing struct field")
	ErrUnparsableInteger     = errors.New("azteccoder: unparsable integer")
	ErrIntegerOutOfRange     = errors.New("azteccoder: integer out of range")
	ErrArgumentCountMismatch = errors.New("azteccoder: argument count mismatch")
	ErrUnknownFunction       = errors.New("azteccoder: unknown function")
	ErrInvalidSelector       = errors.New("azteccoder: invalid function selector")
)

// EncodeError reports the value that failed to encode by its path from the
// parameter, ie. `feeds[1].name`. It unwraps to one of the sentinel errors above.
type EncodeError struct {
	Kind error
	Path string
	Msg  string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind.Error(), e.Path, e.Msg)
}

func (e *EncodeError) Unwrap() error {
	return e.Kind
}

func pathError(kind error, path string, format string, args ...any) error {
	return &EncodeError{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)}
}
