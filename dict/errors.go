package dict

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound         = errors.New("key not found")
	ErrEmpty               = errors.New("dictionary is empty")
	ErrTooManyArguments    = errors.New("too many positional arguments")
	ErrUnpack              = errors.New("cannot unpack item into key, value")
	ErrNotIterable         = errors.New("source is not iterable")
	ErrOrderingUnsupported = errors.New("ordering not supported")
	ErrUnhashable          = errors.New("unhashable value")
)

// KeyNotFoundError carries the key as the caller passed it, not its folded form.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s not found", repr(e.Key))
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

type TooManyArgumentsError struct {
	Got int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("expected at most 1 positional argument, got %d", e.Got)
}

func (e *TooManyArgumentsError) Is(target error) bool { return target == ErrTooManyArguments }

// UnpackError reports the positional source item that could not be turned
// into a key and a value. Items before Index have already been applied.
type UnpackError struct {
	Index int
	Type  string
	Err   error
}

func (e *UnpackError) Error() string {
	return fmt.Sprintf("cannot unpack positional argument item #%d of type %s into key, value: %v", e.Index, e.Type, e.Err)
}

func (e *UnpackError) Is(target error) bool { return target == ErrUnpack }

func (e *UnpackError) Unwrap() error { return e.Err }

type OrderingError struct {
	Op          string
	Left, Right any
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("'%s' not supported between instances of '%T' and '%T'", e.Op, e.Left, e.Right)
}

func (e *OrderingError) Is(target error) bool { return target == ErrOrderingUnsupported }
