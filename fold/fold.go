// Package fold maps dictionary keys to their case-insensitive comparison form.
package fold

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/nocasedict/pure"
	"golang.org/x/text/cases"
)

// CacheSize bounds the memo of folded string keys.
const CacheSize = 4096

var ErrNotFoldable = errors.New("key cannot be case folded")

// Func normalizes a key. Implementations must return a comparable value and
// must map nil to nil.
type Func func(key any) (any, error)

// Casefolder is implemented by key types that know their own folded form.
type Casefolder interface {
	Casefold() string
}

// Lowerer is the fallback capability for key types without full case folding.
type Lowerer interface {
	Lower() string
}

// Bytes is the folded form of a []byte key. It never equals a string key.
type Bytes string

// KeyNormalizationError reports a key that has neither capability.
type KeyNormalizationError struct {
	Key any
}

func (e *KeyNormalizationError) Error() string {
	return fmt.Sprintf("key %#v of type %T does not have a casefold() or lower() method", e.Key, e.Key)
}

func (e *KeyNormalizationError) Is(target error) bool {
	return target == ErrNotFoldable
}

var foldString = pure.Tableize(func(s string) string {
	return cases.Fold().String(s)
}, CacheSize)

// Key is the default Func.
func Key(key any) (any, error) {
	switch k := key.(type) {
	case nil:
		return nil, nil
	case string:
		return foldString(k), nil
	case Casefolder:
		return k.Casefold(), nil
	case Lowerer:
		return k.Lower(), nil
	case []byte:
		return Bytes(bytes.ToLower(k)), nil
	}
	// named string types fold like strings
	if rv := reflect.ValueOf(key); rv.Kind() == reflect.String {
		return foldString(rv.String()), nil
	}
	return nil, &KeyNormalizationError{Key: key}
}

// Checked wraps fn so that a non-comparable result is reported as a
// KeyNormalizationError instead of panicking inside a map lookup.
func Checked(fn Func) Func {
	return func(key any) (any, error) {
		if key == nil {
			return nil, nil
		}
		k, err := fn(key)
		if err != nil {
			return nil, err
		}
		if k != nil && !reflect.TypeOf(k).Comparable() {
			return nil, fmt.Errorf("%w: normalized form %T is not comparable", &KeyNormalizationError{Key: key}, k)
		}
		return k, nil
	}
}
