package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnexpectedType = errors.New("unexpected type")

// As asserts v to T. A nil v converts to the zero T when T can hold nil
// (interface, pointer, map, slice, func or chan types).
func As[T any](v any) (T, error) {
	var zero T
	if v == nil {
		if Nilable[T]() {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: nil is not a %s", ErrUnexpectedType, typeName[T]())
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not a %s", ErrUnexpectedType, v, typeName[T]())
	}
	return val, nil
}

// Nilable reports whether the zero value of T is nil.
func Nilable[T any]() bool {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
