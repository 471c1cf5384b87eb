package dict

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/on-the-ground/nocasedict/shared/helper"
	"go.uber.org/zap"
)

// Update applies at most one positional source. See UpdateWith.
func (d *Dict[V]) Update(src ...any) error {
	return d.UpdateWith(src)
}

// UpdateWith applies at most one positional source, then kwargs in order, so
// kwargs win on key collisions. Application is left to right: when an item
// fails, the items before it stay applied.
//
// The source is one of:
//   - a Mapping[V],
//   - a Go map, whose iteration order is unspecified,
//   - an iter.Seq2[any, V] or iter.Seq2[string, V],
//   - an iter.Seq[any], slice, array or string whose elements are Item[V],
//     Kwarg[V] or two-element slices/arrays, or, with a KeyableBy trait,
//     values exposing the trait's key attribute.
func (d *Dict[V]) UpdateWith(src []any, kwargs ...Kwarg[V]) error {
	if len(src) > 1 {
		return &TooManyArgumentsError{Got: len(src)}
	}
	if len(src) == 1 {
		if err := d.updateFrom(src[0]); err != nil {
			return err
		}
	}
	for _, kw := range kwargs {
		if err := d.SetItem(kw.Name, kw.Value); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dict[V]) updateFrom(src any) error {
	switch s := src.(type) {
	case nil:
		return fmt.Errorf("%w: nil", ErrNotIterable)
	case Mapping[V]:
		return d.updatePairs(s.All())
	case iter.Seq2[any, V]:
		return d.updatePairs(s)
	case func(func(any, V) bool):
		return d.updatePairs(s)
	case iter.Seq2[string, V]:
		return d.updatePairs(anyKeys(s))
	case func(func(string, V) bool):
		return d.updatePairs(anyKeys(s))
	case iter.Seq[any]:
		return d.updateItems(s)
	case func(func(any) bool):
		return d.updateItems(s)
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Map:
		warnUnordered(d.logger(), src, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			key := it.Key().Interface()
			v, err := helper.As[V](it.Value().Interface())
			if err != nil {
				return fmt.Errorf("value for key %s: %w", repr(key), err)
			}
			if err := d.SetItem(key, v); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice, reflect.Array, reflect.String:
		return d.updateItems(elements(rv))
	}
	return fmt.Errorf("%w: %T", ErrNotIterable, src)
}

func (d *Dict[V]) updatePairs(pairs iter.Seq2[any, V]) error {
	for k, v := range pairs {
		if err := d.SetItem(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dict[V]) updateItems(items iter.Seq[any]) error {
	i := 0
	for item := range items {
		key, value, err := d.unpack(i, item)
		if err != nil {
			return err
		}
		if err := d.SetItem(key, value); err != nil {
			return err
		}
		i++
	}
	return nil
}

func (d *Dict[V]) unpack(i int, item any) (any, V, error) {
	var zero V
	if d.cfg.keyable != nil {
		if key, ok := d.cfg.keyable.keyOf(item); ok {
			v, err := helper.As[V](item)
			if err != nil {
				return nil, zero, &UnpackError{Index: i, Type: fmt.Sprintf("%T", item), Err: err}
			}
			return key, v, nil
		}
	}

	var key, raw any
	switch it := item.(type) {
	case Item[V]:
		return it.Key, it.Value, nil
	case Kwarg[V]:
		return it.Name, it.Value, nil
	default:
		rv := reflect.ValueOf(item)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if n := rv.Len(); n != 2 {
				return nil, zero, &UnpackError{
					Index: i,
					Type:  fmt.Sprintf("%T", item),
					Err:   fmt.Errorf("expected 2 values, got %d", n),
				}
			}
			key, raw = rv.Index(0).Interface(), rv.Index(1).Interface()
		default:
			return nil, zero, &UnpackError{
				Index: i,
				Type:  fmt.Sprintf("%T", item),
				Err:   fmt.Errorf("%T is not a key, value pair", item),
			}
		}
	}
	v, err := helper.As[V](raw)
	if err != nil {
		return nil, zero, &UnpackError{Index: i, Type: fmt.Sprintf("%T", item), Err: err}
	}
	return key, v, nil
}

// keysOf returns the keys of a FromKeys source.
func keysOf(src any, logger *zap.Logger) (iter.Seq[any], error) {
	switch s := src.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrNotIterable)
	case interface{ Iter() iter.Seq[any] }:
		return s.Iter(), nil
	case iter.Seq[any]:
		return s, nil
	case func(func(any) bool):
		return s, nil
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Map:
		warnUnordered(logger, src, rv.Len())
		return func(yield func(any) bool) {
			it := rv.MapRange()
			for it.Next() {
				if !yield(it.Key().Interface()) {
					return
				}
			}
		}, nil
	case reflect.Slice, reflect.Array, reflect.String:
		return elements(rv), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, src)
}

func elements(rv reflect.Value) iter.Seq[any] {
	if rv.Kind() == reflect.String {
		return func(yield func(any) bool) {
			for _, r := range rv.String() {
				if !yield(r) {
					return
				}
			}
		}
	}
	return func(yield func(any) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func anyKeys[V any](seq func(func(string, V) bool)) iter.Seq2[any, V] {
	return func(yield func(any, V) bool) {
		for k, v := range seq {
			if !yield(k, v) {
				return
			}
		}
	}
}

func warnUnordered(logger *zap.Logger, src any, n int) {
	if n > 1 {
		logger.Warn("source map does not preserve order",
			zap.String("type", fmt.Sprintf("%T", src)),
			zap.Int("len", n),
		)
	}
}
