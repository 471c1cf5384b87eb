package dict

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/on-the-ground/nocasedict/fold"
	"go.uber.org/zap"
)

// Item is a key/value pair with the key in its original case.
type Item[V any] struct {
	Key   any
	Value V
}

// Kwarg is a named value applied after the positional source of an update.
type Kwarg[V any] struct {
	Name  string
	Value V
}

func Kw[V any](name string, value V) Kwarg[V] {
	return Kwarg[V]{Name: name, Value: value}
}

// Mapping is the read side of a keyed container. It is what Update accepts
// as a mapping-like source and what Equal compares against.
type Mapping[V any] interface {
	Len() int
	All() iter.Seq2[any, V]
	Lookup(key any) (V, bool, error)
}

var _ Mapping[int] = (*Dict[int])(nil)

type entry[V any] struct {
	key   any
	value V
}

// Dict is a case-insensitive, case-preserving, insertion-ordered dictionary.
// It is not safe for concurrent use.
//
// The zero value is an empty dictionary with the default configuration. A nil
// *Dict reads as empty, like a nil map, and panics on writes.
type Dict[V any] struct {
	// folded key -> entry[V], in insertion order
	data *linkedhashmap.Map
	cfg  config
}

// New returns an empty dictionary.
func New[V any](opts ...Option) *Dict[V] {
	return &Dict[V]{
		data: linkedhashmap.New(),
		cfg:  newConfig(opts),
	}
}

// Make builds a dictionary from at most one positional source followed by
// keyword pairs, the same way UpdateWith applies them.
func Make[V any](args []any, kwargs []Kwarg[V], opts ...Option) (*Dict[V], error) {
	d := New[V](opts...)
	if err := d.UpdateWith(args, kwargs...); err != nil {
		return nil, err
	}
	return d, nil
}

// From builds a dictionary from a single positional source.
func From[V any](src any, opts ...Option) (*Dict[V], error) {
	return Make[V]([]any{src}, nil, opts...)
}

// FromKeys builds a dictionary mapping every key of keys to value. Keys that
// fold to the same form keep the position and case of their first occurrence.
func FromKeys[V any](keys any, value V, opts ...Option) (*Dict[V], error) {
	d := New[V](opts...)
	seq, err := keysOf(keys, d.logger())
	if err != nil {
		return nil, err
	}
	for k := range seq {
		if _, ok, err := d.Lookup(k); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		if err := d.SetItem(k, value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dict[V]) normalize(key any) (any, error) {
	if d == nil || d.cfg.normalize == nil {
		return fold.Key(key)
	}
	return d.cfg.normalize(key)
}

func (d *Dict[V]) logger() *zap.Logger {
	if d == nil || d.cfg.logger == nil {
		return zap.NewNop()
	}
	return d.cfg.logger
}

func (d *Dict[V]) name() string {
	if d == nil || d.cfg.name == "" {
		return defaultName
	}
	return d.cfg.name
}

func (d *Dict[V]) empty() bool {
	return d == nil || d.data == nil
}

// storage returns the backing map, allocating it for a zero Dict.
func (d *Dict[V]) storage() *linkedhashmap.Map {
	if d.data == nil {
		d.data = linkedhashmap.New()
	}
	return d.data
}

// GetItem returns the value stored under key, looked up case-insensitively.
func (d *Dict[V]) GetItem(key any) (V, error) {
	v, ok, err := d.Lookup(key)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Lookup is the comma-ok form of GetItem.
func (d *Dict[V]) Lookup(key any) (V, bool, error) {
	var zero V
	k, err := d.normalize(key)
	if err != nil || d.empty() {
		return zero, false, err
	}
	raw, ok := d.data.Get(k)
	if !ok {
		return zero, false, nil
	}
	return raw.(entry[V]).value, true, nil
}

// SetItem stores value under key. An existing item keeps its position but
// takes the case of key.
func (d *Dict[V]) SetItem(key any, value V) error {
	k, err := d.normalize(key)
	if err != nil {
		return err
	}
	d.storage().Put(k, entry[V]{key: key, value: value})
	return nil
}

func (d *Dict[V]) Delete(key any) error {
	k, err := d.normalize(key)
	if err != nil {
		return err
	}
	if d.empty() {
		return &KeyNotFoundError{Key: key}
	}
	if _, ok := d.data.Get(k); !ok {
		return &KeyNotFoundError{Key: key}
	}
	d.data.Remove(k)
	return nil
}

func (d *Dict[V]) Len() int {
	if d.empty() {
		return 0
	}
	return d.data.Size()
}

func (d *Dict[V]) Contains(key any) (bool, error) {
	_, ok, err := d.Lookup(key)
	return ok, err
}

// Get returns def when key is absent.
func (d *Dict[V]) Get(key any, def V) (V, error) {
	v, ok, err := d.Lookup(key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Pop removes key and returns its value. Without a default a missing key is a
// *KeyNotFoundError; with one, the default is returned and d is unchanged.
func (d *Dict[V]) Pop(key any, def ...V) (V, error) {
	var zero V
	if len(def) > 1 {
		return zero, &TooManyArgumentsError{Got: len(def)}
	}
	k, err := d.normalize(key)
	if err != nil {
		return zero, err
	}
	var raw any
	ok := false
	if !d.empty() {
		raw, ok = d.data.Get(k)
	}
	if !ok {
		if len(def) == 1 {
			return def[0], nil
		}
		return zero, &KeyNotFoundError{Key: key}
	}
	d.data.Remove(k)
	return raw.(entry[V]).value, nil
}

// PopLast removes and returns the item at the end of iteration order.
func (d *Dict[V]) PopLast() (Item[V], error) {
	if d.empty() {
		return Item[V]{}, fmt.Errorf("pop last: %w", ErrEmpty)
	}
	it := d.data.Iterator()
	if !it.Last() {
		return Item[V]{}, fmt.Errorf("pop last: %w", ErrEmpty)
	}
	k, e := it.Key(), it.Value().(entry[V])
	d.data.Remove(k)
	return Item[V]{Key: e.key, Value: e.value}, nil
}

// SetDefault returns the value under key, storing def first if key is absent.
func (d *Dict[V]) SetDefault(key any, def V) (V, error) {
	v, ok, err := d.Lookup(key)
	if err != nil || ok {
		return v, err
	}
	if err := d.SetItem(key, def); err != nil {
		return def, err
	}
	return def, nil
}

func (d *Dict[V]) Clear() {
	if !d.empty() {
		d.data.Clear()
	}
}

// Copy returns a dictionary with the same configuration and items. Keys and
// values are shared, not copied.
func (d *Dict[V]) Copy() *Dict[V] {
	if d == nil {
		return New[V]()
	}
	c := &Dict[V]{
		data: linkedhashmap.New(),
		cfg:  d.cfg,
	}
	for k, e := range d.entries() {
		c.data.Put(k, e)
	}
	return c
}

// entries yields folded keys with their entries, front to back.
func (d *Dict[V]) entries() iter.Seq2[any, entry[V]] {
	return func(yield func(any, entry[V]) bool) {
		if d.empty() {
			return
		}
		it := d.data.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value().(entry[V])) {
				return
			}
		}
	}
}

func (d *Dict[V]) backward() iter.Seq2[any, entry[V]] {
	return func(yield func(any, entry[V]) bool) {
		if d.empty() {
			return
		}
		it := d.data.Iterator()
		it.End()
		for it.Prev() {
			if !yield(it.Key(), it.Value().(entry[V])) {
				return
			}
		}
	}
}

// All yields keys in their original case with their values.
func (d *Dict[V]) All() iter.Seq2[any, V] {
	return func(yield func(any, V) bool) {
		for _, e := range d.entries() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Iter yields keys in their original case, in insertion order.
func (d *Dict[V]) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range d.entries() {
			if !yield(e.key) {
				return
			}
		}
	}
}

func (d *Dict[V]) Reversed() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range d.backward() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// KeysNocase yields the folded keys used for comparison.
func (d *Dict[V]) KeysNocase() iter.Seq[any] {
	return func(yield func(any) bool) {
		for k := range d.entries() {
			if !yield(k) {
				return
			}
		}
	}
}

// Equal matches the items of d against other by case-insensitive key and
// compares the matched values. Values whose comparison panics are unequal, and
// so is a key that other fails to normalize; that error is not reported.
//
// Values are compared with their EqualAny method if they have one, otherwise
// with an Equal method taking V, otherwise with ==. A value type with such an
// Equal method must implement Hasher to be usable in a Hashable.
func (d *Dict[V]) Equal(other Mapping[V]) bool {
	if other == nil {
		return false
	}
	for key, v := range d.All() {
		ov, ok, err := other.Lookup(key)
		if err != nil || !ok {
			return false
		}
		if !d.equalValues(v, ov) {
			return false
		}
	}
	return d.Len() == other.Len()
}

func (d *Dict[V]) NotEqual(other Mapping[V]) bool {
	return !d.Equal(other)
}

// EqualAny reports whether other is a Mapping[V] that is Equal to d. It lets
// dictionaries held as values of another dictionary compare by content.
func (d *Dict[V]) EqualAny(other any) bool {
	m, ok := other.(Mapping[V])
	return ok && d.Equal(m)
}

func (d *Dict[V]) equalValues(a, b V) (eq bool) {
	if e, ok := any(a).(interface{ EqualAny(any) bool }); ok {
		return e.EqualAny(b)
	}
	if e, ok := any(a).(interface{ Equal(V) bool }); ok {
		return e.Equal(b)
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger().Debug("values not comparable",
				zap.String("type", fmt.Sprintf("%T", a)),
				zap.Any("panic", r),
			)
			eq = false
		}
	}()
	return any(a) == any(b)
}

func (d *Dict[V]) Less(other any) (bool, error) {
	return false, &OrderingError{Op: "<", Left: d, Right: other}
}

func (d *Dict[V]) Greater(other any) (bool, error) {
	return false, &OrderingError{Op: ">", Left: d, Right: other}
}

func (d *Dict[V]) LessEqual(other any) (bool, error) {
	return false, &OrderingError{Op: "<=", Left: d, Right: other}
}

func (d *Dict[V]) GreaterEqual(other any) (bool, error) {
	return false, &OrderingError{Op: ">=", Left: d, Right: other}
}

// String renders the dictionary as Name({key: value, ...}) in iteration order.
func (d *Dict[V]) String() string {
	var b strings.Builder
	b.WriteString(d.name())
	b.WriteString("({")
	first := true
	for k, v := range d.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(repr(k))
		b.WriteString(": ")
		b.WriteString(repr(v))
	}
	b.WriteString("})")
	return b.String()
}

func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%#v", v)
}
