package dict

import (
	"iter"
	"strings"
)

// KeysView, ValuesView and ItemsView read through to the dictionary's storage
// on every call; they never hold a snapshot.

type KeysView[V any] struct{ d *Dict[V] }

type ValuesView[V any] struct{ d *Dict[V] }

type ItemsView[V any] struct{ d *Dict[V] }

func (d *Dict[V]) Keys() KeysView[V] { return KeysView[V]{d: d} }

func (d *Dict[V]) Values() ValuesView[V] { return ValuesView[V]{d: d} }

func (d *Dict[V]) Items() ItemsView[V] { return ItemsView[V]{d: d} }

func (v KeysView[V]) All() iter.Seq[any] { return v.d.Iter() }

func (v KeysView[V]) Backward() iter.Seq[any] { return v.d.Reversed() }

func (v KeysView[V]) Len() int { return v.d.Len() }

// Contains looks key up case-insensitively.
func (v KeysView[V]) Contains(key any) (bool, error) { return v.d.Contains(key) }

func (v KeysView[V]) String() string {
	return renderView("KeysView", v.All(), repr)
}

func (v ValuesView[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range v.d.entries() {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (v ValuesView[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range v.d.backward() {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (v ValuesView[V]) Len() int { return v.d.Len() }

// Contains scans the values.
func (v ValuesView[V]) Contains(value V) bool {
	for x := range v.All() {
		if v.d.equalValues(x, value) {
			return true
		}
	}
	return false
}

func (v ValuesView[V]) String() string {
	return renderView("ValuesView", v.All(), func(x V) string { return repr(x) })
}

func (v ItemsView[V]) All() iter.Seq[Item[V]] {
	return func(yield func(Item[V]) bool) {
		for _, e := range v.d.entries() {
			if !yield(Item[V]{Key: e.key, Value: e.value}) {
				return
			}
		}
	}
}

func (v ItemsView[V]) Backward() iter.Seq[Item[V]] {
	return func(yield func(Item[V]) bool) {
		for _, e := range v.d.backward() {
			if !yield(Item[V]{Key: e.key, Value: e.value}) {
				return
			}
		}
	}
}

func (v ItemsView[V]) Len() int { return v.d.Len() }

// Contains reports whether item.Key is present (case-insensitively) with a
// value equal to item.Value.
func (v ItemsView[V]) Contains(item Item[V]) (bool, error) {
	got, ok, err := v.d.Lookup(item.Key)
	if err != nil || !ok {
		return false, err
	}
	return v.d.equalValues(got, item.Value), nil
}

func (v ItemsView[V]) String() string {
	return renderView("ItemsView", v.All(), func(it Item[V]) string {
		return "(" + repr(it.Key) + ", " + repr(it.Value) + ")"
	})
}

func renderView[T any](name string, seq iter.Seq[T], render func(T) string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("([")
	first := true
	for x := range seq {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(render(x))
	}
	b.WriteString("])")
	return b.String()
}
