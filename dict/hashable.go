package dict

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher is implemented by values that hash themselves. Hashable implements it,
// so hashable dictionaries can be nested as values.
type Hasher interface {
	Hash() (uint64, error)
}

// contentHasher is satisfied by *Dict and, through embedding, by Hashable.
// Both hash by content, so a plain dictionary and a hashable view of an equal
// dictionary hash alike when nested as values.
type contentHasher interface {
	contentHash() (uint64, error)
}

// Hashable adds a content hash to a dictionary. The hash is order independent
// and case-insensitive, so Equal dictionaries hash alike.
//
// The dictionary stays mutable; mutating it while its hash is in use as a
// set or map key breaks that collection.
type Hashable[V any] struct {
	*Dict[V]
}

var (
	_ Hasher        = Hashable[int]{}
	_ Mapping[int]  = Hashable[int]{}
	_ contentHasher = (*Dict[int])(nil)
	_ contentHasher = Hashable[int]{}
)

func NewHashable[V any](opts ...Option) Hashable[V] {
	return Hashable[V]{Dict: New[V](opts...)}
}

// MakeHashable wraps an existing dictionary; both share storage.
func MakeHashable[V any](d *Dict[V]) Hashable[V] {
	return Hashable[V]{Dict: d}
}

// Hash fails with ErrUnhashable if a value holds a slice, map or func, or if
// a value compares through an Equal method without also implementing Hasher.
func (h Hashable[V]) Hash() (uint64, error) {
	return h.contentHash()
}

func (d *Dict[V]) contentHash() (uint64, error) {
	var sum uint64
	for k, e := range d.entries() {
		if err := checkValueHash[V](e.value); err != nil {
			return 0, fmt.Errorf("hash value of key %s: %w", repr(e.key), err)
		}
		eh, err := entryHash(k, e.value)
		if err != nil {
			return 0, fmt.Errorf("hash value of key %s: %w", repr(e.key), err)
		}
		sum += eh
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], sum)
	binary.LittleEndian.PutUint64(buf[8:], uint64(d.Len()))
	return xxhash.Sum64(buf[:]), nil
}

// checkValueHash rejects values that Equal compares through their own Equal
// method unless they also define Hash. Their hash cannot be derived from
// their representation.
func checkValueHash[V any](v V) error {
	if _, ok := any(v).(interface{ EqualAny(any) bool }); ok {
		return nil
	}
	if _, ok := any(v).(interface{ Equal(V) bool }); !ok {
		return nil
	}
	if _, ok := any(v).(Hasher); ok {
		return nil
	}
	return fmt.Errorf("%w: %T defines Equal but not Hash", ErrUnhashable, v)
}

func entryHash(key, value any) (uint64, error) {
	d := xxhash.New()
	if err := writeHashable(d, key); err != nil {
		return 0, err
	}
	_, _ = d.Write([]byte{0})
	if err := writeHashable(d, value); err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}

func writeHashable(d *xxhash.Digest, v any) error {
	return writeDynamic(d, reflect.ValueOf(v))
}

// writeDynamic hashes a value whose type is only known at run time. Values
// equal under == write the same bytes.
func writeDynamic(d *xxhash.Digest, rv reflect.Value) error {
	if !rv.IsValid() {
		_, _ = d.WriteString("nil")
		return nil
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case contentHasher:
			h, err := x.contentHash()
			if err != nil {
				return err
			}
			_, _ = d.WriteString("dict:")
			writeUint(d, h)
			return nil
		case Hasher:
			h, err := x.Hash()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(d, "%T:", x)
			writeUint(d, h)
			return nil
		}
	}
	_, _ = d.WriteString(rv.Type().String())
	_, _ = d.Write([]byte{':'})
	return writeValue(d, rv)
}

// writeValue walks rv structurally. Floats are canonicalised so that -0 and 0
// agree wherever they are nested.
func writeValue(d *xxhash.Digest, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, rv.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(d, rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		writeFloat(d, real(c))
		writeFloat(d, imag(c))
	case reflect.String:
		s := rv.String()
		writeUint(d, uint64(len(s)))
		_, _ = d.WriteString(s)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		writeUint(d, uint64(rv.Pointer()))
	case reflect.Interface:
		return writeDynamic(d, rv.Elem())
	case reflect.Array:
		for i := range rv.Len() {
			if err := writeValue(d, rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := range rv.NumField() {
			if t.Field(i).Name == "_" {
				continue
			}
			if err := writeValue(d, rv.Field(i)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnhashable, rv.Type())
	}
	return nil
}

func writeUint(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = d.Write(buf[:])
}

func writeFloat(d *xxhash.Digest, f float64) {
	if f == 0 {
		f = 0 // -0 == 0
	}
	writeUint(d, math.Float64bits(f))
}
