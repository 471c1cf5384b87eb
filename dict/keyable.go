package dict

import (
	"fmt"
	"reflect"
)

// KeyableBy is a construction trait: positional source items that expose the
// named attribute are stored as (item.<attr>, item) instead of being unpacked
// as pairs. An attribute is an exported struct field or a method taking no
// arguments and returning one value.
type KeyableBy struct {
	attr string
}

func MakeKeyable(attr string) KeyableBy {
	return KeyableBy{attr: attr}
}

func (k KeyableBy) KeyAttr() string {
	return k.attr
}

func (k KeyableBy) String() string {
	return fmt.Sprintf("KeyableBy(%s)", k.attr)
}

func (k KeyableBy) keyOf(item any) (any, bool) {
	if item == nil || k.attr == "" {
		return nil, false
	}
	rv := reflect.ValueOf(item)
	if m := rv.MethodByName(k.attr); m.IsValid() {
		if mt := m.Type(); mt.NumIn() == 0 && mt.NumOut() == 1 {
			return m.Call(nil)[0].Interface(), true
		}
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	f, ok := rv.Type().FieldByName(k.attr)
	if !ok || !f.IsExported() {
		return nil, false
	}
	fv, err := rv.FieldByIndexErr(f.Index)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}
