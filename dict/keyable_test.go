package dict_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/nocasedict/dict"
	"github.com/on-the-ground/nocasedict/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type property struct {
	Name  string
	Value int
}

type classRef struct {
	name string
}

func (c *classRef) ClassName() string { return c.name }

func TestMakeKeyable(t *testing.T) {
	k := dict.MakeKeyable("MyKey")
	assert.Equal(t, "MyKey", k.KeyAttr())
	assert.Equal(t, "KeyableBy(MyKey)", k.String())
}

func TestKeyable_StructField(t *testing.T) {
	a, b := &property{Name: "A", Value: 1}, &property{Name: "B", Value: 2}
	d, err := dict.From[*property]([]*property{a, b}, dict.WithKeyable(dict.MakeKeyable("Name")))
	require.NoError(t, err)

	assert.Equal(t, []any{"A", "B"}, slices.Collect(d.Iter()))
	got, err := d.GetItem("a")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestKeyable_StructValue(t *testing.T) {
	d, err := dict.From[property]([]property{{Name: "Foo", Value: 1}}, dict.WithKeyable(dict.MakeKeyable("Name")))
	require.NoError(t, err)

	got, err := d.GetItem("FOO")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value)
}

func TestKeyable_Method(t *testing.T) {
	objs := []any{&classRef{name: "CIM_Foo"}, &classRef{name: "CIM_Bar"}}
	d, err := dict.From[any](objs, dict.WithKeyable(dict.MakeKeyable("ClassName")))
	require.NoError(t, err)

	assert.Equal(t, []any{"CIM_Foo", "CIM_Bar"}, slices.Collect(d.Iter()))
	ok, err := d.Contains("cim_bar")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeyable_FallsBackToPairs(t *testing.T) {
	src := []any{
		&property{Name: "A", Value: 1},
		[]any{"B", "pair"},
		property{Name: "c"},
	}
	d, err := dict.From[any](src, dict.WithKeyable(dict.MakeKeyable("Name")))
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B", "c"}, slices.Collect(d.Iter()))

	v, err := d.GetItem("b")
	require.NoError(t, err)
	assert.Equal(t, "pair", v)
}

func TestKeyable_MissingAttributeFailsUnpack(t *testing.T) {
	_, err := dict.From[any]([]any{property{Name: "A"}}, dict.WithKeyable(dict.MakeKeyable("Missing")))
	assert.ErrorIs(t, err, dict.ErrUnpack)

	// without the trait, attribute-bearing items are not keyable
	_, err = dict.From[any]([]any{property{Name: "A"}})
	assert.ErrorIs(t, err, dict.ErrUnpack)
}

func TestKeyable_ValueTypeMismatch(t *testing.T) {
	_, err := dict.From[string]([]any{&property{Name: "A"}}, dict.WithKeyable(dict.MakeKeyable("Name")))
	assert.ErrorIs(t, err, dict.ErrUnpack)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
}

func TestKeyable_Update(t *testing.T) {
	d := dict.New[*property](dict.WithKeyable(dict.MakeKeyable("Name")))
	require.NoError(t, d.Update([]*property{{Name: "x", Value: 1}}))
	require.NoError(t, d.Update([]*property{{Name: "X", Value: 2}}))

	assert.Equal(t, 1, d.Len())
	got, err := d.GetItem("x")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value)
	assert.Equal(t, []any{"X"}, slices.Collect(d.Iter()))
}
