package dict_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/nocasedict/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_ReadThrough(t *testing.T) {
	d := pets(t)
	keys, values, items := d.Keys(), d.Values(), d.Items()

	assert.Equal(t, []any{"Dog", "Budgie"}, slices.Collect(keys.All()))
	assert.Equal(t, []string{"Cat", "Fish"}, slices.Collect(values.All()))
	assert.Equal(t, []dict.Item[string]{{Key: "Dog", Value: "Cat"}, {Key: "Budgie", Value: "Fish"}}, slices.Collect(items.All()))

	require.NoError(t, d.SetItem("Horse", "Hay"))
	require.NoError(t, d.Delete("dog"))

	assert.Equal(t, 2, keys.Len())
	assert.Equal(t, 2, values.Len())
	assert.Equal(t, 2, items.Len())
	assert.Equal(t, []any{"Budgie", "Horse"}, slices.Collect(keys.All()))
	assert.Equal(t, []string{"Fish", "Hay"}, slices.Collect(values.All()))
	assert.Equal(t, []dict.Item[string]{{Key: "Budgie", Value: "Fish"}, {Key: "Horse", Value: "Hay"}}, slices.Collect(items.All()))
}

func TestViews_Backward(t *testing.T) {
	d := pets(t)

	assert.Equal(t, []any{"Budgie", "Dog"}, slices.Collect(d.Keys().Backward()))
	assert.Equal(t, []string{"Fish", "Cat"}, slices.Collect(d.Values().Backward()))
	assert.Equal(t, []dict.Item[string]{{Key: "Budgie", Value: "Fish"}, {Key: "Dog", Value: "Cat"}}, slices.Collect(d.Items().Backward()))
}

func TestViews_Contains(t *testing.T) {
	d := pets(t)

	ok, err := d.Keys().Contains("BUDGIE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Keys().Contains("Horse")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, d.Values().Contains("Fish"))
	assert.False(t, d.Values().Contains("fish"))

	ok, err = d.Items().Contains(dict.Item[string]{Key: "dog", Value: "Cat"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Items().Contains(dict.Item[string]{Key: "dog", Value: "Fish"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.Items().Contains(dict.Item[string]{Key: 42})
	assert.Error(t, err)
}

func TestViews_EmptyDict(t *testing.T) {
	d := dict.New[int]()

	assert.Empty(t, slices.Collect(d.Keys().All()))
	assert.Empty(t, slices.Collect(d.Values().Backward()))
	assert.Equal(t, "KeysView([])", d.Keys().String())
	assert.Equal(t, "ItemsView([])", d.Items().String())
}
