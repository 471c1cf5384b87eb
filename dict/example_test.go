package dict_test

import (
	"fmt"
	"slices"

	"github.com/on-the-ground/nocasedict/dict"
)

func ExampleDict() {
	d, err := dict.From[string]([][2]any{{"Dog", "Cat"}, {"Budgie", "Fish"}})
	if err != nil {
		panic(err)
	}

	v, _ := d.GetItem("DOG")
	fmt.Println(v)

	item, _ := d.PopLast()
	fmt.Println(item.Key, item.Value, d.Len())

	fmt.Println(slices.Collect(d.Reversed()))
	// Output:
	// Cat
	// Budgie Fish 1
	// [Dog]
}

func ExampleMake() {
	d, err := dict.Make(
		[]any{[]dict.Item[int]{{Key: "Content-Type", Value: 1}}},
		[]dict.Kwarg[int]{dict.Kw("content-type", 2), dict.Kw("Accept", 3)},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// NocaseDict({"content-type": 2, "Accept": 3})
}

func ExampleMakeKeyable() {
	type column struct {
		Name string
		Type string
	}
	cols, err := dict.From[column](
		[]column{{Name: "ID", Type: "int"}, {Name: "Email", Type: "text"}},
		dict.WithKeyable(dict.MakeKeyable("Name")),
		dict.WithName("Columns"),
	)
	if err != nil {
		panic(err)
	}
	c, _ := cols.GetItem("email")
	fmt.Println(c.Type, slices.Collect(cols.Iter()))
	// Output:
	// text [ID Email]
}

func ExampleHashable() {
	a := dict.NewHashable[int]()
	b := dict.NewHashable[int]()
	_ = a.SetItem("Answer", 42)
	_ = b.SetItem("ANSWER", 42)

	ha, _ := a.Hash()
	hb, _ := b.Hash()
	fmt.Println(a.Equal(b), ha == hb)
	// Output:
	// true true
}
