// Package dict provides a case-insensitive, case-preserving and
// insertion-ordered dictionary.
//
// Keys are looked up, inserted, deleted and compared by their folded form
// (see package fold), while iteration and String return each key in the case
// it was last stored with. Re-assigning an existing key keeps its position;
// deleting and re-adding moves it to the end.
//
// Construction and Update accept at most one positional source (a Mapping,
// a Go map, an iterator, or a slice of pairs) followed by keyword pairs:
//
//	d, err := dict.Make[string](
//	    []any{[]dict.Item[string]{{Key: "Dog", Value: "Cat"}}},
//	    []dict.Kwarg[string]{dict.Kw("Budgie", "Fish")},
//	)
//	v, _ := d.GetItem("DOG") // "Cat"
//
// Two extensions compose with the core:
//   - Hashable adds an order-independent, case-insensitive content hash.
//   - KeyableBy, attached with WithKeyable, takes the key of each source item
//     from one of its fields or methods.
//
// Ordering comparisons are unsupported and always fail with
// ErrOrderingUnsupported. A Dict is not safe for concurrent use.
package dict
