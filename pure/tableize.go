package pure

// Tableize wraps a pure single-argument function with a bounded Memo.
// fn must return the same output for the same input; it may run more than
// once for a key when callers race.
func Tableize[I comparable, O any](fn func(I) O, maxTableSize uint32) func(I) O {
	memo := NewMemo[I, O](maxTableSize)
	return func(i I) O {
		if v, ok := memo.Load(i); ok {
			return v
		}
		v := fn(i)
		memo.Store(i, v)
		return v
	}
}
