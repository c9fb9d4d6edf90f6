// Package generate provides single-pass numeric and object generators.
//
// Every generator is a source.Cursor, so it can be handed straight to
// sequence.New:
//
//	evens, _ := sequence.New(generate.Counter(0, 2)).Take(3).ToArray()
//	// evens == []any{0, 2, 4}
//
// A generator built from invalid arguments yields nothing and reports the
// problem through Err; sequence.From surfaces it.
package generate
