// Package sequence provides lazy, composable processing over any value the
// source package can adapt.
//
// A Sequence wraps a source and a driver. Stages such as Map, Filter and
// Take rebind the driver and return the same Sequence; nothing is pulled
// from the source until a terminal consumer (ToArray, Reduce, First, ...)
// runs the chain:
//
//	words, err := sequence.New("unexpected").
//		Filter(func(v, _, _ any) bool { return v != "e" }).
//		Take(4).
//		ToArray()
//	// words == []any{"u", "n", "x", "p"}
//
// Composition is push-based underneath: each stage receives an Upstream it
// can run and a Downstream it forwards steps to. A downstream returning
// false stops the whole chain, so Take(n) never pulls more than n source
// elements.
//
// Invalid construction arguments (a nil mapper, a chunk size below one) are
// recorded on the sequence and returned by Err and by every terminal, which
// then does not touch the source.
//
// Each terminal drives the chain again from the source. Single-pass sources
// such as a source.Cursor appear empty on the second drive.
package sequence
