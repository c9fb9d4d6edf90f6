// Package source adapts collection-like Go values to a single pull-based
// Cursor contract.
//
// Adapt walks an ordered dispatch table and returns the first matching
// cursor:
//
//  1. slices, arrays (and pointers to them), strings (one step per rune)
//  2. map-like values: MapLike implementations such as *Map, then built-in
//     maps in sorted key order
//  3. set-like values: SetLike implementations such as *Set, then built-in
//     maps with struct{} elements
//  4. iterables: Cursor, Iterable, and iter.Seq / iter.Seq2 shaped funcs
//  5. records: structs and pointers to structs, one step per exported field
//
// Anything else, including nil, yields an exhausted cursor. Adapt never
// panics.
//
// Keys follow the traversal: positional indexes for indexable and iterable
// sources, the intrinsic key for maps and records, and the element itself
// for sets.
package source
