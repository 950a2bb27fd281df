// Package idspace validates caller-supplied indices against one ID space.
//
// An ID space is a half-open index range [Start, Limit) addressing one value
// category (primitive, boolean, or object) of a storage instance. Bounds
// differ by variant and by the instance's current capacity, so callers build
// a Space per check from the live backing length; fixed boolean spaces reuse
// a constant Space.
//
// A failed check wraps unbox.ErrIndexOutOfRange and never touches storage,
// keeping failed mutating calls free of partial writes.
package idspace
