// Package capacity plans backing-slice lengths for grow-only slot storage.
//
// Every ID space of a storage instance grows the same way:
//   - Requests at or below the minimum stay at the minimum length.
//   - Larger requests round up to the next power of two, plus the space's
//     fixed reserved prefix (0 or 1 words).
//   - The length domain is capped at 32-bit sizes; a request whose power of
//     two would be 2^31 clamps to the largest representable length.
//
// Lengths are never exact: allocated capacity deliberately over-provisions so
// repeated small resizes stay amortized O(1). Callers that need the exact
// requested size back must track it themselves.
package capacity
