// Package arena manages collections of storage objects behind stable
// integer handles.
//
// An Arena hands out dense uint32 handles, reuses freed slots, and keeps a
// roaring bitmap of live handles for fast membership checks and ordered
// iteration. The zero Handle is never issued, so it can be used as a null
// value in caller data structures.
//
// # Concurrency Model
//
// An Arena is not safe for concurrent use, matching the objects it owns.
// Wrap it in a lock or shard it per goroutine when sharing is needed.
package arena
