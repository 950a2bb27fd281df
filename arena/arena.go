package arena

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/unbox"
)

// ErrNotFound is returned when a handle does not resolve to a live object.
var ErrNotFound = errors.New("arena: handle not found")

// Handle identifies one live object. The zero Handle is never issued.
type Handle uint32

// Stats tracks arena usage metrics.
//
// Note on semantics:
//   - Live: current live object count
//   - Allocs: cumulative allocation count
//   - Frees: cumulative free count
//   - Reusable: handles parked for reuse
type Stats struct {
	Live     int
	Allocs   uint64
	Frees    uint64
	Reusable int
}

// Options configures an Arena.
type Options struct {
	// Logger receives allocation and free events. Defaults to no logging.
	Logger *unbox.Logger
}

// DefaultOptions are the recommended arena options.
var DefaultOptions = Options{
	Logger: nil,
}

// Arena owns a set of objects sharing one accessor, each addressable by its
// Handle.
type Arena[S any] struct {
	acc    unbox.Accessor[S]
	logger *unbox.Logger

	objs []*unbox.Object[S] // index = handle; slot 0 reserved as null
	live *roaring.Bitmap
	free []Handle // freed handles, reused LIFO

	allocs uint64
	frees  uint64
}

// New creates an empty Arena for objects of acc.
func New[S any](acc unbox.Accessor[S], optFns ...func(o *Options)) *Arena[S] {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = unbox.NoopLogger()
	}

	return &Arena[S]{
		acc:    acc,
		logger: opts.Logger,
		objs:   make([]*unbox.Object[S], 1), // slot 0 reserved as null
		live:   roaring.New(),
	}
}

// Alloc creates a new object and returns its handle. Size options are passed
// through to the object constructor.
func (a *Arena[S]) Alloc(optFns ...unbox.Option) (Handle, error) {
	obj, err := unbox.NewObject(a.acc, optFns...)
	if err != nil {
		return 0, err
	}

	var h Handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
		a.objs[h] = obj
	} else {
		h = Handle(len(a.objs))
		a.objs = append(a.objs, obj)
	}

	a.live.Add(uint32(h))
	a.allocs++
	a.logger.WithHandle(uint32(h)).Debug("object allocated")

	return h, nil
}

// Get returns the object behind h.
func (a *Arena[S]) Get(h Handle) (*unbox.Object[S], error) {
	if !a.Contains(h) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, h)
	}
	return a.objs[h], nil
}

// Contains reports whether h resolves to a live object.
func (a *Arena[S]) Contains(h Handle) bool {
	return a.live.Contains(uint32(h))
}

// Free releases the object behind h. Its handle becomes eligible for reuse
// by a later Alloc.
func (a *Arena[S]) Free(h Handle) error {
	if !a.Contains(h) {
		return fmt.Errorf("%w: %d", ErrNotFound, h)
	}

	a.objs[h] = nil
	a.live.Remove(uint32(h))
	a.free = append(a.free, h)
	a.frees++
	a.logger.WithHandle(uint32(h)).Debug("object freed")

	return nil
}

// Len returns the number of live objects.
func (a *Arena[S]) Len() int {
	return int(a.live.GetCardinality())
}

// All iterates live objects in ascending handle order.
func (a *Arena[S]) All() iter.Seq2[Handle, *unbox.Object[S]] {
	return func(yield func(Handle, *unbox.Object[S]) bool) {
		it := a.live.Iterator()
		for it.HasNext() {
			h := Handle(it.Next())
			if !yield(h, a.objs[h]) {
				return
			}
		}
	}
}

// Stats returns the current arena statistics.
func (a *Arena[S]) Stats() Stats {
	return Stats{
		Live:     a.Len(),
		Allocs:   a.allocs,
		Frees:    a.frees,
		Reusable: len(a.free),
	}
}

func (a *Arena[S]) String() string {
	s := a.Stats()
	return fmt.Sprintf("Arena{live: %d, allocs: %d, frees: %d, reusable: %d}",
		s.Live, s.Allocs, s.Frees, s.Reusable)
}
