package pqueue

import "errors"

// Sentinel errors returned by Queue operations.
var (
	// ErrEmpty indicates Pop or Peek was called on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrNegativeID indicates an id below zero was pushed.
	ErrNegativeID = errors.New("pqueue: id must be non-negative")

	// ErrAlreadyQueued indicates Push of an id that is already present.
	ErrAlreadyQueued = errors.New("pqueue: id already queued")

	// ErrNotQueued indicates Decrease of an id that is not present.
	ErrNotQueued = errors.New("pqueue: id not queued")

	// ErrCapacityExceeded indicates Push into a full fixed-capacity queue.
	ErrCapacityExceeded = errors.New("pqueue: fixed capacity exceeded")

	// ErrBadCapacity indicates a negative capacity was passed to an option.
	ErrBadCapacity = errors.New("pqueue: capacity must be non-negative")
)

// LessFunc reports whether the item with id a orders strictly before id b.
// It must describe a strict weak ordering over the ids currently queued.
type LessFunc func(a, b int) bool

// Options configures a Queue.
//
// Capacity – initial size of the backing storage (and of the slot table).
// Fixed    – when true, Capacity is a hard limit for Push.
type Options struct {
	Capacity int
	Fixed    bool
}

// Option represents a functional option for New.
type Option func(*Options)

// WithCapacity pre-sizes the backing storage for n items. The queue still grows past n.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
		o.Fixed = false
	}
}

// WithFixedCapacity caps the queue at n items; Push beyond that returns ErrCapacityExceeded.
// Panics with ErrBadCapacity if n < 0.
func WithFixedCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
		o.Fixed = true
	}
}

// DefaultOptions returns a growable queue with no pre-sizing.
func DefaultOptions() Options {
	return Options{Capacity: 0, Fixed: false}
}
