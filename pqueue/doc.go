// Package pqueue provides an indexed binary min-heap with in-place decrease-key.
//
// What:
//
//   - Queue orders non-negative integer ids using a caller-supplied LessFunc.
//   - Ids are stable handles into the caller's own arena (for example a slice of
//     search nodes). The queue never stores the items themselves.
//   - A side table maps id → current heap slot, so Contains is O(1) and Decrease
//     can find an item without scanning.
//
// Slots:
//
//	The heap owns the slot bookkeeping. Items do not carry a mutable "heap index"
//	field; node identity and heap position are independent.
//
// Operations and complexity:
//
//   - Push:     O(log n): append, record slot, sift up.
//   - Pop:      O(log n): take root, move last element to root, sift down.
//   - Decrease: O(log n): sift up only; valid only after the id's key decreased.
//   - Contains, Len, Peek: O(1).
//
// Sift rules:
//
//   - Sift-up compares slot i with its parent (i-1)/2 and swaps while strictly smaller.
//   - Sift-down compares with both children 2i+1 and 2i+2, picks the smaller child
//     (the left one on ties) and swaps while that child is strictly smaller.
//   - Every swap updates the backing array and both ids' slots together.
//
// Capacity:
//
//	By default the backing storage grows as needed (WithCapacity only pre-sizes it).
//	WithFixedCapacity enforces a hard cap: Push past it fails with
//	ErrCapacityExceeded and nothing is overwritten.
//
// Errors (sentinel):
//
//   - ErrEmpty            Pop or Peek on an empty queue.
//   - ErrNegativeID       Push with an id < 0.
//   - ErrAlreadyQueued    Push of an id that is already in the queue.
//   - ErrNotQueued        Decrease of an id that is not in the queue.
//   - ErrCapacityExceeded Push into a full fixed-capacity queue.
//
// Thread safety:
//
//	A Queue is not safe for concurrent use. Each search should own its queue.
package pqueue
