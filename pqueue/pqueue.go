package pqueue

import "fmt"

// notQueued marks an id that has no slot in the heap.
const notQueued = -1

// Queue is an indexed binary min-heap over integer ids.
type Queue struct {
	less  LessFunc
	items []int // heap slot → id
	slot  []int // id → heap slot, or notQueued
	limit int   // hard cap when fixed, otherwise -1
}

// New creates an empty Queue ordered by less.
// Panics if less is nil, since a queue without an order is a programming error.
func New(less LessFunc, opts ...Option) *Queue {
	if less == nil {
		panic("pqueue: nil LessFunc")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	q := &Queue{
		less:  less,
		items: make([]int, 0, cfg.Capacity),
		slot:  make([]int, 0, cfg.Capacity),
		limit: -1,
	}
	if cfg.Fixed {
		q.limit = cfg.Capacity
	}

	return q
}

// Len returns the number of queued ids.
func (q *Queue) Len() int { return len(q.items) }

// Contains reports whether id is currently queued. O(1).
func (q *Queue) Contains(id int) bool {
	return id >= 0 && id < len(q.slot) && q.slot[id] != notQueued
}

// Push inserts id and restores the heap property by sifting it up.
func (q *Queue) Push(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	if q.Contains(id) {
		return fmt.Errorf("%w: %d", ErrAlreadyQueued, id)
	}
	if q.limit >= 0 && len(q.items) >= q.limit {
		return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, q.limit)
	}
	for id >= len(q.slot) {
		q.slot = append(q.slot, notQueued)
	}
	q.items = append(q.items, id)
	q.slot[id] = len(q.items) - 1
	q.up(len(q.items) - 1)

	return nil
}

// Peek returns the minimum id without removing it.
func (q *Queue) Peek() (int, error) {
	if len(q.items) == 0 {
		return 0, ErrEmpty
	}

	return q.items[0], nil
}

// Pop removes and returns the minimum id.
// The last element is moved to the root and sifted down.
func (q *Queue) Pop() (int, error) {
	n := len(q.items)
	if n == 0 {
		return 0, ErrEmpty
	}
	top := q.items[0]
	last := n - 1
	if last > 0 {
		q.swap(0, last)
	}
	q.items = q.items[:last]
	q.slot[top] = notQueued
	if last > 0 {
		q.down(0)
	}

	return top, nil
}

// Decrease re-positions id after its key has decreased. It only sifts up,
// so calling it after a key increase leaves the heap out of order.
func (q *Queue) Decrease(id int) error {
	if !q.Contains(id) {
		return fmt.Errorf("%w: %d", ErrNotQueued, id)
	}
	q.up(q.slot[id])

	return nil
}

// Reset empties the queue while keeping its allocated storage.
func (q *Queue) Reset() {
	for _, id := range q.items {
		q.slot[id] = notQueued
	}
	q.items = q.items[:0]
}

// up moves the element at slot i toward the root while it is strictly smaller than its parent.
func (q *Queue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the element at slot i toward the leaves while a child is strictly smaller.
// The left child wins ties between the two children.
func (q *Queue) down(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && q.less(q.items[right], q.items[left]) {
			child = right
		}
		if !q.less(q.items[child], q.items[i]) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

// swap exchanges two heap slots and updates both ids' slot entries.
func (q *Queue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.slot[q.items[i]] = i
	q.slot[q.items[j]] = j
}
