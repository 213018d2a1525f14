package pqueue

import "fmt"

// Verify checks the heap order and that every queued id's slot matches its real position.
func (q *Queue) Verify() error {
	for i, id := range q.items {
		if q.slot[id] != i {
			return fmt.Errorf("id %d: slot table says %d, actual %d", id, q.slot[id], i)
		}
		if i > 0 && q.less(id, q.items[(i-1)/2]) {
			return fmt.Errorf("slot %d (id %d) orders before its parent", i, id)
		}
	}
	queued := 0
	for _, s := range q.slot {
		if s != notQueued {
			queued++
		}
	}
	if queued != len(q.items) {
		return fmt.Errorf("slot table marks %d ids queued, heap holds %d", queued, len(q.items))
	}

	return nil
}
