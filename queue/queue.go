package queue

import (
	"iter"
	"unsafe"
)

// Queue is a FIFO queue of uniquely owned links plus a non-owning
// cursor on the last node for O(1) Push.
//
// The zero value for Queue is an empty queue ready to use.
// A Queue must not be used from more than one goroutine at a time.
type Queue[T any] struct {
	head  *node[T]       // owns the chain, holds the next value to pop.
	tail  unsafe.Pointer // *node[T] of the last value, nil iff head is nil.
	count int
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Init empties the queue, unlinking the old chain node by node.
func (q *Queue[T]) Init() {
	head := q.head
	q.head = nil
	q.tail = nil
	q.count = 0
	for head != nil {
		freeNode := head
		head = freeNode.next
		freeNode.free()
	}
}

// Size queue element's number
func (q *Queue[T]) Size() int {
	return q.count
}

func (q *Queue[T]) Empty() bool {
	return q.head == nil
}

// Push puts the given value at the tail of the queue.
func (q *Queue[T]) Push(val T) {
	slot := newNode(val)
	if q.tail == nil {
		if q.head != nil {
			panic(ErrCorrupt)
		}
		q.head = slot
	} else {
		(*node[T])(q.tail).next = slot
	}
	q.tail = unsafe.Pointer(slot)
	q.count++
}

// Pop removes and returns the value at the head of the queue.
// ok is false if the queue is empty.
func (q *Queue[T]) Pop() (val T, ok bool) {
	slot := q.head
	if slot == nil {
		if q.tail != nil {
			panic(ErrCorrupt)
		}
		return
	}
	q.head = slot.next
	if q.head == nil {
		// the cursor pointed at slot, which is about to be freed.
		q.tail = nil
	}
	q.count--
	val = slot.load()
	slot.free()
	return val, true
}

// Peek returns the value at the head of the queue without removing it.
func (q *Queue[T]) Peek() (val T, ok bool) {
	if q.head == nil {
		return
	}
	return q.head.p, true
}

// PeekMut returns a pointer to the value at the head of the queue.
// The pointer is valid until that value is popped.
func (q *Queue[T]) PeekMut() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	return &q.head.p, true
}

// All returns an iterator over the values from head to tail.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.p) {
				return
			}
		}
	}
}

// AllMut returns an iterator over pointers to the values from head to tail.
func (q *Queue[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.p) {
				return
			}
		}
	}
}

// Drain returns an iterator that pops values until the queue is empty.
// Breaking out of the loop leaves the remaining values queued.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := q.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
