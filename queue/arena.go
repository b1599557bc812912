package queue

import "iter"

// Arena is a FIFO queue whose nodes live in one growable slice.
// Links and the tail cursor are slot indices instead of pointers, so a
// stale cursor can only name a recycled slot, never freed memory.
//
// The zero value for Arena is an empty queue ready to use.
type Arena[T any] struct {
	data  []slot[T]
	head  int // index of the next value to pop, 0 if empty.
	tail  int // index of the last value, 0 iff head is 0.
	free  int // head of the free slot list.
	count int
}

// NewArena returns an empty Arena with room for size values.
func NewArena[T any](size int) *Arena[T] {
	return &Arena[T]{data: make([]slot[T], 0, size)}
}

// getSlot maps a 1-based index to its slot.
func (q *Arena[T]) getSlot(id int) *slot[T] {
	return &q.data[id-1]
}

func (q *Arena[T]) alloc(val T) int {
	if q.free != 0 {
		id := q.free
		s := q.getSlot(id)
		q.free = s.next
		s.store(val)
		return id
	}
	q.data = append(q.data, slot[T]{p: val})
	return len(q.data)
}

func (q *Arena[T]) release(id int) {
	s := q.getSlot(id)
	s.free()
	s.next = q.free
	q.free = id
}

// Init empties the queue and drops every slot.
func (q *Arena[T]) Init() {
	clear(q.data)
	q.data = q.data[:0]
	q.head = 0
	q.tail = 0
	q.free = 0
	q.count = 0
}

func (q *Arena[T]) Size() int {
	return q.count
}

func (q *Arena[T]) Empty() bool {
	return q.head == 0
}

// Push puts the given value at the tail of the queue.
func (q *Arena[T]) Push(val T) {
	id := q.alloc(val)
	if q.tail == 0 {
		if q.head != 0 {
			panic(ErrCorrupt)
		}
		q.head = id
	} else {
		q.getSlot(q.tail).next = id
	}
	q.tail = id
	q.count++
}

// Pop removes and returns the value at the head of the queue.
func (q *Arena[T]) Pop() (val T, ok bool) {
	id := q.head
	if id == 0 {
		if q.tail != 0 {
			panic(ErrCorrupt)
		}
		return
	}
	s := q.getSlot(id)
	val = s.p
	q.head = s.next
	if q.head == 0 {
		q.tail = 0
	}
	q.release(id)
	q.count--
	return val, true
}

func (q *Arena[T]) Peek() (val T, ok bool) {
	if q.head == 0 {
		return
	}
	return q.getSlot(q.head).p, true
}

// PeekMut returns a pointer to the value at the head of the queue.
// The pointer is invalidated by the next Push, which may grow the arena.
func (q *Arena[T]) PeekMut() (*T, bool) {
	if q.head == 0 {
		return nil, false
	}
	return &q.getSlot(q.head).p, true
}

func (q *Arena[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := q.head; id != 0; {
			s := q.getSlot(id)
			if !yield(s.p) {
				return
			}
			id = s.next
		}
	}
}

// AllMut yields pointers into the arena. They must not be kept past
// the next Push.
func (q *Arena[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for id := q.head; id != 0; {
			s := q.getSlot(id)
			if !yield(&s.p) {
				return
			}
			id = s.next
		}
	}
}

func (q *Arena[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := q.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
