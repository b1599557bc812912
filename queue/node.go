package queue

// node is a link of the owned chain. next owns its successor.
type node[T any] struct {
	p    T
	next *node[T]
}

func newNode[T any](val T) *node[T] {
	return &node[T]{p: val}
}

func (n *node[T]) load() T {
	return n.p
}

// free drops the value and the forward link, so a released
// chain is unlinked one node at a time.
func (n *node[T]) free() {
	var zero T
	n.p = zero
	n.next = nil
}

// slot is an Arena entry. next is a 1-based index into Arena.data,
// 0 means no successor.
type slot[T any] struct {
	p    T
	next int
}

func (s *slot[T]) store(val T) {
	s.p = val
	s.next = 0
}

func (s *slot[T]) free() {
	var zero T
	s.p = zero
	s.next = 0
}
