package stack

import "iter"

// Stack is a FILO stack of uniquely owned links: every node is held by
// exactly one link, the stack's top or the node above it.
//
// The zero value for Stack is an empty stack ready to use.
// A Stack must not be used from more than one goroutine at a time.
type Stack[T any] struct {
	top   *node[T]
	count int
}

type node[T any] struct {
	p    T
	next *node[T]
}

func newNode[T any](val T) *node[T] {
	return &node[T]{p: val}
}

func (n *node[T]) free() {
	var zero T
	n.p = zero
	n.next = nil
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return new(Stack[T])
}

// Init empties the stack, unlinking the old chain node by node.
func (s *Stack[T]) Init() {
	top := s.top
	s.top = nil
	s.count = 0
	for top != nil {
		freeNode := top
		top = freeNode.next
		freeNode.free()
	}
}

// Size stack element's number
func (s *Stack[T]) Size() int {
	return s.count
}

func (s *Stack[T]) Empty() bool {
	return s.top == nil
}

// Push puts the given value at the top of the stack.
func (s *Stack[T]) Push(val T) {
	slot := newNode(val)
	slot.next = s.top
	s.top = slot
	s.count++
}

// Pop removes and returns the value at the top of the stack.
// ok is false if the stack is empty.
func (s *Stack[T]) Pop() (val T, ok bool) {
	slot := s.top
	if slot == nil {
		return
	}
	s.top = slot.next
	s.count--
	val = slot.p
	slot.free()
	return val, true
}

// Peek returns the value at the top of the stack without removing it.
func (s *Stack[T]) Peek() (val T, ok bool) {
	if s.top == nil {
		return
	}
	return s.top.p, true
}

// PeekMut returns a pointer to the value at the top of the stack.
// The pointer must not be used after that value is popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.top == nil {
		return nil, false
	}
	return &s.top.p, true
}

// All returns an iterator over the values from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.p) {
				return
			}
		}
	}
}

// Drain returns an iterator that pops values until the stack is empty.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := s.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Reverse reverses the stack in place by relinking its nodes.
func (s *Stack[T]) Reverse() {
	var prev *node[T]
	cur := s.top
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	s.top = prev
}
