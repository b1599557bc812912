package shared

import (
	"errors"
	"iter"
	"sync"
	"sync/atomic"
)

// ErrUnlocked is the panic value of a Guard used after Unlock.
var ErrUnlocked = errors.New("shared: guard already unlocked")

type node[T any] struct {
	mu   sync.Mutex
	refs atomic.Int32 // owners: list headers plus the predecessor node.
	p    T
	next *node[T] // owns one of next.refs.
}

func newNode[T any](val T, next *node[T]) *node[T] {
	n := &node[T]{p: val, next: next}
	n.refs.Store(1)
	return n
}

// List is a head-insert singly-linked list whose nodes may be shared
// with other lists derived through Tail.
//
// The zero value for List is an empty list ready to use. A List value
// is not synchronized; see Locked. The per-node locks guard values that
// are reachable from more than one List.
type List[T any] struct {
	head *node[T]
}

// New returns an empty List.
func New[T any]() *List[T] {
	return new(List[T])
}

// Insert puts val at the head of the list.
func (l *List[T]) Insert(val T) {
	// the new node takes over l's reference to the old head.
	l.head = newNode(val, l.head)
}

// Head locks the head node and returns a guard over its value.
// ok is false if the list is empty. Unlock the guard before any other
// call that locks the same node, including Init.
func (l *List[T]) Head() (g *Guard[T], ok bool) {
	n := l.head
	if n == nil {
		return nil, false
	}
	n.mu.Lock()
	return &Guard[T]{n: n}, true
}

// Tail returns a list sharing every node after the head.
func (l *List[T]) Tail() *List[T] {
	n := l.head
	if n == nil {
		return New[T]()
	}
	n.mu.Lock()
	next := n.next
	if next != nil {
		next.refs.Add(1)
	}
	n.mu.Unlock()
	return &List[T]{head: next}
}

// Len walks the list, holding one node lock at a time.
func (l *List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; count++ {
		n.mu.Lock()
		next := n.next
		n.mu.Unlock()
		n = next
	}
	return count
}

// Values returns an iterator over copies of the values from head to
// tail. Each value is copied under its node's lock and yielded after
// the lock is released.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; {
			n.mu.Lock()
			val, next := n.p, n.next
			n.mu.Unlock()
			if !yield(val) {
				return
			}
			n = next
		}
	}
}

// Init drops l's reference to its nodes and empties it. Nodes whose
// last owner was l are released in a loop; the walk stops at the first
// node another list still owns.
func (l *List[T]) Init() {
	n := l.head
	l.head = nil
	for n != nil {
		if n.refs.Add(-1) != 0 {
			return
		}
		n.mu.Lock()
		next := n.next
		var zero T
		n.p = zero
		n.next = nil
		n.mu.Unlock()
		n = next
	}
}

// Guard is exclusive access to one node's value.
type Guard[T any] struct {
	n *node[T]
}

// Value returns a pointer to the guarded value, valid until Unlock.
func (g *Guard[T]) Value() *T {
	if g.n == nil {
		panic(ErrUnlocked)
	}
	return &g.n.p
}

// Unlock releases the node lock.
func (g *Guard[T]) Unlock() {
	if g.n == nil {
		panic(ErrUnlocked)
	}
	n := g.n
	g.n = nil
	n.mu.Unlock()
}
