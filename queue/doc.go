// Package queue provides single-goroutine FIFO queues built from owned
// links plus a cursor on the last node.
package queue

import "errors"

// ErrCorrupt reports a tail cursor that disagrees with the owned chain.
var ErrCorrupt = errors.New("queue: tail cursor out of sync with head")

/*
Queue:
	head *node		owns the chain, first value to pop
	tail unsafe.Pointer	non-owning cursor, last node, never exposed

Push:
	tail == nil	=> head = slot
	tail != nil	=> (*node)(tail).next = slot
	then tail = slot.

Pop:
	head = head.next, and when head becomes nil tail = nil in the
	same call. A tail left pointing at a popped node would make the
	next Push link into a node no longer reachable from head.

Empty and full:
	name		empty			full
	Queue		head == nil		none
	Arena		head == 0		none

Arena keeps the same shape with 1-based slot indices in place of
pointers; index 0 is nil. Popped slots go on a free list and are
reused by Push, so the arena grows only to the largest queue length.

Iteration (All, AllMut) walks head→next only, never through tail.
*/
