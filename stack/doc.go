// Package stack provides a singly-linked FILO stack with unique
// ownership of every node.
package stack

/*
Stack:
	top	*node	owns the chain, nil when empty
	node	{p T; next *node}, next owns the node below

slot: the node a value is stored in or taken from.
push: slot.next = top, top = slot.
pop: top = slot.next, then slot is freed.

Views:
	Peek	copy of the top value
	PeekMut	pointer to the top value, valid until it is popped
	All	top to bottom, a fresh walk per call
	Drain	repeated Pop

Init releases the chain in a loop rather than by nesting, so a long
stack never costs stack depth proportional to its length.
*/
