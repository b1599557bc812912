// Package list provides a doubly-linked deque whose elements are
// shared handles with checked, interior-mutable values.
package list

/*
List:
	head, tail *Element	nil, nil when empty; the same element when len == 1
	Element	{p T; next, prev *Element; borrow int}

Ownership:
	next owns the element on the right, prev only observes the element
	on the left. The chain is released by popping from the front in a
	loop, which nulls both links of each element as it goes.

Borrow rules, per element:
	borrow == 0	free
	borrow  > 0	that many Refs out, Borrow allowed, BorrowMut fails
	borrow == -1	one RefMut out, everything else fails

	reading links (Next, Prev, iteration)	no RefMut out
	relinking or detaching (Push*, Pop*)	no view out at all

A broken rule panics with a *BorrowError before the list is touched,
so recovering from it leaves the list as it was. TryBorrow and
TryBorrowMut report the same causes as plain errors.

Popped elements are detached: Next and Prev return nil, Borrow fails
with ErrDetached.
*/
