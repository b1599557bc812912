// Package shared provides a singly-linked list whose suffixes can be
// shared between list values and read from several goroutines.
package shared

/*
List:
	head *node	one owned reference, nil when empty
	node	{mu sync.Mutex; refs atomic.Int32; p T; next *node}

refs counts owners: every List whose head is the node, plus the node
before it. Insert moves the list's reference into the new node, so no
count changes. Tail takes a new reference on head.next under head's lock.

Locking:
	one node lock at a time, never two. Head holds the head lock until
	the Guard is unlocked; Len and Values lock, read next, unlock.

Release (Init):
	refs-- on the head; at zero the node is cleared under its lock and
	the walk moves on to next, otherwise it stops there because the
	rest of the chain has another owner.

A List value is not synchronized. Wrap it in Locked, a single mutex
over the whole list, when several goroutines insert into it.
*/
