package list

import "iter"

// Element is a node of a List. Handles to it are shared by the list,
// its neighbours and any caller holding one; the value is reached
// through Borrow and BorrowMut.
type Element[T any] struct {
	p          T
	prev, next *Element[T] // next owns, prev observes.
	borrow     int         // >0 shared views, -1 one mutable view.
	linked     bool
}

// Value returns a copy of the element's value.
func (e *Element[T]) Value() T {
	r := e.Borrow()
	defer r.Release()
	return r.Value()
}

// Next returns the item on the right, or nil.
func (e *Element[T]) Next() *Element[T] {
	e.checkRead("next")
	return e.next
}

// Prev returns the item on the left, or nil.
func (e *Element[T]) Prev() *Element[T] {
	e.checkRead("prev")
	return e.prev
}

// List is a doubly-linked deque.
//
// The zero value for List is an empty list ready to use.
// A List must not be used from more than one goroutine at a time.
type List[T any] struct {
	head, tail *Element[T]
	len        int
}

// New returns an initialized list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Init empties l by popping from the front until nothing is left.
// It panics like PopFront if an element still has a view out.
func (l *List[T]) Init() *List[T] {
	for {
		if _, ok := l.PopFront(); !ok {
			return l
		}
	}
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Front returns the head item of the list, or nil.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Back returns the tail item of the list, or nil.
func (l *List[T]) Back() *Element[T] {
	return l.tail
}

func (l *List[T]) PushFront(val T) {
	e := &Element[T]{p: val, linked: true}
	if old := l.head; old != nil {
		old.checkWrite("push front")
		old.prev = e
		e.next = old
		l.head = e
	} else {
		l.head, l.tail = e, e
	}
	l.len++
}

func (l *List[T]) PushBack(val T) {
	e := &Element[T]{p: val, linked: true}
	if old := l.tail; old != nil {
		old.checkWrite("push back")
		old.next = e
		e.prev = old
		l.tail = e
	} else {
		l.head, l.tail = e, e
	}
	l.len++
}

// PopFront removes and returns the value at the front.
// It panics with a *BorrowError if the front element, or the element
// that becomes the new front, has a view out.
func (l *List[T]) PopFront() (T, bool) {
	return l.pop(l.head, "pop front")
}

// PopBack removes and returns the value at the back.
func (l *List[T]) PopBack() (T, bool) {
	return l.pop(l.tail, "pop back")
}

func (l *List[T]) pop(e *Element[T], op string) (val T, ok bool) {
	if e == nil {
		return
	}
	prev, next := e.prev, e.next
	// all checks run before the first write so a fault leaves l intact.
	e.checkWrite(op)
	if prev != nil {
		prev.checkWrite(op)
	}
	if next != nil {
		next.checkWrite(op)
	}

	if prev != nil {
		prev.next = next
	} else {
		l.head = next
	}
	if next != nil {
		next.prev = prev
	} else {
		l.tail = prev
	}
	l.len--

	val = e.p
	var zero T
	e.p = zero
	e.prev, e.next = nil, nil
	e.linked = false
	return val, true
}

// PeekFront returns a shared view of the front value.
func (l *List[T]) PeekFront() (*Ref[T], bool) {
	if l.head == nil {
		return nil, false
	}
	return l.head.Borrow(), true
}

// PeekBack returns a shared view of the back value.
func (l *List[T]) PeekBack() (*Ref[T], bool) {
	if l.tail == nil {
		return nil, false
	}
	return l.tail.Borrow(), true
}

// All returns an iterator over the elements from front to back.
// The successor is read before an element is yielded, so popping the
// yielded element does not end the walk early.
func (l *List[T]) All() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		for e := l.head; e != nil; {
			next := e.Next()
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		for e := l.tail; e != nil; {
			prev := e.Prev()
			if !yield(e) {
				return
			}
			e = prev
		}
	}
}

// IntoIter moves every element of l into a consuming iterator and
// leaves l empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: List[T]{head: l.head, tail: l.tail, len: l.len}}
	l.head, l.tail, l.len = nil, nil, 0
	return it
}

// IntoIter yields owned values from either end of a list it took over.
// Driving it from both ends meets in the middle.
type IntoIter[T any] struct {
	list List[T]
}

// Next pops the front value.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// NextBack pops the back value.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.list.PopBack()
}

// Len reports how many values are left.
func (it *IntoIter[T]) Len() int {
	return it.list.len
}

// All adapts Next to a range loop.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Backward adapts NextBack to a range loop.
func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := it.NextBack()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
