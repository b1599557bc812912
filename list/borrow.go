package list

// Error is an aliasing violation reported by an Element.
type Error struct {
	string
}

func (e *Error) Error() string {
	return e.string
}

var (
	ErrBorrowed    = &Error{"already borrowed"}
	ErrMutBorrowed = &Error{"already mutably borrowed"}
	ErrReleased    = &Error{"view already released"}
	ErrDetached    = &Error{"element is no longer in a list"}
)

// BorrowError is the panic value of an operation that broke the borrow
// rules. Recover it and match the cause with errors.Is.
type BorrowError struct {
	Op  string
	Err error
}

func (e *BorrowError) Error() string {
	return "list: " + e.Op + ": " + e.Err.Error()
}

func (e *BorrowError) Unwrap() error {
	return e.Err
}

func fault(op string, err error) {
	panic(&BorrowError{Op: op, Err: err})
}

// Ref is a shared, read-only view of an element's value.
// Any number of Refs may be held at once; Release each exactly once.
type Ref[T any] struct {
	e *Element[T]
}

// Value returns the viewed value.
func (r *Ref[T]) Value() T {
	if r.e == nil {
		fault("value", ErrReleased)
	}
	return r.e.p
}

func (r *Ref[T]) Release() {
	if r.e == nil {
		fault("release", ErrReleased)
	}
	r.e.borrow--
	r.e = nil
}

// RefMut is the exclusive, mutable view of an element's value.
type RefMut[T any] struct {
	e *Element[T]
}

// Value returns a pointer to the viewed value, valid until Release.
func (r *RefMut[T]) Value() *T {
	if r.e == nil {
		fault("value", ErrReleased)
	}
	return &r.e.p
}

func (r *RefMut[T]) Release() {
	if r.e == nil {
		fault("release", ErrReleased)
	}
	r.e.borrow = 0
	r.e = nil
}

// TryBorrow returns a shared view of e's value, or ErrMutBorrowed
// while a mutable view is out.
func (e *Element[T]) TryBorrow() (*Ref[T], error) {
	if !e.linked {
		return nil, ErrDetached
	}
	if e.borrow < 0 {
		return nil, ErrMutBorrowed
	}
	e.borrow++
	return &Ref[T]{e: e}, nil
}

// TryBorrowMut returns the mutable view of e's value, or an error
// while any other view is out.
func (e *Element[T]) TryBorrowMut() (*RefMut[T], error) {
	if !e.linked {
		return nil, ErrDetached
	}
	switch {
	case e.borrow < 0:
		return nil, ErrMutBorrowed
	case e.borrow > 0:
		return nil, ErrBorrowed
	}
	e.borrow = -1
	return &RefMut[T]{e: e}, nil
}

// Borrow is TryBorrow that panics with a *BorrowError on conflict.
func (e *Element[T]) Borrow() *Ref[T] {
	r, err := e.TryBorrow()
	if err != nil {
		fault("borrow", err)
	}
	return r
}

// BorrowMut is TryBorrowMut that panics with a *BorrowError on conflict.
func (e *Element[T]) BorrowMut() *RefMut[T] {
	r, err := e.TryBorrowMut()
	if err != nil {
		fault("borrow mut", err)
	}
	return r
}

// checkRead guards reading e's links.
func (e *Element[T]) checkRead(op string) {
	if e.borrow < 0 {
		fault(op, ErrMutBorrowed)
	}
}

// checkWrite guards relinking or detaching e: no view may be out.
func (e *Element[T]) checkWrite(op string) {
	switch {
	case e.borrow < 0:
		fault(op, ErrMutBorrowed)
	case e.borrow > 0:
		fault(op, ErrBorrowed)
	}
}
