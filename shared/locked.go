package shared

import "sync"

// Locked is a List behind a single mutex, safe for use by many
// goroutines. Inserts are ordered by the order they take the lock.
//
// The zero value for Locked is an empty list ready to use.
type Locked[T any] struct {
	mu   sync.Mutex
	list List[T]
}

func (s *Locked[T]) Insert(val T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Insert(val)
}

func (s *Locked[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

// Tail returns an unsynchronized list sharing the nodes after the head.
func (s *Locked[T]) Tail() *List[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Tail()
}

func (s *Locked[T]) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Init()
}

// Do calls fn with the list while holding the lock. fn must not keep
// the list past its return.
func (s *Locked[T]) Do(fn func(l *List[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.list)
}
