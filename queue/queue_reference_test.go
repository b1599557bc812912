package queue_test

import (
	"iter"
	"slices"
)

// Interface is the surface shared by every queue under test.
type Interface interface {
	Init()
	Size() int
	Empty() bool
	Push(string)
	Pop() (string, bool)
	Peek() (string, bool)
	PeekMut() (*string, bool)
	All() iter.Seq[string]
	AllMut() iter.Seq[*string]
	Drain() iter.Seq[string]
}

// SliceQueue is a slice-backed queue used as the model the linked
// queues are checked against.
type SliceQueue struct {
	data []string
}

func (q *SliceQueue) Init() {
	q.data = nil
}

func (q *SliceQueue) Size() int {
	return len(q.data)
}

func (q *SliceQueue) Empty() bool {
	return len(q.data) == 0
}

func (q *SliceQueue) Push(val string) {
	q.data = append(q.data, val)
}

func (q *SliceQueue) Pop() (val string, ok bool) {
	if len(q.data) == 0 {
		return
	}
	val = q.data[0]
	q.data = q.data[1:]
	return val, true
}

func (q *SliceQueue) Peek() (val string, ok bool) {
	if len(q.data) == 0 {
		return
	}
	return q.data[0], true
}

func (q *SliceQueue) PeekMut() (*string, bool) {
	if len(q.data) == 0 {
		return nil, false
	}
	return &q.data[0], true
}

func (q *SliceQueue) All() iter.Seq[string] {
	return slices.Values(q.data)
}

func (q *SliceQueue) AllMut() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		for i := range q.data {
			if !yield(&q.data[i]) {
				return
			}
		}
	}
}

func (q *SliceQueue) Drain() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			val, ok := q.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
