package stack_test

import (
	"iter"
	"slices"
)

// Interface is the surface shared by the stacks under test.
type Interface interface {
	Init()
	Size() int
	Empty() bool
	Push(string)
	Pop() (string, bool)
	Peek() (string, bool)
	PeekMut() (*string, bool)
	All() iter.Seq[string]
	Drain() iter.Seq[string]
	Reverse()
}

// SliceStack is a slice-backed stack used as a model.
type SliceStack struct {
	data []string
}

func (s *SliceStack) Init() {
	s.data = nil
}

func (s *SliceStack) Size() int {
	return len(s.data)
}

func (s *SliceStack) Empty() bool {
	return len(s.data) == 0
}

func (s *SliceStack) Push(val string) {
	s.data = append(s.data, val)
}

func (s *SliceStack) Pop() (val string, ok bool) {
	if len(s.data) == 0 {
		return
	}
	val = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return val, true
}

func (s *SliceStack) Peek() (val string, ok bool) {
	if len(s.data) == 0 {
		return
	}
	return s.data[len(s.data)-1], true
}

func (s *SliceStack) PeekMut() (*string, bool) {
	if len(s.data) == 0 {
		return nil, false
	}
	return &s.data[len(s.data)-1], true
}

func (s *SliceStack) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range slices.Backward(s.data) {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *SliceStack) Drain() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			val, ok := s.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

func (s *SliceStack) Reverse() {
	slices.Reverse(s.data)
}
