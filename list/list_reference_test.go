package list_test

import "slices"

// SliceDeque is a slice-backed deque used as a model for List.
type SliceDeque struct {
	data []string
}

func (d *SliceDeque) PushFront(val string) {
	d.data = slices.Insert(d.data, 0, val)
}

func (d *SliceDeque) PushBack(val string) {
	d.data = append(d.data, val)
}

func (d *SliceDeque) PopFront() (val string, ok bool) {
	if len(d.data) == 0 {
		return
	}
	val = d.data[0]
	d.data = d.data[1:]
	return val, true
}

func (d *SliceDeque) PopBack() (val string, ok bool) {
	if len(d.data) == 0 {
		return
	}
	val = d.data[len(d.data)-1]
	d.data = d.data[:len(d.data)-1]
	return val, true
}

func (d *SliceDeque) Len() int {
	return len(d.data)
}

func (d *SliceDeque) Values() []string {
	return slices.Clone(d.data)
}
