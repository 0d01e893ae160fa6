package project

import "sort"

// Selector holds the checked state of an "all tracks" root and its child
// tracks. Checking or unchecking the root pushes the same state down to every
// child; toggling a child never touches the root.
type Selector struct {
	checked map[int]bool
}

// NewSelector creates a selector over the given tracks with nothing checked.
func NewSelector(tracks []Track) *Selector {
	s := &Selector{checked: make(map[int]bool, len(tracks))}
	for _, t := range tracks {
		s.checked[t.Index] = false
	}
	return s
}

// SetAll sets the root state and cascades it to all children.
func (s *Selector) SetAll(checked bool) {
	for idx := range s.checked {
		s.checked[idx] = checked
	}
}

// Set changes a single child. Unknown indices are ignored.
func (s *Selector) Set(index int, checked bool) {
	if _, ok := s.checked[index]; ok {
		s.checked[index] = checked
	}
}

// Active returns the checked track indices in ascending order.
func (s *Selector) Active() []int {
	active := make([]int, 0, len(s.checked))
	for idx, on := range s.checked {
		if on {
			active = append(active, idx)
		}
	}
	sort.Ints(active)
	return active
}

// SelectTracks is a shorthand for the two ways a selection is usually made:
// nil means every track, anything else is the explicit subset.
func SelectTracks(tracks []Track, subset []int) []int {
	s := NewSelector(tracks)
	if subset == nil {
		s.SetAll(true)
		return s.Active()
	}
	for _, idx := range subset {
		s.Set(idx, true)
	}
	return s.Active()
}
