package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var threeTracks = []Track{{Index: 1, Name: "a"}, {Index: 2, Name: "b"}, {Index: 3, Name: "c"}}

func TestSelector_Cascade(t *testing.T) {
	s := NewSelector(threeTracks)
	assert.Empty(t, s.Active())

	s.SetAll(true)
	assert.Equal(t, []int{1, 2, 3}, s.Active())

	// child changes never propagate up
	s.Set(2, false)
	assert.Equal(t, []int{1, 3}, s.Active())

	s.SetAll(false)
	assert.Empty(t, s.Active())

	s.Set(3, true)
	assert.Equal(t, []int{3}, s.Active())
}

func TestSelector_UnknownTrackIgnored(t *testing.T) {
	s := NewSelector(threeTracks)
	s.Set(7, true)
	assert.Empty(t, s.Active())
}

func TestSelectTracks(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, SelectTracks(threeTracks, nil))
	assert.Equal(t, []int{1, 3}, SelectTracks(threeTracks, []int{3, 1, 9}))
	assert.Empty(t, SelectTracks(threeTracks, []int{}))
	assert.Empty(t, SelectTracks(nil, nil))
}
