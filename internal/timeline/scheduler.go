package timeline

import (
	"math"
	"sort"

	"github.com/ivlev/rpp2object/internal/project"
)

// SnapTolerance is the exclusive bound, in frames, of drift that gap closing
// corrects. Larger gaps and overlaps are left alone.
const SnapTolerance = 5

// Slot is an item placed on the frame grid.
type Slot struct {
	Item       project.Item
	FrameStart int
	FrameEnd   int
	// Occurrence is the 1-based position of the item within its track.
	Occurrence int
}

// Frames returns the inclusive frame count of the slot.
func (s Slot) Frames() int {
	return s.FrameEnd - s.FrameStart + 1
}

// SortItems orders items by track, then position. Equal keys keep their
// original order.
func SortItems(items []project.Item) []project.Item {
	sorted := make([]project.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Track != sorted[j].Track {
			return sorted[i].Track < sorted[j].Track
		}
		return sorted[i].Position < sorted[j].Position
	})

	return sorted
}

// Scheduler assigns frames to items. It keeps per-track state, so one
// Scheduler serves exactly one compile run.
type Scheduler struct {
	FPS       float64
	CloseGaps bool

	lastEnd map[int]int
	count   map[int]int
}

func NewScheduler(fps float64, closeGaps bool) *Scheduler {
	return &Scheduler{
		FPS:       fps,
		CloseGaps: closeGaps,
		lastEnd:   make(map[int]int),
		count:     make(map[int]int),
	}
}

// Place schedules the next item. Items must arrive in SortItems order.
func (s *Scheduler) Place(item project.Item) Slot {
	start := Round(item.Position * s.FPS)

	if prev, ok := s.lastEnd[item.Track]; ok && s.CloseGaps {
		if abs(start-(prev+1)) < SnapTolerance {
			start = prev + 1
		}
	}

	end := start + Round(item.Length*s.FPS) - 1
	s.lastEnd[item.Track] = end
	s.count[item.Track]++

	return Slot{
		Item:       item,
		FrameStart: start,
		FrameEnd:   end,
		Occurrence: s.count[item.Track],
	}
}

// Schedule sorts items and places all of them.
func Schedule(items []project.Item, fps float64, closeGaps bool) []Slot {
	s := NewScheduler(fps, closeGaps)
	sorted := SortItems(items)

	slots := make([]Slot, 0, len(sorted))
	for _, it := range sorted {
		slots = append(slots, s.Place(it))
	}
	return slots
}

// Round converts seconds*fps to a frame number. Halves round to even.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
