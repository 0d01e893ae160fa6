package timeline

import (
	"testing"

	"github.com/ivlev/rpp2object/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_DurationInvariant(t *testing.T) {
	items := []project.Item{
		{Track: 1, Position: 0, Length: 1},
		{Track: 1, Position: 1.013, Length: 0.517},
		{Track: 2, Position: 3.3, Length: 2.25},
		{Track: 2, Position: 10, Length: 0.01},
	}

	for _, fps := range []float64{24, 29.97, 30, 60} {
		for _, closeGaps := range []bool{false, true} {
			for _, slot := range Schedule(items, fps, closeGaps) {
				assert.Equal(t, Round(slot.Item.Length*fps), slot.Frames(),
					"fps=%v closeGaps=%v item=%+v", fps, closeGaps, slot.Item)
			}
		}
	}
}

func TestSchedule_Example(t *testing.T) {
	items := []project.Item{
		{Track: 2, Position: 2, Length: 1},
		{Track: 1, Position: 0, Length: 1},
	}

	slots := Schedule(items, 60, false)
	require.Len(t, slots, 2)

	assert.Equal(t, 1, slots[0].Item.Track)
	assert.Equal(t, [2]int{0, 59}, [2]int{slots[0].FrameStart, slots[0].FrameEnd})
	assert.Equal(t, 2, slots[1].Item.Track)
	assert.Equal(t, [2]int{120, 179}, [2]int{slots[1].FrameStart, slots[1].FrameEnd})
}

func TestSchedule_GapClosingBoundary(t *testing.T) {
	// first item ends at frame 59, so the next one would start at 60
	tests := []struct {
		name      string
		gapFrames int
		wantStart int
	}{
		{"touching", 0, 60},
		{"gap of 4 snaps", 4, 60},
		{"gap of 5 stays", 5, 65},
		{"overlap of 4 snaps", -4, 60},
		{"overlap of 5 stays", -5, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []project.Item{
				{Track: 1, Position: 0, Length: 1},
				{Track: 1, Position: float64(60+tt.gapFrames) / 60, Length: 1},
			}
			slots := Schedule(items, 60, true)
			require.Len(t, slots, 2)
			assert.Equal(t, tt.wantStart, slots[1].FrameStart)
			assert.Equal(t, 60, slots[1].Frames())
		})
	}
}

func TestSchedule_GapClosingDisabled(t *testing.T) {
	items := []project.Item{
		{Track: 1, Position: 0, Length: 1},
		{Track: 1, Position: 62.0 / 60, Length: 1},
	}
	slots := Schedule(items, 60, false)
	assert.Equal(t, 62, slots[1].FrameStart)
}

func TestSchedule_GapClosingIsPerTrack(t *testing.T) {
	items := []project.Item{
		{Track: 1, Position: 0, Length: 1},
		// first item on track 2 has no predecessor even though it is close to track 1's end
		{Track: 2, Position: 62.0 / 60, Length: 1},
		{Track: 2, Position: 125.0 / 60, Length: 1},
	}
	slots := Schedule(items, 60, true)
	require.Len(t, slots, 3)
	assert.Equal(t, 62, slots[1].FrameStart)
	assert.Equal(t, 122, slots[2].FrameStart)
}

func TestSchedule_Occurrence(t *testing.T) {
	items := []project.Item{
		{Track: 2, Position: 5, Length: 1},
		{Track: 1, Position: 3, Length: 1},
		{Track: 2, Position: 1, Length: 1},
		{Track: 1, Position: 3, Length: 2}, // same position, keeps file order
		{Track: 2, Position: 9, Length: 1},
	}

	slots := Schedule(items, 30, false)
	require.Len(t, slots, 5)

	got := make([][3]float64, len(slots))
	for i, s := range slots {
		got[i] = [3]float64{float64(s.Item.Track), s.Item.Length, float64(s.Occurrence)}
	}
	assert.Equal(t, [][3]float64{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 1},
		{2, 1, 2},
		{2, 1, 3},
	}, got)
	assert.Equal(t, 1.0, slots[2].Item.Position)
	assert.Equal(t, 9.0, slots[4].Item.Position)
}

func TestSortItems_DoesNotMutateInput(t *testing.T) {
	items := []project.Item{{Track: 2}, {Track: 1}}
	_ = SortItems(items)
	assert.Equal(t, 2, items[0].Track)
}
