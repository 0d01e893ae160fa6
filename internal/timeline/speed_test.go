package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeed(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		auto   bool
		base   float64
		policy SpeedPolicy
		want   float64
	}{
		{"auto off", 0.25, false, 1, SpeedSnapped, 100},
		{"equal length", 1, true, 1, SpeedSnapped, 100},
		{"longer item never slows down", 4, true, 1, SpeedSnapped, 100},
		{"ratio below 1.5 stays", 0.7, true, 1, SpeedSnapped, 100},
		{"ratio 1.6 snaps to 2", 0.625, true, 1, SpeedSnapped, 200},
		{"ratio 2", 0.5, true, 1, SpeedSnapped, 200},
		{"ratio 3 snaps to 4", 1.0 / 3, true, 1, SpeedSnapped, 400},
		{"ratio 5 snaps to 4", 0.2, true, 1, SpeedSnapped, 400},
		{"ratio 8", 0.125, true, 1, SpeedSnapped, 800},
		{"base scales", 1, true, 2, SpeedSnapped, 200},
		{"raw policy", 0.8, true, 1, SpeedRaw, 125},
		{"raw policy slows down", 2, true, 1, SpeedRaw, 50},
		{"zero length", 0, true, 1, SpeedSnapped, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Speed(tt.length, tt.auto, tt.base, tt.policy), 1e-9)
		})
	}
}

func TestSpeed_Formatting(t *testing.T) {
	assert.Equal(t, "100.00", fmt.Sprintf("%.2f", Speed(1, false, 1, SpeedSnapped)))
	assert.Equal(t, "133.33", fmt.Sprintf("%.2f", Speed(0.75, true, 1, SpeedRaw)))
}

func TestParseSpeedPolicy(t *testing.T) {
	p, err := ParseSpeedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SpeedSnapped, p)

	p, err = ParseSpeedPolicy("raw")
	require.NoError(t, err)
	assert.Equal(t, SpeedRaw, p)

	_, err = ParseSpeedPolicy("fast")
	assert.Error(t, err)
}
