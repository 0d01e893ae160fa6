package easing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		want  string
	}{
		{"linear", Linear, "0|0,0,1,0"},
		{"ease in", Curve{P1: Point{0.42, 0}, P2: Point{1, 1}}, "0|0,0,1,0"},
		{"p1 past half", Curve{P1: Point{0.75, 0.1}, P2: Point{0.2, 0.3}}, "0|0,1,0,0"},
		{"exact half rounds to even", Curve{P1: Point{0.5, 0}, P2: Point{0, 0.5}}, "0|0,0,0,0"},
		{"out of range is clamped", Curve{P1: Point{7, -3}, P2: Point{-1, 42}}, "0|0,1,1,0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.curve.Encode())
		})
	}
}

func TestNewClamps(t *testing.T) {
	c := New(Point{X: -0.5, Y: 1.5}, Point{X: math.NaN(), Y: 0.25})
	assert.Equal(t, Curve{P1: Point{0, 1}, P2: Point{0, 0.25}}, c)
}

func TestParse(t *testing.T) {
	c, err := Parse("0.25, 0.1, 0.25 ,1")
	require.NoError(t, err)
	assert.Equal(t, Curve{P1: Point{0.25, 0.1}, P2: Point{0.25, 1}}, c)
	assert.Equal(t, "0.25,0.1,0.25,1", c.String())

	_, err = Parse("1,2,3")
	assert.Error(t, err)

	_, err = Parse("a,0,0,0")
	assert.Error(t, err)
}
