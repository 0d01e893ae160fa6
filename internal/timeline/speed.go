package timeline

import (
	"fmt"
	"math"
)

// SpeedPolicy decides how auto-speed turns a length ratio into a playback
// speed.
type SpeedPolicy string

const (
	// SpeedSnapped keeps 100% up to 150% and otherwise snaps to the nearest
	// power of two multiple of 100%.
	SpeedSnapped SpeedPolicy = "snapped"
	// SpeedRaw uses the ratio as is.
	SpeedRaw SpeedPolicy = "raw"
)

// ParseSpeedPolicy accepts "" as the default policy.
func ParseSpeedPolicy(s string) (SpeedPolicy, error) {
	switch SpeedPolicy(s) {
	case "", SpeedSnapped:
		return SpeedSnapped, nil
	case SpeedRaw:
		return SpeedRaw, nil
	default:
		return "", fmt.Errorf("unknown speed policy: %s", s)
	}
}

// Speed returns the playback speed in percent for an item of the given
// length. base is the length, in seconds, that plays at 100%.
func Speed(length float64, autoSpeed bool, base float64, policy SpeedPolicy) float64 {
	if !autoSpeed || length <= 0 || base <= 0 {
		return 100.0
	}

	raw := base / length * 100.0
	if policy == SpeedRaw {
		return raw
	}

	if raw <= 150 {
		return 100.0
	}
	exp := math.Max(0, math.RoundToEven(math.Log2(raw/100.0)))
	return 100.0 * math.Pow(2, exp)
}
