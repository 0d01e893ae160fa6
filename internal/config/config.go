package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/ivlev/rpp2object/internal/easing"
	"github.com/ivlev/rpp2object/internal/timeline"
)

const (
	DefaultFPS             = 60.0
	DefaultBaseLength      = 1.0
	DefaultScene           = "1"
	DefaultTimeControlStep = "1"
)

// Flags are the on/off options of a compile.
type Flags struct {
	FlipH       bool `json:"flipH" yaml:"flip_h"`
	FlipV       bool `json:"flipV" yaml:"flip_v"`
	Loop        bool `json:"loop" yaml:"loop"`
	NoGap       bool `json:"noGap" yaml:"no_gap"`
	AsScene     bool `json:"asScene" yaml:"as_scene"`
	AutoSpeed   bool `json:"autoSpeed" yaml:"auto_speed"`
	TimeControl bool `json:"timeControl" yaml:"time_control"`
	ApplyEasing bool `json:"applyEasing" yaml:"apply_easing"`
	Redzone     bool `json:"redzone" yaml:"redzone"`
}

// BindingKind selects which fields of a ParamBinding are meaningful.
type BindingKind string

const (
	BindingBoolean BindingKind = "boolean"
	BindingMotion  BindingKind = "motion"
)

// ParamBinding is the value the user picked for one effect parameter.
// Bindings are positional: the n-th binding belongs to the n-th parameter of
// the registered effect.
type ParamBinding struct {
	Kind    BindingKind `json:"kind"`
	Checked bool        `json:"checked,omitempty"`
	Start   string      `json:"start,omitempty"`
	End     string      `json:"end,omitempty"`
	Method  string      `json:"method,omitempty"`
}

// Bool builds a boolean binding.
func Bool(checked bool) ParamBinding {
	return ParamBinding{Kind: BindingBoolean, Checked: checked}
}

// Motion builds a motion binding.
func Motion(start, end, method string) ParamBinding {
	return ParamBinding{Kind: BindingMotion, Start: start, End: end, Method: method}
}

// EffectSpec is one extra effect attached to every emitted object.
type EffectSpec struct {
	Name   string         `json:"name"`
	Params []ParamBinding `json:"params"`
}

// CompileConfig is everything a compile needs besides the project text.
type CompileConfig struct {
	FPS             float64              `json:"fps"`
	SceneNumber     string               `json:"sceneNumber"`
	SourcePath      string               `json:"sourcePath"`
	Flags           Flags                `json:"flags"`
	BaseLength      float64              `json:"baseLength"`
	SpeedPolicy     timeline.SpeedPolicy `json:"speedPolicy"`
	TimeControlStep string               `json:"timeControlStep"`
	// ActiveTracks is the resolved selection. Empty compiles nothing.
	ActiveTracks []int        `json:"activeTracks"`
	Effects      []EffectSpec `json:"effects"`
	Easing       easing.Curve `json:"easing"`
}

// Default returns a config with the editor's initial values and no tracks.
func Default() CompileConfig {
	return CompileConfig{
		FPS:             DefaultFPS,
		SceneNumber:     DefaultScene,
		BaseLength:      DefaultBaseLength,
		SpeedPolicy:     timeline.SpeedSnapped,
		TimeControlStep: DefaultTimeControlStep,
		Easing:          easing.Linear,
	}
}

// Normalized replaces values that cannot drive a compile with defaults.
func (c CompileConfig) Normalized() CompileConfig {
	if !positive(c.FPS) {
		c.FPS = DefaultFPS
	}
	if !positive(c.BaseLength) {
		c.BaseLength = DefaultBaseLength
	}
	if c.SpeedPolicy == "" {
		c.SpeedPolicy = timeline.SpeedSnapped
	}
	c.Easing = c.Easing.Clamped()
	return c
}

// IsActive reports whether track is part of the selection.
func (c CompileConfig) IsActive(track int) bool {
	for _, t := range c.ActiveTracks {
		if t == track {
			return true
		}
	}
	return false
}

// ParseFPS reads a frame rate as typed by the user. Anything unparsable or
// not positive silently becomes DefaultFPS.
func ParseFPS(s string) float64 {
	return parsePositive(s, DefaultFPS)
}

// ParseBaseLength reads the auto-speed base length in seconds, falling back
// to DefaultBaseLength.
func ParseBaseLength(s string) float64 {
	return parsePositive(s, DefaultBaseLength)
}

func parsePositive(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !positive(v) {
		return def
	}
	return v
}

// positive reports whether v is a finite number above zero.
func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
