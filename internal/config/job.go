package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/rpp2object/internal/easing"
	"github.com/ivlev/rpp2object/internal/timeline"
)

// JobFile is a list of independent compiles.
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one compile described in a job file. Numbers are strings so that
// they go through the same lenient parsing as values typed into the editor.
type Job struct {
	Project string `yaml:"project"`
	Output  string `yaml:"output"`
	Source  string `yaml:"source,omitempty"`

	FPS             string `yaml:"fps,omitempty"`
	Scene           string `yaml:"scene,omitempty"`
	BaseLength      string `yaml:"base_length,omitempty"`
	SpeedPolicy     string `yaml:"speed_policy,omitempty"`
	TimeControlStep string `yaml:"time_control_step,omitempty"`

	// Tracks left out selects every track; an empty list selects none.
	// WriteJobs cannot tell the two apart and omits both.
	Tracks []int `yaml:"tracks,omitempty"`

	Flags Flags `yaml:"flags"`
	// Easing holds the control points as "x1,y1,x2,y2".
	Easing  string      `yaml:"easing,omitempty"`
	Effects []JobEffect `yaml:"effects,omitempty"`
}

// JobEffect is the YAML form of an EffectSpec.
type JobEffect struct {
	Name   string     `yaml:"name"`
	Params []JobParam `yaml:"params"`
}

// JobParam is the YAML form of a ParamBinding. A param with "checked" set is
// a boolean binding, anything else is a motion binding.
type JobParam struct {
	Checked *bool  `yaml:"checked,omitempty"`
	Start   string `yaml:"start,omitempty"`
	End     string `yaml:"end,omitempty"`
	Method  string `yaml:"method,omitempty"`
}

// CompileConfig layers the job's values over base.
func (j Job) CompileConfig(base CompileConfig) (CompileConfig, error) {
	cfg := base

	if j.Source != "" {
		cfg.SourcePath = j.Source
	}
	if j.FPS != "" {
		cfg.FPS = ParseFPS(j.FPS)
	}
	if j.Scene != "" {
		cfg.SceneNumber = j.Scene
	}
	if j.BaseLength != "" {
		cfg.BaseLength = ParseBaseLength(j.BaseLength)
	}
	if j.SpeedPolicy != "" {
		p, err := timeline.ParseSpeedPolicy(j.SpeedPolicy)
		if err != nil {
			return CompileConfig{}, err
		}
		cfg.SpeedPolicy = p
	}
	if j.TimeControlStep != "" {
		cfg.TimeControlStep = j.TimeControlStep
	}
	if j.Easing != "" {
		c, err := easing.Parse(j.Easing)
		if err != nil {
			return CompileConfig{}, err
		}
		cfg.Easing = c
	}

	cfg.Flags = mergeFlags(base.Flags, j.Flags)

	if len(j.Effects) > 0 {
		cfg.Effects = make([]EffectSpec, 0, len(j.Effects))
		for _, e := range j.Effects {
			cfg.Effects = append(cfg.Effects, e.spec())
		}
	}

	return cfg, nil
}

// NewJob describes a compile of projectPath into output with cfg, in the form
// CompileConfig reads back. A nil tracks selects every track.
func NewJob(projectPath, output string, tracks []int, cfg CompileConfig) Job {
	j := Job{
		Project:         projectPath,
		Output:          output,
		Source:          cfg.SourcePath,
		FPS:             strconv.FormatFloat(cfg.FPS, 'g', -1, 64),
		Scene:           cfg.SceneNumber,
		BaseLength:      strconv.FormatFloat(cfg.BaseLength, 'g', -1, 64),
		SpeedPolicy:     string(cfg.SpeedPolicy),
		TimeControlStep: cfg.TimeControlStep,
		Tracks:          tracks,
		Flags:           cfg.Flags,
		Easing:          cfg.Easing.String(),
	}
	for _, spec := range cfg.Effects {
		j.Effects = append(j.Effects, jobEffect(spec))
	}
	return j
}

func jobEffect(spec EffectSpec) JobEffect {
	e := JobEffect{Name: spec.Name, Params: make([]JobParam, 0, len(spec.Params))}
	for _, b := range spec.Params {
		if b.Kind == BindingBoolean {
			checked := b.Checked
			e.Params = append(e.Params, JobParam{Checked: &checked})
			continue
		}
		e.Params = append(e.Params, JobParam{Start: b.Start, End: b.End, Method: b.Method})
	}
	return e
}

func (e JobEffect) spec() EffectSpec {
	spec := EffectSpec{Name: e.Name, Params: make([]ParamBinding, 0, len(e.Params))}
	for _, p := range e.Params {
		if p.Checked != nil {
			spec.Params = append(spec.Params, Bool(*p.Checked))
			continue
		}
		spec.Params = append(spec.Params, Motion(p.Start, p.End, p.Method))
	}
	return spec
}

// mergeFlags turns on every flag set in either value. Job files can only
// enable options on top of the defaults.
func mergeFlags(a, b Flags) Flags {
	return Flags{
		FlipH:       a.FlipH || b.FlipH,
		FlipV:       a.FlipV || b.FlipV,
		Loop:        a.Loop || b.Loop,
		NoGap:       a.NoGap || b.NoGap,
		AsScene:     a.AsScene || b.AsScene,
		AutoSpeed:   a.AutoSpeed || b.AutoSpeed,
		TimeControl: a.TimeControl || b.TimeControl,
		ApplyEasing: a.ApplyEasing || b.ApplyEasing,
		Redzone:     a.Redzone || b.Redzone,
	}
}

// ReadJobs reads a job file.
func ReadJobs(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}

	return &jf, nil
}

// WriteJobs writes a job file.
func WriteJobs(jf *JobFile, path string) error {
	data, err := yaml.Marshal(jf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
