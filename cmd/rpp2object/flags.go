package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ivlev/rpp2object/internal/config"
	"github.com/ivlev/rpp2object/internal/easing"
	"github.com/ivlev/rpp2object/internal/timeline"
)

type options struct {
	Input     string
	Output    string
	Job       string
	ConfigDir string
	LogLevel  string

	Preset       string
	SavePreset   string
	DeletePreset string
	WriteJob     string

	ListTracks  bool
	ListEffects bool
	ListPresets bool
}

// newFlagSet declares every command line flag. Values that feed the compile
// config are read back through applyFlags, so only flags the user actually
// set override settings and presets.
func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("rpp2object", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&opts.Input, "input", "i", "", "REAPER project (default: newest .rpp in input/rpp/)")
	fs.StringVarP(&opts.Output, "output", "o", "", "object script (default: output/<name>_<time>.object)")
	fs.StringVar(&opts.Job, "job", "", "YAML job file; compiles every job in it concurrently")
	fs.StringVar(&opts.ConfigDir, "config-dir", ".", "directory holding rpp2object.yaml")
	fs.StringVar(&opts.LogLevel, "log-level", "", "trace, debug, info, warn or error")

	fs.String("source", "", "media file referenced by every object")
	fs.String("fps", "", "frame rate (invalid values fall back to 60)")
	fs.String("scene", "", "scene number used with --as-scene")
	fs.IntSlice("tracks", nil, "track numbers to compile (default: all)")

	fs.Bool("flip-h", false, "mirror every second item horizontally")
	fs.Bool("flip-v", false, "mirror every second item vertically")
	fs.Bool("loop", false, "loop playback")
	fs.Bool("no-gap", false, "close gaps shorter than 5 frames")
	fs.Bool("as-scene", false, "reference a scene instead of a media file")
	fs.Bool("auto-speed", false, "derive playback speed from item length")
	fs.String("base-length", "", "item length in seconds that plays at 100% (invalid values fall back to 1.0)")
	fs.String("speed-policy", "", "auto speed policy: snapped or raw")
	fs.Bool("time-control", false, "add a time control object per item")
	fs.String("tc-step", "", "frame step of time control objects")
	fs.Bool("apply-easing", false, "use the easing curve for time control")
	fs.Bool("redzone", false, "split tracks 1 and 2 into screen halves")
	fs.String("easing", "", "easing control points as x1,y1,x2,y2")
	fs.StringArray("effect", nil, "effect added to every object, e.g. 座標:X=0,100,直線移動;Y=5 (repeatable)")

	fs.StringVar(&opts.Preset, "preset", "", "start from a saved preset")
	fs.StringVar(&opts.SavePreset, "save-preset", "", "save the resulting settings as a preset")
	fs.StringVar(&opts.DeletePreset, "delete-preset", "", "delete a saved preset and exit")
	fs.BoolVar(&opts.ListPresets, "list-presets", false, "print the saved presets and exit")
	fs.StringVar(&opts.WriteJob, "write-job", "", "write the resolved run as a job file instead of compiling")
	fs.BoolVar(&opts.ListTracks, "list-tracks", false, "print the tracks of the project and exit")
	fs.BoolVar(&opts.ListEffects, "list-effects", false, "print the effect registry and exit")

	return fs
}

// applyFlags overrides cfg with the compile flags that were set on fs.
func applyFlags(fs *pflag.FlagSet, cfg config.CompileConfig) (config.CompileConfig, error) {
	str := func(name string, set func(string)) {
		if fs.Changed(name) {
			v, _ := fs.GetString(name)
			set(v)
		}
	}
	flag := func(name string, dst *bool) {
		if fs.Changed(name) {
			*dst, _ = fs.GetBool(name)
		}
	}

	str("source", func(v string) { cfg.SourcePath = v })
	str("fps", func(v string) { cfg.FPS = config.ParseFPS(v) })
	str("scene", func(v string) { cfg.SceneNumber = v })
	str("base-length", func(v string) { cfg.BaseLength = config.ParseBaseLength(v) })
	str("tc-step", func(v string) { cfg.TimeControlStep = v })

	flag("flip-h", &cfg.Flags.FlipH)
	flag("flip-v", &cfg.Flags.FlipV)
	flag("loop", &cfg.Flags.Loop)
	flag("no-gap", &cfg.Flags.NoGap)
	flag("as-scene", &cfg.Flags.AsScene)
	flag("auto-speed", &cfg.Flags.AutoSpeed)
	flag("time-control", &cfg.Flags.TimeControl)
	flag("apply-easing", &cfg.Flags.ApplyEasing)
	flag("redzone", &cfg.Flags.Redzone)

	if fs.Changed("speed-policy") {
		v, _ := fs.GetString("speed-policy")
		p, err := timeline.ParseSpeedPolicy(v)
		if err != nil {
			return cfg, err
		}
		cfg.SpeedPolicy = p
	}

	if fs.Changed("easing") {
		v, _ := fs.GetString("easing")
		c, err := easing.Parse(v)
		if err != nil {
			return cfg, fmt.Errorf("--easing: %w", err)
		}
		cfg.Easing = c
	}

	if fs.Changed("effect") {
		values, _ := fs.GetStringArray("effect")
		cfg.Effects = make([]config.EffectSpec, 0, len(values))
		for _, v := range values {
			spec, err := parseEffect(v)
			if err != nil {
				return cfg, fmt.Errorf("--effect: %w", err)
			}
			cfg.Effects = append(cfg.Effects, spec)
		}
	}

	return cfg, nil
}

// trackSelection returns the --tracks subset, or nil when every track is
// wanted.
func trackSelection(fs *pflag.FlagSet) []int {
	if !fs.Changed("tracks") {
		return nil
	}
	tracks, _ := fs.GetIntSlice("tracks")
	if tracks == nil {
		return []int{}
	}
	return tracks
}
