package script

import (
	"fmt"
	"strconv"

	"github.com/ivlev/rpp2object/internal/config"
	"github.com/ivlev/rpp2object/internal/effects"
	"github.com/ivlev/rpp2object/internal/timeline"
)

// Section names and keys expected by the consumer.
const (
	sectionScene       = "シーン"
	sectionMovie       = "動画ファイル"
	sectionDraw        = "標準描画"
	sectionClip        = "クリッピング"
	sectionFlip        = "反転"
	sectionTimeControl = "時間制御(オブジェクト)"
)

// RedzoneOffset is the horizontal shift, and the cropped width, of the two
// halves of a redzone split screen.
const RedzoneOffset = 480

// EffectError reports an effect list that does not match the registry.
type EffectError struct {
	Effect string
	Param  int
	Reason string
}

func (e *EffectError) Error() string {
	if e.Param < 0 {
		return fmt.Sprintf("effect %q: %s", e.Effect, e.Reason)
	}
	return fmt.Sprintf("effect %q param %d: %s", e.Effect, e.Param, e.Reason)
}

// Emitter turns scheduled slots into object blocks. It numbers objects
// contiguously from 0 over its whole lifetime, so use one Emitter per output.
type Emitter struct {
	cfg     config.CompileConfig
	easing  string
	effects []SubBlock
	next    int
}

// NewEmitter validates the effect list of cfg against the registry and
// prepares the effect sub-blocks, which are identical for every object.
func NewEmitter(cfg config.CompileConfig) (*Emitter, error) {
	e := &Emitter{
		cfg:    cfg,
		easing: cfg.Easing.Encode(),
	}

	for _, spec := range cfg.Effects {
		block, err := e.effectBlock(spec)
		if err != nil {
			return nil, err
		}
		e.effects = append(e.effects, block)
	}

	return e, nil
}

// Emitted returns how many objects have been numbered so far.
func (e *Emitter) Emitted() int {
	return e.next
}

// Emit builds the primary object for slot and, with time control on, its
// companion.
func (e *Emitter) Emit(slot timeline.Slot) []ObjectBlock {
	track := slot.Item.Track
	layer := track
	if e.cfg.Flags.TimeControl {
		layer = track * 2
	}

	primary := ObjectBlock{
		Index:      e.take(),
		FrameStart: slot.FrameStart,
		FrameEnd:   slot.FrameEnd,
		Layer:      layer,
	}

	speed := timeline.Speed(slot.Item.Length, e.cfg.Flags.AutoSpeed, e.cfg.BaseLength, e.cfg.SpeedPolicy)
	primary.Blocks = append(primary.Blocks, e.mediaBlock(speed), e.drawBlock(track))

	if clip, ok := e.clipBlock(track); ok {
		primary.Blocks = append(primary.Blocks, clip)
	}
	if flip, ok := e.flipBlock(slot.Occurrence); ok {
		primary.Blocks = append(primary.Blocks, flip)
	}
	primary.Blocks = append(primary.Blocks, e.effects...)

	out := []ObjectBlock{primary}

	if e.cfg.Flags.TimeControl {
		out = append(out, ObjectBlock{
			Index:      e.take(),
			FrameStart: slot.FrameStart,
			FrameEnd:   slot.FrameEnd,
			Layer:      layer - 1,
			Blocks:     []SubBlock{e.timeControlBlock(track, slot.Occurrence)},
		})
	}

	return out
}

func (e *Emitter) take() int {
	i := e.next
	e.next++
	return i
}

func (e *Emitter) mediaBlock(speed float64) SubBlock {
	loop := boolValue(e.cfg.Flags.Loop)

	if e.cfg.Flags.AsScene {
		b := SubBlock{Name: sectionScene}
		b.add("再生位置", "1.000")
		b.add("再生速度", fmt.Sprintf("%.2f", speed))
		b.add("ループ再生", loop)
		b.add("シーン", e.cfg.SceneNumber)
		return b
	}

	b := SubBlock{Name: sectionMovie}
	b.add("ファイル", e.cfg.SourcePath)
	b.add("再生位置", "0.000")
	b.add("再生速度", fmt.Sprintf("%.2f", speed))
	b.add("ループ再生", loop)
	b.add("音声付き", "1")
	return b
}

func (e *Emitter) drawBlock(track int) SubBlock {
	x := 0.0
	if e.cfg.Flags.Redzone {
		switch track {
		case 1:
			x = -RedzoneOffset
		case 2:
			x = RedzoneOffset
		}
	}

	b := SubBlock{Name: sectionDraw}
	b.add("X", fmt.Sprintf("%.2f", x))
	b.add("Y", "0.00")
	b.add("Z", "0.00")
	b.add("透明度", "0.00")
	return b
}

// clipBlock crops the half of the frame a redzone track is shifted away
// from. Only tracks 1 and 2 take part in the split.
func (e *Emitter) clipBlock(track int) (SubBlock, bool) {
	if !e.cfg.Flags.Redzone || (track != 1 && track != 2) {
		return SubBlock{}, false
	}

	left, right := RedzoneOffset, 0
	if track == 2 {
		left, right = 0, RedzoneOffset
	}

	b := SubBlock{Name: sectionClip}
	b.add("上", "0")
	b.add("下", "0")
	b.add("左", strconv.Itoa(left))
	b.add("右", strconv.Itoa(right))
	b.add("中心の位置を変更", "0")
	return b, true
}

// flipBlock mirrors every second item of a track.
func (e *Emitter) flipBlock(occurrence int) (SubBlock, bool) {
	f := e.cfg.Flags
	if !(f.FlipH || f.FlipV) || occurrence%2 != 0 {
		return SubBlock{}, false
	}

	b := SubBlock{Name: sectionFlip}
	b.add("上下反転", boolValue(f.FlipV))
	b.add("左右反転", boolValue(f.FlipH))
	return b, true
}

func (e *Emitter) timeControlBlock(track, occurrence int) SubBlock {
	forward := occurrence%2 != 0
	if e.cfg.Flags.Redzone && track == 2 {
		forward = !forward
	}

	pos := "100.000,0.000"
	if forward {
		pos = "0.000,100.000"
	}
	if e.cfg.Flags.ApplyEasing {
		pos += "," + effects.MethodToken(effects.MethodInterpolatedControl) + "," + e.easing
	} else {
		pos += "," + effects.MethodToken(effects.MethodLinearTimeControl) + ",0"
	}

	b := SubBlock{Name: sectionTimeControl}
	b.add("位置", pos)
	b.add("コマ落ち", e.cfg.TimeControlStep)
	b.add("対象レイヤー数", "1")
	return b
}

func (e *Emitter) effectBlock(spec config.EffectSpec) (SubBlock, error) {
	def, ok := effects.Lookup(spec.Name)
	if !ok {
		return SubBlock{}, &EffectError{Effect: spec.Name, Param: -1, Reason: "unknown effect"}
	}
	if len(spec.Params) > len(def.Params) {
		return SubBlock{}, &EffectError{
			Effect: spec.Name,
			Param:  -1,
			Reason: fmt.Sprintf("%d bindings for %d parameters", len(spec.Params), len(def.Params)),
		}
	}

	b := SubBlock{Name: def.Name}
	for i, p := range def.Params {
		if i >= len(spec.Params) {
			b.add(p.Name, p.Default)
			continue
		}

		v, err := e.paramValue(p, spec.Params[i])
		if err != nil {
			return SubBlock{}, &EffectError{Effect: spec.Name, Param: i, Reason: err.Error()}
		}
		b.add(p.Name, v)
	}

	return b, nil
}

func (e *Emitter) paramValue(def effects.ParamDef, bind config.ParamBinding) (string, error) {
	switch bind.Kind {
	case config.BindingBoolean:
		if def.Kind != effects.Boolean {
			return "", fmt.Errorf("%s is %s, got a boolean binding", def.Name, def.Kind)
		}
		return boolValue(bind.Checked), nil

	case config.BindingMotion:
		if def.Kind != effects.Constant {
			return "", fmt.Errorf("%s is %s, got a motion binding", def.Name, def.Kind)
		}
		token := effects.MethodToken(bind.Method)
		if token == "" {
			return bind.Start, nil
		}
		return bind.Start + "," + bind.End + "," + token + "," + e.easing, nil

	default:
		return "", fmt.Errorf("unknown binding kind %q", bind.Kind)
	}
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
