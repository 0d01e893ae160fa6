package engine

import (
	"github.com/ivlev/rpp2object/internal/config"
	"github.com/ivlev/rpp2object/internal/project"
	"github.com/ivlev/rpp2object/internal/script"
	"github.com/ivlev/rpp2object/internal/system"
	"github.com/ivlev/rpp2object/internal/timeline"
)

// Result is the outcome of one compile.
type Result struct {
	Text    string
	Items   int
	Objects int
}

// Compile turns project text into an object script. Only items on
// cfg.ActiveTracks are compiled; an empty selection gives an empty script.
// The same input always gives the same output.
func Compile(text string, cfg config.CompileConfig) (string, error) {
	res, err := compile(text, cfg)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func compile(text string, cfg config.CompileConfig) (Result, error) {
	cfg = cfg.Normalized()

	emitter, err := script.NewEmitter(cfg)
	if err != nil {
		return Result{}, &ConfigurationError{Field: "effects", Reason: err.Error(), Err: err}
	}

	var items []project.Item
	for _, it := range project.ParseItems(text) {
		if cfg.IsActive(it.Track) {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		return Result{}, nil
	}

	buf := system.GetBuffer()
	defer system.PutBuffer(buf)

	for _, slot := range timeline.Schedule(items, cfg.FPS, cfg.Flags.NoGap) {
		script.Render(buf, emitter.Emit(slot))
	}

	return Result{
		Text:    buf.String(),
		Items:   len(items),
		Objects: emitter.Emitted(),
	}, nil
}
