package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivlev/rpp2object/internal/config"
	"github.com/ivlev/rpp2object/internal/metrics"
	"github.com/ivlev/rpp2object/internal/output"
	"github.com/ivlev/rpp2object/internal/project"
)

// Project is one .rpp file compiled to one .object file.
type Project struct {
	InputPath  string
	OutputPath string
	Config     config.CompileConfig
	// Tracks nil compiles every track found in the project.
	Tracks []int

	Writer  output.Writer
	Logger  zerolog.Logger
	Metrics *metrics.SentryMetrics
}

// NewProject creates a project that writes through w. A nil w writes files
// atomically, creating missing directories.
func NewProject(input, out string, cfg config.CompileConfig, w output.Writer) *Project {
	if w == nil {
		w = &output.FileWriter{MkdirAll: true}
	}
	return &Project{
		InputPath:  input,
		OutputPath: out,
		Config:     cfg,
		Writer:     w,
		Logger:     zerolog.Nop(),
	}
}

// Run reads the project, compiles the selected tracks and writes the script.
// Missing paths are reported before anything is read.
func (p *Project) Run(ctx context.Context) (Result, error) {
	if p.InputPath == "" {
		return Result{}, &ConfigurationError{Field: "project path", Reason: "path is empty"}
	}
	if p.OutputPath == "" {
		return Result{}, &ConfigurationError{Field: "output path", Reason: "path is empty"}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	log := p.Logger.With().Str("project", p.InputPath).Logger()

	res, err := p.run(log)
	p.Metrics.RecordCompile(ctx, p.InputPath, res.Items, res.Objects, time.Since(start), err == nil)
	if err != nil {
		log.Error().Err(err).Msg("compile failed")
		return Result{}, err
	}

	log.Info().
		Str("output", p.OutputPath).
		Int("items", res.Items).
		Int("objects", res.Objects).
		Dur("took", time.Since(start)).
		Msg("object script written")

	return res, nil
}

func (p *Project) run(log zerolog.Logger) (Result, error) {
	src, err := project.ReadFile(p.InputPath)
	if err != nil {
		return Result{}, &IOError{Op: "read", Path: p.InputPath, Err: err}
	}

	cfg := p.Config
	cfg.ActiveTracks = project.SelectTracks(src.Tracks(), p.Tracks)
	log.Debug().Ints("tracks", cfg.ActiveTracks).Msg("tracks selected")

	if len(cfg.ActiveTracks) == 0 {
		log.Warn().Msg("no tracks selected, writing empty script")
	}

	res, err := compile(src.Text, cfg)
	if err != nil {
		return Result{}, err
	}

	if err := p.Writer.Write(p.OutputPath, []byte(res.Text)); err != nil {
		return Result{}, &IOError{Op: "write", Path: p.OutputPath, Err: err}
	}

	return res, nil
}
