package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ivlev/rpp2object/internal/config"
	"github.com/ivlev/rpp2object/internal/effects"
	"github.com/ivlev/rpp2object/internal/engine"
	"github.com/ivlev/rpp2object/internal/logging"
	"github.com/ivlev/rpp2object/internal/metrics"
	"github.com/ivlev/rpp2object/internal/preset"
	"github.com/ivlev/rpp2object/internal/project"
	"github.com/ivlev/rpp2object/internal/system"
)

const (
	inputDir  = "input/rpp"
	outputDir = "output"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.Load(opts.ConfigDir); err != nil {
		return err
	}
	if opts.LogLevel != "" {
		viper.Set("logLevel", opts.LogLevel)
	}

	log, closeLog, err := logging.Setup(config.GetString("logLevel"), config.GetString("logsDir"))
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.ListEffects {
		listEffects(stdout)
		return nil
	}
	if opts.ListPresets {
		return listPresets(stdout)
	}
	if opts.DeletePreset != "" {
		if err := deletePreset(opts.DeletePreset); err != nil {
			return err
		}
		log.Info().Str("preset", opts.DeletePreset).Msg("preset deleted")
		return nil
	}

	m, err := metrics.Init(config.GetString("sentry.dsn"), config.GetString("sentry.environment"))
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}
	defer m.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base, err := baseConfig(opts, log)
	if err != nil {
		return err
	}
	cfg, err := applyFlags(fs, base)
	if err != nil {
		return err
	}

	if opts.SavePreset != "" {
		if err := savePreset(opts.SavePreset, cfg); err != nil {
			return err
		}
		log.Info().Str("preset", opts.SavePreset).Msg("preset saved")
	}

	if opts.Job != "" {
		return runJobs(ctx, opts.Job, cfg, log, m)
	}

	input := opts.Input
	if input == "" {
		os.MkdirAll(inputDir, 0755)
		latest, err := system.FindLatestProject(inputDir)
		if err != nil {
			return fmt.Errorf("%w; put a project into %s/", err, inputDir)
		}
		input = latest
		log.Info().Str("project", input).Msg("picked newest project")
	}

	if opts.ListTracks {
		return listTracks(stdout, input)
	}

	out := opts.Output
	if out == "" {
		out = system.DefaultOutputPath(outputDir, input, time.Now())
	}

	if opts.WriteJob != "" {
		jf := &config.JobFile{Jobs: []config.Job{config.NewJob(input, out, trackSelection(fs), cfg)}}
		if err := config.WriteJobs(jf, opts.WriteJob); err != nil {
			return &engine.IOError{Op: "write", Path: opts.WriteJob, Err: err}
		}
		log.Info().Str("job", opts.WriteJob).Msg("job file written")
		return nil
	}

	p := engine.NewProject(input, out, cfg, nil)
	p.Tracks = trackSelection(fs)
	p.Logger = log
	p.Metrics = m

	_, err = p.Run(ctx)
	return err
}

// baseConfig starts from the settings file and layers a preset over it.
func baseConfig(opts options, log zerolog.Logger) (config.CompileConfig, error) {
	cfg := config.Defaults()
	if opts.Preset == "" {
		return cfg, nil
	}

	store, err := preset.Open(config.GetString("presets.path"))
	if err != nil {
		return cfg, err
	}
	defer store.Close()

	cfg, err = store.Load(opts.Preset)
	if err != nil {
		return cfg, err
	}
	log.Info().Str("preset", opts.Preset).Msg("preset loaded")
	return cfg, nil
}

func savePreset(name string, cfg config.CompileConfig) error {
	store, err := preset.Open(config.GetString("presets.path"))
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(name, cfg)
}

func listPresets(w io.Writer) error {
	store, err := preset.Open(config.GetString("presets.path"))
	if err != nil {
		return err
	}
	defer store.Close()

	presets, err := store.List()
	if err != nil {
		return err
	}
	for _, p := range presets {
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.UpdatedAt.Format(time.DateTime))
	}
	return nil
}

func deletePreset(name string) error {
	store, err := preset.Open(config.GetString("presets.path"))
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Delete(name)
}

func runJobs(ctx context.Context, path string, base config.CompileConfig, log zerolog.Logger, m *metrics.SentryMetrics) error {
	jf, err := config.ReadJobs(path)
	if err != nil {
		return err
	}

	projects := make([]*engine.Project, 0, len(jf.Jobs))
	for i, job := range jf.Jobs {
		cfg, err := job.CompileConfig(base)
		if err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
		p := engine.NewProject(job.Project, job.Output, cfg, nil)
		p.Tracks = job.Tracks
		p.Logger = log.With().Int("job", i+1).Logger()
		p.Metrics = m
		projects = append(projects, p)
	}

	workers := config.GetInt("batch.workers")
	if workers <= 0 {
		workers = engine.DefaultWorkers()
	}

	start := time.Now()
	log.Info().Int("jobs", len(projects)).Int("workers", workers).Msg("running job file")

	_, err = engine.RunBatch(ctx, projects, workers)
	m.RecordBatch(ctx, len(projects), workers, time.Since(start), err)
	return err
}

func listTracks(w io.Writer, path string) error {
	src, err := project.ReadFile(path)
	if err != nil {
		return &engine.IOError{Op: "read", Path: path, Err: err}
	}
	for _, t := range src.Tracks() {
		fmt.Fprintf(w, "%d: %s\n", t.Index, t.Name)
	}
	return nil
}

func listEffects(w io.Writer) {
	for _, e := range effects.All() {
		names := make([]string, len(e.Params))
		for i, p := range e.Params {
			names[i] = fmt.Sprintf("%s=%s", p.Name, p.Default)
			if p.Kind == effects.Boolean {
				names[i] += " (" + p.Kind.String() + ")"
			}
		}
		fmt.Fprintf(w, "%s: %s\n", e.Name, strings.Join(names, ", "))
	}

	methods := effects.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	fmt.Fprintf(w, "methods: %s\n", strings.Join(names, ", "))
}

