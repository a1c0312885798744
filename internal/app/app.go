package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ykvlv/nutricalc/internal/config"
	"github.com/ykvlv/nutricalc/internal/domain"
	"github.com/ykvlv/nutricalc/internal/intake"
	"github.com/ykvlv/nutricalc/internal/render"
)

// App runs one estimate: collect a profile, compute, render.
type App struct {
	cfg      config.Config
	log      *zap.Logger
	source   intake.Source
	renderer render.Renderer
	out      io.Writer
}

// New wires the renderer named by cfg.Format. source decides where the profile comes from.
func New(cfg config.Config, log *zap.Logger, source intake.Source, out io.Writer) (*App, error) {
	r, err := render.New(cfg.Format, render.Options{NoColor: cfg.NoColor})
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, log: log, source: source, renderer: r, out: out}, nil
}

// SourceFor picks the profile source: a YAML file if configured, all defaults
// if requested, otherwise interactive prompts on in/prompts.
func SourceFor(cfg config.Config, useDefaults bool, in io.Reader, prompts io.Writer, log *zap.Logger) intake.Source {
	switch {
	case cfg.ProfilePath != "":
		return intake.NewFile(cfg.ProfilePath, log)
	case useDefaults:
		return intake.Defaults{}
	default:
		return intake.NewPrompter(in, prompts, log)
	}
}

// Run collects the profile and renders the estimate. An interrupt signal
// cancels prompting between questions.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info("starting nutricalc", zap.String("format", a.cfg.Format))

	profile, err := a.source.Profile(ctx)
	if err != nil {
		return fmt.Errorf("collect profile: %w", err)
	}

	res := domain.Estimate(profile)
	a.log.Info("estimate computed",
		zap.Float64("bmr", res.Energy.BMR),
		zap.Float64("tdee", res.Energy.TDEE),
		zap.Float64("protein_g", res.Macros.ProteinGPerDay),
		zap.Int("nutrients", res.Micros.Len()),
	)
	if res.Energy.TDEE <= 0 {
		a.log.Warn("non-positive energy expenditure; check the profile values",
			zap.Float64("tdee", res.Energy.TDEE))
	}

	if err := a.renderer.Render(a.out, res); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
