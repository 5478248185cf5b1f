package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BonsaiRobotics/ros2-fabric/internal/config"
	"github.com/BonsaiRobotics/ros2-fabric/internal/ctxlog"
	"github.com/BonsaiRobotics/ros2-fabric/internal/expand"
	"github.com/BonsaiRobotics/ros2-fabric/internal/fsutil"
	"github.com/BonsaiRobotics/ros2-fabric/internal/hcl"
	"github.com/BonsaiRobotics/ros2-fabric/internal/launch"
	"github.com/BonsaiRobotics/ros2-fabric/internal/topology"
	"github.com/BonsaiRobotics/ros2-fabric/internal/validate"
	"github.com/BonsaiRobotics/ros2-fabric/internal/yaml"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp is the constructor for the main application. Descriptors are
// written to outW (or the configured output file); logs go to logW with
// their own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
	}
}

// Run executes the pipeline once, or repeatedly under watch mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.Watch {
		return a.watch(ctx)
	}
	return a.runOnce(ctx)
}

// runOnce performs a single load→validate→expand→emit pass.
func (a *App) runOnce(ctx context.Context) error {
	path, err := fsutil.ResolveConfigPath(a.cfg.ConfigPath)
	if err != nil {
		return err
	}

	loader, err := loaderFor(path)
	if err != nil {
		return err
	}

	cfg, err := loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validated, err := validate.Config(cfg)
	if err != nil {
		a.logger.Error("Fleet definition failed validation.", "error", err)
		return fmt.Errorf("invalid fleet definition: %w", err)
	}
	a.logger.Debug("Fleet definition validated.")

	if a.cfg.Strict {
		if err := topology.Check(validated); err != nil {
			a.logger.Error("Fleet definition failed strict topology check.", "error", err)
			return fmt.Errorf("topology check failed: %w", err)
		}
		a.logger.Debug("Strict topology check passed.")
	}

	if !expand.HasEnvironment(cfg, a.cfg.Environment) {
		a.logger.Warn("Environment not declared in fleet definition, expanding to nothing.",
			"environment", a.cfg.Environment)
	}

	descriptors := expand.Environment(validated, a.cfg.Environment)
	a.logger.Info("Expanded environment into node descriptors.",
		"environment", a.cfg.Environment, "count", len(descriptors))

	return a.emit(ctx, descriptors)
}

// emit writes the descriptor list to the configured destination.
func (a *App) emit(ctx context.Context, descriptors []launch.NodeDescriptor) error {
	w := a.outW
	if a.cfg.OutputPath != "" && a.cfg.OutputPath != "-" {
		f, err := os.Create(a.cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return launch.NewJSONEmitter(w).Emit(ctx, descriptors)
}

// loaderFor picks the config.Loader matching a file's extension.
func loaderFor(path string) (config.Loader, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.NewLoader(), nil
	case ".hcl":
		return hcl.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q (expected .yaml, .yml, or .hcl)", filepath.Ext(path))
	}
}
