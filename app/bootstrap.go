// Package app wires the ambient setup shared by the commands: .env files,
// configuration overrides, log level and tracing.
package app

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/doomgrid/assets"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/telemetry"
	"github.com/joho/godotenv"
)

// Bootstrap loads .env, applies DOOMGRID_* variables and the optional YAML
// override file, sets the log level and starts tracing when enabled. The
// returned shutdown function is always safe to call.
func Bootstrap(ctx context.Context, configPath string) (shutdown func(context.Context) error) {
	shutdown = func(context.Context) error { return nil }

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(err).Debug(".env file not loaded")
	}

	if configPath != "" {
		if err := config.LoadOverrides(configPath); err != nil {
			logger.Log.WithError(err).Warn("Config overrides ignored")
		}
	}
	if err := config.ApplyEnv(); err != nil {
		logger.Log.WithError(err).Warn("Environment override ignored")
	}
	logger.SetLevel(config.Debug.LogLevel)

	if !config.Telemetry.Enabled {
		return shutdown
	}
	tpShutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry setup failed, running without tracing")
		return shutdown
	}
	return tpShutdown
}

// LevelSource returns the file system and directory levels are read from:
// dir on disk when set, the bundled levels otherwise.
func LevelSource(dir string) (fs.FS, string) {
	if dir == "" {
		return assets.FS(), assets.LevelsDir
	}
	dir = filepath.Clean(dir)
	return os.DirFS(filepath.Dir(dir)), filepath.Base(dir)
}
