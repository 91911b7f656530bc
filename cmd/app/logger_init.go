package main

import (
	"io"

	"github.com/osse101/GachaTrip_Go/internal/config"
	"github.com/osse101/GachaTrip_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) io.Closer {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	if cfg.LogToFile {
		loggerConfig = loggerConfig.WithFile(cfg.LogFilePath())
	}

	return logger.InitLogger(loggerConfig)
}
