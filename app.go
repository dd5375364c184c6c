package main

import (
	"go.uber.org/zap"

	"chayuan/upstream"
)

type App struct {
	cfg     Config
	log     *zap.Logger
	backend *upstream.Client
	weather *upstream.WeatherIcons
}

func newApp(cfg Config) (*App, error) {
	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	backend := upstream.NewClient(cfg.BackendURL, logger)
	return &App{
		cfg:     cfg,
		log:     logger,
		backend: backend,
		weather: upstream.NewWeatherIcons(backend),
	}, nil
}

func (a *App) close() { _ = a.log.Sync() }
