package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradecal/config"
	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/internal/logger"
	"github.com/rustyeddy/tradecal/journal"
	"github.com/rustyeddy/tradecal/kv"
)

// app is everything a command needs, opened once per invocation.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	backend kv.Store
	journal *journal.Store
	loc     *time.Location
}

func (ro *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if ro.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(ro.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	if ro.StoreType != "" {
		cfg.Store.Type = ro.StoreType
	}
	if ro.StorePath != "" {
		cfg.Store.Path = ro.StorePath
	}
	if ro.LogLevel != "" {
		cfg.Log.Level = ro.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (ro *rootOptions) open() (*app, error) {
	cfg, err := ro.loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	backend, err := kv.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	j := journal.New(backend, cfg.Store.RecordsKey(), log)
	j.Load()

	log.Debug("store opened", zap.String("type", cfg.Store.Type), zap.String("path", cfg.Store.Path))
	return &app{cfg: cfg, log: log, backend: backend, journal: j, loc: loc}, nil
}

func (a *app) Close() error {
	_ = a.log.Sync()
	return a.backend.Close()
}

// parseDay accepts YYYY-MM-DD or "today".
func (a *app) parseDay(s string) (time.Time, error) {
	if s == "today" {
		return time.Now().In(a.loc), nil
	}
	return datekey.Parse(s, a.loc)
}
