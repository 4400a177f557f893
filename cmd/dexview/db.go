package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"dexview/internal/catalog"
	"dexview/internal/config"
	"dexview/internal/store"
	"dexview/internal/store/postgres"
	"dexview/internal/store/sqlite"
)

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	driver, err := config.DriverFor(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	var db store.Store
	switch driver {
	case config.DriverSQLite:
		db, err = sqlite.New(ctx, cfg.Database.DSN)
	case config.DriverPostgres:
		db, err = postgres.New(ctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}
	logger.Debug("opened catalog store", zap.String("driver", string(driver)))
	return db, nil
}

// session bundles what most commands need: the config, the open store and
// an engine over the cached catalog whose favorites persist to that store.
type session struct {
	cfg    *config.ProjectConfig
	db     store.Store
	prefs  catalog.Storage
	engine *catalog.Engine
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	entities, err := db.ListEntities(ctx)
	if err != nil {
		_ = db.Close(ctx)
		return nil, err
	}
	if len(entities) == 0 {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("the catalog is empty; run `dexview sync` first")
	}

	prefs := store.Settings(ctx, db)
	engine := catalog.New(entities, prefs, catalog.Options{
		PageSize: cfg.View.PageSize,
		Logger:   logger,
	})
	return &session{cfg: cfg, db: db, prefs: prefs, engine: engine}, nil
}

func (s *session) Close(ctx context.Context) {
	if err := s.db.Close(ctx); err != nil {
		logger.Warn("closing catalog store", zap.Error(err))
	}
}
