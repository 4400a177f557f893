package store

import (
	"context"
	"time"

	"dexview/internal/catalog"
)

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	ReplaceEntities(ctx context.Context, entities []catalog.Entity) error
	ListEntities(ctx context.Context) ([]catalog.Entity, error)
	CountEntities(ctx context.Context) (int, error)

	GetSetting(ctx context.Context, key string) (string, bool, error)
	PutSetting(ctx context.Context, key, value string) error
}

const settingTimeout = 5 * time.Second

// Settings exposes the key/value half of a Store as catalog.Storage. Each
// call runs under its own short timeout derived from ctx.
func Settings(ctx context.Context, s Store) catalog.Storage {
	return &settings{ctx: ctx, store: s}
}

type settings struct {
	ctx   context.Context
	store Store
}

func (s *settings) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(s.ctx, settingTimeout)
	defer cancel()
	return s.store.GetSetting(ctx, key)
}

func (s *settings) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(s.ctx, settingTimeout)
	defer cancel()
	return s.store.PutSetting(ctx, key, value)
}
