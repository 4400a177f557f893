package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dexview/internal/catalog"
	"dexview/internal/store"
)

func (c *Client) ReplaceEntities(ctx context.Context, entities []catalog.Entity) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("clearing entities: %w", err)
	}

	batch := &pgx.Batch{}
	for _, e := range entities {
		payload, err := store.EncodePayload(e)
		if err != nil {
			return err
		}
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}
		batch.Queue(`
INSERT INTO entities (id, name, tags, height, weight, payload, fetched_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
`, e.ID, e.Name, tags, e.Height, e.Weight, payload)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting entities: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing entities: %w", err)
	}
	return nil
}

func (c *Client) ListEntities(ctx context.Context) ([]catalog.Entity, error) {
	rows, err := c.pool.Query(ctx, `
SELECT id, name, tags, height, weight, payload
FROM entities
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	entities := []catalog.Entity{}
	for rows.Next() {
		var e catalog.Entity
		var payload []byte
		if err := rows.Scan(&e.ID, &e.Name, &e.Tags, &e.Height, &e.Weight, &payload); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		if e.Tags == nil {
			e.Tags = []string{}
		}
		if err := store.DecodePayload(payload, &e); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity rows: %w", err)
	}

	return entities, nil
}

func (c *Client) CountEntities(ctx context.Context) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM entities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entities: %w", err)
	}
	return n, nil
}
