package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"dexview/internal/catalog"
	"dexview/internal/store"
)

func (c *Client) ReplaceEntities(ctx context.Context, entities []catalog.Entity) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("clearing entities: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO entities (id, name, tags, height, weight, payload, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
	`)
	if err != nil {
		return fmt.Errorf("preparing entity insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entities {
		tagsJSON, err := json.Marshal(e.Tags)
		if err != nil {
			return fmt.Errorf("marshaling tags: %w", err)
		}
		payload, err := store.EncodePayload(e)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, e.ID, e.Name, string(tagsJSON), e.Height, e.Weight, string(payload)); err != nil {
			return fmt.Errorf("inserting entity %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entities: %w", err)
	}
	return nil
}

func (c *Client) ListEntities(ctx context.Context) ([]catalog.Entity, error) {
	rows, err := c.db.QueryContext(ctx, `
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
		var tagsBytes []byte
		var payload []byte
		if err := rows.Scan(&e.ID, &e.Name, &tagsBytes, &e.Height, &e.Weight, &payload); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		if len(tagsBytes) > 0 {
			if err := json.Unmarshal(tagsBytes, &e.Tags); err != nil {
				return nil, fmt.Errorf("unmarshaling tags: %w", err)
			}
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
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entities: %w", err)
	}
	return n, nil
}
