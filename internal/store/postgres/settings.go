package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func (c *Client) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, true, nil
}

func (c *Client) PutSetting(ctx context.Context, key, value string) error {
	_, err := c.pool.Exec(ctx, `
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = now()
`, key, value)
	if err != nil {
		return fmt.Errorf("putting setting %q: %w", key, err)
	}
	return nil
}
