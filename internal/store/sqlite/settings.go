package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (c *Client) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, true, nil
}

func (c *Client) PutSetting(ctx context.Context, key, value string) error {
	_, err := c.db.ExecContext(ctx, `
	INSERT INTO settings (key, value, updated_at)
	VALUES (?, ?, datetime('now'))
	ON CONFLICT (key) DO UPDATE SET
		value = excluded.value,
		updated_at = datetime('now')
	`, key, value)
	if err != nil {
		return fmt.Errorf("putting setting %q: %w", key, err)
	}
	return nil
}
