package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dexview/internal/catalog"
)

// Key is the storage key holding the selected theme.
const Key = "theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Load returns the saved theme. Without a valid saved value it falls back to
// the terminal background; prefersDark may be nil to use lipgloss detection.
func Load(storage catalog.Storage, prefersDark func() bool) Theme {
	if storage != nil {
		if raw, ok, err := storage.Get(Key); err == nil && ok {
			if t, err := Parse(raw); err == nil {
				return t
			}
		}
	}
	if prefersDark == nil {
		prefersDark = lipgloss.HasDarkBackground
	}
	if prefersDark() {
		return Dark
	}
	return Light
}

func Save(storage catalog.Storage, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	if err := storage.Set(Key, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle flips the stored theme and returns the new one.
func Toggle(storage catalog.Storage, prefersDark func() bool) (Theme, error) {
	next := Load(storage, prefersDark).Toggle()
	if err := Save(storage, next); err != nil {
		return "", err
	}
	return next, nil
}
