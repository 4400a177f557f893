package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"dexview/internal/catalog"
	"dexview/internal/theme"
)

func TestStatBar(t *testing.T) {
	tests := []struct {
		base   int
		filled int
	}{
		{base: 0, filled: 0},
		{base: 45, filled: 3},
		{base: 128, filled: 10},
		{base: 255, filled: 20},
		{base: 300, filled: 20},
		{base: -5, filled: 0},
	}

	for _, tt := range tests {
		bar := statBar(tt.base)
		assert.Equal(t, barWidth, len([]rune(bar)), "base %d", tt.base)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "base %d", tt.base)
	}
}

func TestFormatTenths(t *testing.T) {
	assert.Equal(t, "0.7 m", formatTenths(7, "m"))
	assert.Equal(t, "6.9 kg", formatTenths(69, "kg"))
	assert.Equal(t, "100.0 kg", formatTenths(1000, "kg"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bulbasaur", displayName("bulbasaur"))
	assert.Equal(t, "Mr Mime", displayName("mr-mime"))
	assert.Equal(t, "Special Attack", displayName("special-attack"))
	assert.Equal(t, "", displayName(""))
	assert.Equal(t, "Nidoran ♀", displayName("nidoran-♀"))
	assert.Equal(t, "Élan", displayName("élan"))
	assert.True(t, utf8.ValidString(displayName("ébrieux-ñu")))
}

func TestRenderPager(t *testing.T) {
	styles := theme.For(theme.Dark)

	assert.Empty(t, renderPager(styles, 1, 0))

	pager := renderPager(styles, 7, 13)
	assert.Contains(t, pager, "…")
	assert.Contains(t, pager, "13")
	assert.Equal(t, 2, strings.Count(pager, "…"))
}

func TestRenderDetail(t *testing.T) {
	styles := theme.For(theme.Light)
	entity := catalog.Entity{
		ID:        25,
		Name:      "pikachu",
		Tags:      []string{"electric"},
		Height:    4,
		Weight:    60,
		Abilities: []string{"static", "lightning-rod"},
		Stats:     []catalog.Stat{{Name: "hp", Base: 35}},
	}

	out := renderDetail(styles, entity, true)
	assert.Contains(t, out, "#025 Pikachu")
	assert.Contains(t, out, "0.4 m")
	assert.Contains(t, out, "6.0 kg")
	assert.Contains(t, out, "Lightning Rod")
	assert.Contains(t, out, "★")
}
