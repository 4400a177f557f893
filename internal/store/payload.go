package store

import (
	"encoding/json"
	"fmt"

	"dexview/internal/catalog"
)

// Payload is the display-only part of an entity, stored as one JSON column.
type Payload struct {
	Sprite    string         `json:"sprite,omitempty"`
	Artwork   string         `json:"artwork,omitempty"`
	Abilities []string       `json:"abilities,omitempty"`
	Stats     []catalog.Stat `json:"stats,omitempty"`
}

func EncodePayload(e catalog.Entity) ([]byte, error) {
	data, err := json.Marshal(Payload{
		Sprite:    e.Sprite,
		Artwork:   e.Artwork,
		Abilities: e.Abilities,
		Stats:     e.Stats,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling payload for %d: %w", e.ID, err)
	}
	return data, nil
}

func DecodePayload(data []byte, e *catalog.Entity) error {
	if len(data) == 0 {
		return nil
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unmarshaling payload for %d: %w", e.ID, err)
	}
	e.Sprite = p.Sprite
	e.Artwork = p.Artwork
	e.Abilities = p.Abilities
	e.Stats = p.Stats
	return nil
}
