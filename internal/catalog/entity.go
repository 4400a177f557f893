package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrNotFound         = errors.New("entity not found")
)

// Entity is one catalog item. Everything after Weight is display payload
// and is never read by the engine.
type Entity struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	Height int      `json:"height"`
	Weight int      `json:"weight"`

	Sprite    string   `json:"sprite,omitempty"`
	Artwork   string   `json:"artwork,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
	Stats     []Stat   `json:"stats,omitempty"`
}

type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Clone returns a copy that shares no slices with e.
func (e Entity) Clone() Entity {
	e.Tags = slices.Clone(e.Tags)
	e.Abilities = slices.Clone(e.Abilities)
	e.Stats = slices.Clone(e.Stats)
	return e
}

func cloneEntities(entities []Entity) []Entity {
	out := make([]Entity, len(entities))
	for i, entity := range entities {
		out[i] = entity.Clone()
	}
	return out
}

func (e Entity) HasAnyTag(tags []string) bool {
	for _, have := range e.Tags {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

type SortKey string

const (
	SortByID     SortKey = "id"
	SortByName   SortKey = "name"
	SortByHeight SortKey = "height"
	SortByWeight SortKey = "weight"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByID, SortByName, SortByHeight, SortByWeight:
		return true
	}
	return false
}

func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !key.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return key, nil
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// KnownTags lists the elemental tags in filter-menu order.
var KnownTags = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}
