package pokeapi

import (
	"sort"

	"dexview/internal/catalog"
)

type listResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []namedLink `json:"results"`
}

type namedLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Types     []typeSlot    `json:"types"`
	Sprites   sprites       `json:"sprites"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Abilities []abilitySlot `json:"abilities"`
	Stats     []baseStat    `json:"stats"`
}

type typeSlot struct {
	Slot int       `json:"slot"`
	Type namedLink `json:"type"`
}

type sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type abilitySlot struct {
	Ability namedLink `json:"ability"`
}

type baseStat struct {
	BaseStat int       `json:"base_stat"`
	Stat     namedLink `json:"stat"`
}

func (p pokemon) entity() catalog.Entity {
	slots := append([]typeSlot(nil), p.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	tags := make([]string, 0, len(slots))
	for _, slot := range slots {
		tags = append(tags, slot.Type.Name)
	}

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}

	stats := make([]catalog.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, catalog.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	return catalog.Entity{
		ID:        p.ID,
		Name:      p.Name,
		Tags:      tags,
		Height:    p.Height,
		Weight:    p.Weight,
		Sprite:    p.Sprites.FrontDefault,
		Artwork:   p.Sprites.Other.OfficialArtwork.FrontDefault,
		Abilities: abilities,
		Stats:     stats,
	}
}
