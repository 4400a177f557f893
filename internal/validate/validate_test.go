package validate

import (
	"testing"

	"dexview/internal/catalog"
)

func validEntities() []catalog.Entity {
	return []catalog.Entity{
		{ID: 1, Name: "bulbasaur", Tags: []string{"grass", "poison"}, Height: 7, Weight: 69,
			Stats: []catalog.Stat{{Name: "hp", Base: 45}}},
		{ID: 4, Name: "charmander", Tags: []string{"fire"}, Height: 6, Weight: 85},
	}
}

func codes(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Code)
	}
	return out
}

func TestRun_Clean(t *testing.T) {
	report := Run(validEntities())
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}

func TestRun_Empty(t *testing.T) {
	report := Run(nil)
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]catalog.Entity) []catalog.Entity
		code   string
	}{
		{
			name: "duplicate id",
			mutate: func(e []catalog.Entity) []catalog.Entity {
				return append(e, catalog.Entity{ID: 1, Name: "ivysaur", Tags: []string{"grass"}})
			},
			code: codeDuplicateID,
		},
		{
			name: "zero id",
			mutate: func(e []catalog.Entity) []catalog.Entity {
				e[0].ID = 0
				return e
			},
			code: codeInvalidID,
		},
		{
			name: "blank name",
			mutate: func(e []catalog.Entity) []catalog.Entity {
				e[1].Name = "  "
				return e
			},
			code: codeMissingName,
		},
		{
			name: "duplicate name ignores case",
			mutate: func(e []catalog.Entity) []catalog.Entity {
				return append(e, catalog.Entity{ID: 9, Name: "Bulbasaur", Tags: []string{"grass"}})
			},
			code: codeDuplicateName,
		},
		{
			name: "negative weight",
			mutate: func(e []catalog.Entity) []catalog.Entity {
				e[0].Weight = -1
				return e
			},
			code: codeNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(tt.mutate(validEntities()))
			errs := report.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %+v", report.Issues)
			}
			if errs[0].Code != tt.code {
				t.Fatalf("expected %s, got %s", tt.code, errs[0].Code)
			}
			if len(report.Warnings()) != 0 {
				t.Fatalf("expected no warnings, got %v", codes(report.Warnings()))
			}
		})
	}
}

func TestRun_Warnings(t *testing.T) {
	entities := validEntities()
	entities[0].Tags = nil
	entities[1].Tags = []string{"fire", "shadow"}
	entities[1].Stats = []catalog.Stat{{Name: "attack", Base: 300}}

	report := Run(entities)
	if len(report.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", codes(report.Errors()))
	}

	got := codes(report.Warnings())
	want := []string{codeMissingTags, codeUnknownTag, codeStatOutOfRange}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	unknown := report.Warnings()[1]
	if unknown.ID != 4 || unknown.Entity != "charmander" {
		t.Fatalf("unexpected issue location: %+v", unknown)
	}
}
