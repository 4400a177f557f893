package mcp

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"dexview/internal/catalog"
)

type mockStorage struct {
	values map[string]string

	lastSetKey   string
	lastSetValue string
}

func (m *mockStorage) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *mockStorage) Set(key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.lastSetKey = key
	m.lastSetValue = value
	m.values[key] = value
	return nil
}

func testEntities(n int) []catalog.Entity {
	tags := []string{"grass", "fire", "water"}
	out := make([]catalog.Entity, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Entity{
			ID:     i,
			Name:   fmt.Sprintf("mon-%02d", i),
			Tags:   []string{tags[i%len(tags)]},
			Height: i,
			Weight: 100 - i,
		})
	}
	return out
}

func newTestServer(t *testing.T, entities []catalog.Entity, storage catalog.Storage) *Server {
	t.Helper()
	engine := catalog.New(entities, storage, catalog.Options{})
	return NewServer(engine, "test", nil)
}

func summaryIDs(summaries []EntitySummaryOutput) []int {
	out := make([]int, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}

func TestListPage(t *testing.T) {
	server := newTestServer(t, testEntities(30), nil)

	_, output, err := server.handleListPage(context.Background(), nil, ListPageInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entities) != 12 {
		t.Fatalf("expected 12 entities, got %d", len(output.Entities))
	}
	if output.State.TotalPages != 3 || output.State.FilteredCount != 30 {
		t.Fatalf("unexpected state: %+v", output.State)
	}
	if !reflect.DeepEqual(output.Pages, []int{1, 2, 3}) {
		t.Fatalf("unexpected pages: %v", output.Pages)
	}
	if len(output.Favorites) != 0 {
		t.Fatalf("expected no favorites, got %v", output.Favorites)
	}
}

func TestToggleTag(t *testing.T) {
	server := newTestServer(t, testEntities(9), nil)

	_, output, err := server.handleToggleTag(context.Background(), nil, ToggleTagInput{Tag: " fire "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(output.State.SelectedTags, []string{"fire"}) {
		t.Fatalf("unexpected selected tags: %v", output.State.SelectedTags)
	}
	if !reflect.DeepEqual(summaryIDs(output.Entities), []int{1, 4, 7}) {
		t.Fatalf("unexpected entities: %v", summaryIDs(output.Entities))
	}

	_, output, err = server.handleToggleTag(context.Background(), nil, ToggleTagInput{Tag: "fire"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.State.SelectedTags) != 0 || output.State.FilteredCount != 9 {
		t.Fatalf("expected filter cleared, got %+v", output.State)
	}
}

func TestToggleTag_Empty(t *testing.T) {
	server := newTestServer(t, testEntities(3), nil)

	if _, _, err := server.handleToggleTag(context.Background(), nil, ToggleTagInput{Tag: "  "}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSetSort(t *testing.T) {
	server := newTestServer(t, testEntities(5), nil)

	_, output, err := server.handleSetSort(context.Background(), nil, SetSortInput{Key: "Weight", Direction: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.State.SortKey != "weight" || output.State.SortDirection != "desc" {
		t.Fatalf("unexpected state: %+v", output.State)
	}
	if !reflect.DeepEqual(summaryIDs(output.Entities), []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected heaviest first, got %v", summaryIDs(output.Entities))
	}

	_, output, err = server.handleSetSort(context.Background(), nil, SetSortInput{Key: "height"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.State.SortDirection != "desc" {
		t.Fatalf("expected direction kept, got %q", output.State.SortDirection)
	}
}

func TestSetSort_Invalid(t *testing.T) {
	server := newTestServer(t, testEntities(3), nil)

	if _, _, err := server.handleSetSort(context.Background(), nil, SetSortInput{Key: "speed"}); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, _, err := server.handleSetSort(context.Background(), nil, SetSortInput{Key: "name", Direction: "sideways"}); err == nil {
		t.Fatalf("expected error for unknown direction")
	}

	_, state, err := server.handleGetState(context.Background(), nil, GetStateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SortKey != "id" {
		t.Fatalf("expected sort key unchanged, got %q", state.SortKey)
	}
}

func TestToggleSortDirection(t *testing.T) {
	server := newTestServer(t, testEntities(3), nil)

	_, output, err := server.handleToggleSortDirection(context.Background(), nil, ToggleSortDirectionInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(summaryIDs(output.Entities), []int{3, 2, 1}) {
		t.Fatalf("unexpected order: %v", summaryIDs(output.Entities))
	}
}

func TestSetSearch(t *testing.T) {
	server := newTestServer(t, testEntities(30), nil)

	if _, _, err := server.handleSetPage(context.Background(), nil, SetPageInput{Page: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, output, err := server.handleSetSearch(context.Background(), nil, SetSearchInput{Text: "MON-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.State.CurrentPage != 1 {
		t.Fatalf("expected page reset, got %d", output.State.CurrentPage)
	}
	if output.State.FilteredCount != 10 {
		t.Fatalf("expected 10 matches, got %d", output.State.FilteredCount)
	}
}

func TestSetPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{name: "in range", page: 2, want: 2},
		{name: "zero clamps to first", page: 0, want: 1},
		{name: "negative clamps to first", page: -4, want: 1},
		{name: "past end clamps to last", page: 9, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, testEntities(30), nil)
			_, output, err := server.handleSetPage(context.Background(), nil, SetPageInput{Page: tt.page})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.State.CurrentPage != tt.want {
				t.Fatalf("expected page %d, got %d", tt.want, output.State.CurrentPage)
			}
			if len(output.Entities) == 0 {
				t.Fatalf("expected a populated page")
			}
		})
	}
}

func TestSetPage_EmptyCatalog(t *testing.T) {
	server := newTestServer(t, nil, nil)

	_, output, err := server.handleSetPage(context.Background(), nil, SetPageInput{Page: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.State.CurrentPage != 1 || output.State.TotalPages != 0 {
		t.Fatalf("unexpected state: %+v", output.State)
	}
	if len(output.Entities) != 0 || len(output.Pages) != 0 {
		t.Fatalf("expected empty view, got %+v", output)
	}
}

func TestToggleFavorite(t *testing.T) {
	storage := &mockStorage{}
	server := newTestServer(t, testEntities(5), storage)

	_, output, err := server.handleToggleFavorite(context.Background(), nil, ToggleFavoriteInput{ID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storage.lastSetKey != catalog.FavoritesKey || storage.lastSetValue != "[3]" {
		t.Fatalf("unexpected persisted favorites: %q=%q", storage.lastSetKey, storage.lastSetValue)
	}
	if !reflect.DeepEqual(summaryIDs(output.Favorites), []int{3}) {
		t.Fatalf("unexpected favorites: %v", summaryIDs(output.Favorites))
	}
	if !reflect.DeepEqual(summaryIDs(output.Entities), []int{1, 2, 4, 5}) {
		t.Fatalf("favorites should not repeat in the page: %v", summaryIDs(output.Entities))
	}
	if !output.Favorites[0].Favorite {
		t.Fatalf("expected favorite flag set")
	}

	_, output, err = server.handleToggleFavorite(context.Background(), nil, ToggleFavoriteInput{ID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storage.lastSetValue != "[]" || len(output.Favorites) != 0 {
		t.Fatalf("expected favorite removed, got %q", storage.lastSetValue)
	}
}

func TestToggleFavorite_Unknown(t *testing.T) {
	storage := &mockStorage{}
	server := newTestServer(t, testEntities(5), storage)

	if _, _, err := server.handleToggleFavorite(context.Background(), nil, ToggleFavoriteInput{ID: 99}); err == nil {
		t.Fatalf("expected error")
	}
	if storage.lastSetKey != "" {
		t.Fatalf("expected nothing persisted, got %q", storage.lastSetKey)
	}
}

func TestGetEntity(t *testing.T) {
	entities := testEntities(3)
	entities[1].Abilities = []string{"blaze"}
	entities[1].Stats = []catalog.Stat{{Name: "hp", Base: 39}}
	server := newTestServer(t, entities, &mockStorage{values: map[string]string{catalog.FavoritesKey: "[2]"}})

	_, output, err := server.handleGetEntity(context.Background(), nil, GetEntityInput{ID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Name != "mon-02" || !output.Favorite {
		t.Fatalf("unexpected entity: %+v", output)
	}
	if !reflect.DeepEqual(output.Stats, []StatOutput{{Name: "hp", Base: 39}}) {
		t.Fatalf("unexpected stats: %+v", output.Stats)
	}

	_, output, err = server.handleGetEntity(context.Background(), nil, GetEntityInput{Name: "MON-03"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.ID != 3 || output.Favorite {
		t.Fatalf("unexpected entity: %+v", output)
	}
}

func TestGetEntity_NotFound(t *testing.T) {
	server := newTestServer(t, testEntities(3), nil)

	if _, _, err := server.handleGetEntity(context.Background(), nil, GetEntityInput{Name: "Missing"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, _, err := server.handleGetEntity(context.Background(), nil, GetEntityInput{}); err == nil {
		t.Fatalf("expected error when neither id nor name is set")
	}
}

func TestGetEntity_Suggestion(t *testing.T) {
	server := newTestServer(t, testEntities(12), nil)

	_, _, err := server.handleGetEntity(context.Background(), nil, GetEntityInput{Name: "mon-1"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "did you mean mon-01") {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestListTags(t *testing.T) {
	server := newTestServer(t, testEntities(3), nil)

	if _, _, err := server.handleToggleTag(context.Background(), nil, ToggleTagInput{Tag: "water"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, output, err := server.handleListTags(context.Background(), nil, ListTagsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Tags) != len(catalog.KnownTags) {
		t.Fatalf("expected %d tags, got %d", len(catalog.KnownTags), len(output.Tags))
	}
	if !reflect.DeepEqual(output.Selected, []string{"water"}) {
		t.Fatalf("unexpected selection: %v", output.Selected)
	}
}

func TestConcurrentToolCalls(t *testing.T) {
	server := newTestServer(t, testEntities(40), &mockStorage{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.Background()
			_, _, _ = server.handleToggleTag(ctx, nil, ToggleTagInput{Tag: "grass"})
			_, _, _ = server.handleToggleFavorite(ctx, nil, ToggleFavoriteInput{ID: i + 1})
			_, _, _ = server.handleListPage(ctx, nil, ListPageInput{})
		}(i)
	}
	wg.Wait()

	_, state, err := server.handleGetState(context.Background(), nil, GetStateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Favorites) != 8 {
		t.Fatalf("expected 8 favorites, got %v", state.Favorites)
	}
	if len(state.SelectedTags) != 0 {
		t.Fatalf("expected an even number of toggles to clear the tag, got %v", state.SelectedTags)
	}
}
