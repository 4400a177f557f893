package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultPageSize = 12

type Options struct {
	PageSize int
	Logger   *zap.Logger
}

// Engine owns the query state over a fixed entity list and derives the
// filtered, sorted and paginated views from it. It is not safe for
// concurrent use; callers with more than one writer must serialise access.
//
// The filtered view is cached. Every mutator that changes one of its
// inputs (selected tags, sort key, sort direction, search text) bumps
// generation, and the cache is only served while filteredGen matches.
type Engine struct {
	entities []Entity
	storage  Storage
	logger   *zap.Logger
	pageSize int
	collator *collate.Collator

	selectedTags []string
	sortKey      SortKey
	direction    Direction
	searchText   string
	currentPage  int
	favorites    []int

	generation  uint64
	filteredGen uint64
	filtered    []Entity
}

type State struct {
	SelectedTags  []string  `json:"selected_tags"`
	SortKey       SortKey   `json:"sort_key"`
	Direction     Direction `json:"sort_direction"`
	SearchText    string    `json:"search_text"`
	CurrentPage   int       `json:"current_page"`
	PageSize      int       `json:"page_size"`
	TotalPages    int       `json:"total_pages"`
	FilteredCount int       `json:"filtered_count"`
	Favorites     []int     `json:"favorites"`
}

// New starts a session over entities. Favorites are loaded from storage;
// unreadable or malformed data starts the session with no favorites.
// A nil storage keeps favorites in memory only.
func New(entities []Entity, storage Storage, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if storage == nil {
		storage = NewMemoryStorage()
	}

	e := &Engine{
		entities:     cloneEntities(entities),
		storage:      storage,
		logger:       logger,
		pageSize:     pageSize,
		collator:     collate.New(language.English),
		selectedTags: []string{},
		sortKey:      SortByID,
		direction:    Ascending,
		currentPage:  1,
		generation:   1,
	}
	e.favorites = e.loadFavorites()
	return e
}

func (e *Engine) loadFavorites() []int {
	raw, ok, err := e.storage.Get(FavoritesKey)
	if err != nil {
		e.logger.Warn("reading favorites, starting empty", zap.Error(err))
		return []int{}
	}
	if !ok || raw == "" {
		return []int{}
	}
	ids, err := decodeFavorites(raw)
	if err != nil {
		e.logger.Warn("malformed favorites, starting empty", zap.String("key", FavoritesKey), zap.Error(err))
		return []int{}
	}
	return ids
}

func (e *Engine) invalidate() {
	e.generation++
}

func (e *Engine) ToggleTag(tag string) {
	if i := slices.Index(e.selectedTags, tag); i >= 0 {
		e.selectedTags = slices.Delete(e.selectedTags, i, i+1)
	} else {
		e.selectedTags = append(e.selectedTags, tag)
	}
	e.currentPage = 1
	e.invalidate()
}

func (e *Engine) SetSortKey(key SortKey) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}
	if key != e.sortKey {
		e.sortKey = key
		e.invalidate()
	}
	return nil
}

func (e *Engine) ToggleSortDirection() {
	e.direction = e.direction.Reverse()
	e.invalidate()
}

func (e *Engine) SetSearchText(text string) {
	if text != e.searchText {
		e.searchText = text
		e.invalidate()
	}
}

// SetCurrentPage stores page without clamping. Pages outside
// [1, TotalPages()] produce an empty Page().
func (e *Engine) SetCurrentPage(page int) {
	e.currentPage = page
}

func (e *Engine) ToggleFavorite(id int) {
	if i := slices.Index(e.favorites, id); i >= 0 {
		e.favorites = slices.Delete(e.favorites, i, i+1)
	} else {
		e.favorites = append(e.favorites, id)
	}
	e.persistFavorites()
}

func (e *Engine) persistFavorites() {
	raw, err := encodeFavorites(e.favorites)
	if err != nil {
		e.logger.Warn("encoding favorites", zap.Error(err))
		return
	}
	if err := e.storage.Set(FavoritesKey, raw); err != nil {
		e.logger.Warn("persisting favorites", zap.Int("count", len(e.favorites)), zap.Error(err))
	}
}

// Filtered returns the search- and tag-filtered entities in sort order.
// The result is a fresh slice on every call.
func (e *Engine) Filtered() []Entity {
	return cloneEntities(e.view())
}

func (e *Engine) view() []Entity {
	if e.filteredGen == e.generation {
		return e.filtered
	}

	search := strings.ToLower(e.searchText)
	out := make([]Entity, 0, len(e.entities))
	for _, entity := range e.entities {
		if search != "" && !strings.Contains(strings.ToLower(entity.Name), search) {
			continue
		}
		if len(e.selectedTags) > 0 && !entity.HasAnyTag(e.selectedTags) {
			continue
		}
		out = append(out, entity)
	}

	slices.SortStableFunc(out, func(a, b Entity) int {
		c := e.compare(a, b)
		if e.direction == Descending {
			return -c
		}
		return c
	})

	e.filtered = out
	e.filteredGen = e.generation
	return out
}

func (e *Engine) compare(a, b Entity) int {
	switch e.sortKey {
	case SortByName:
		return e.collator.CompareString(a.Name, b.Name)
	case SortByHeight:
		return cmp.Compare(a.Height, b.Height)
	case SortByWeight:
		return cmp.Compare(a.Weight, b.Weight)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

func (e *Engine) Page() []Entity {
	return pageOf(e.view(), e.currentPage, e.pageSize)
}

func pageOf(items []Entity, page, size int) []Entity {
	if page < 1 {
		return []Entity{}
	}
	// Compare before multiplying so huge pages cannot overflow start.
	if page-1 >= (len(items)+size-1)/size {
		return []Entity{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return cloneEntities(items[start:end])
}

func (e *Engine) TotalPages() int {
	n := len(e.view())
	return (n + e.pageSize - 1) / e.pageSize
}

// FavoriteEntities returns the favorites that survive the current search
// and tag filters, in sort order.
func (e *Engine) FavoriteEntities() []Entity {
	out := []Entity{}
	for _, entity := range e.view() {
		if e.IsFavorite(entity.ID) {
			out = append(out, entity.Clone())
		}
	}
	return out
}

// PageNonFavorites is the current page minus entities already listed by
// FavoriteEntities.
func (e *Engine) PageNonFavorites() []Entity {
	page := e.Page()
	return slices.DeleteFunc(page, func(entity Entity) bool {
		return e.IsFavorite(entity.ID)
	})
}

func (e *Engine) Lookup(id int) (Entity, error) {
	for _, entity := range e.entities {
		if entity.ID == id {
			return entity.Clone(), nil
		}
	}
	return Entity{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func (e *Engine) LookupName(name string) (Entity, error) {
	for _, entity := range e.entities {
		if strings.EqualFold(entity.Name, name) {
			return entity.Clone(), nil
		}
	}
	return Entity{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (e *Engine) IsFavorite(id int) bool {
	return slices.Contains(e.favorites, id)
}

func (e *Engine) Entities() []Entity {
	return cloneEntities(e.entities)
}

func (e *Engine) SelectedTags() []string {
	return slices.Clone(e.selectedTags)
}

func (e *Engine) SortKey() SortKey {
	return e.sortKey
}

func (e *Engine) SortDirection() Direction {
	return e.direction
}

func (e *Engine) SearchText() string {
	return e.searchText
}

func (e *Engine) CurrentPage() int {
	return e.currentPage
}

func (e *Engine) PageSize() int {
	return e.pageSize
}

func (e *Engine) Favorites() []int {
	return slices.Clone(e.favorites)
}

func (e *Engine) State() State {
	return State{
		SelectedTags:  e.SelectedTags(),
		SortKey:       e.sortKey,
		Direction:     e.direction,
		SearchText:    e.searchText,
		CurrentPage:   e.currentPage,
		PageSize:      e.pageSize,
		TotalPages:    e.TotalPages(),
		FilteredCount: len(e.view()),
		Favorites:     e.Favorites(),
	}
}
