package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"dexview/internal/catalog"
)

type ListPageInput struct{}

type ToggleTagInput struct {
	Tag string `json:"tag" jsonschema:"tag to add to or remove from the filter"`
}

type SetSortInput struct {
	Key       string `json:"key" jsonschema:"one of id, name, height, weight"`
	Direction string `json:"direction,omitempty" jsonschema:"asc or desc; unchanged when omitted"`
}

type ToggleSortDirectionInput struct{}

type SetSearchInput struct {
	Text string `json:"text" jsonschema:"case-insensitive substring matched against names; empty clears"`
}

type SetPageInput struct {
	Page int `json:"page" jsonschema:"1-based page number"`
}

type ToggleFavoriteInput struct {
	ID int `json:"id" jsonschema:"entity id"`
}

type GetEntityInput struct {
	ID   int    `json:"id,omitempty" jsonschema:"entity id"`
	Name string `json:"name,omitempty" jsonschema:"entity name, used when id is omitted"`
}

type GetStateInput struct{}

type ListTagsInput struct{}

type StatOutput struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

type EntityOutput struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Tags      []string     `json:"tags"`
	Height    int          `json:"height"`
	Weight    int          `json:"weight"`
	Favorite  bool         `json:"favorite"`
	Sprite    string       `json:"sprite,omitempty"`
	Artwork   string       `json:"artwork,omitempty"`
	Abilities []string     `json:"abilities,omitempty"`
	Stats     []StatOutput `json:"stats,omitempty"`
}

type EntitySummaryOutput struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Favorite bool     `json:"favorite"`
}

type StateOutput struct {
	SelectedTags  []string `json:"selected_tags"`
	SortKey       string   `json:"sort_key"`
	SortDirection string   `json:"sort_direction"`
	SearchText    string   `json:"search_text"`
	CurrentPage   int      `json:"current_page"`
	PageSize      int      `json:"page_size"`
	TotalPages    int      `json:"total_pages"`
	FilteredCount int      `json:"filtered_count"`
	Favorites     []int    `json:"favorites"`
}

type ViewOutput struct {
	State     StateOutput           `json:"state"`
	Favorites []EntitySummaryOutput `json:"favorites"`
	Entities  []EntitySummaryOutput `json:"entities"`
	Pages     []int                 `json:"pages" jsonschema:"page numbers to offer; 0 marks a gap"`
}

type ListTagsOutput struct {
	Tags     []string `json:"tags"`
	Selected []string `json:"selected"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_page",
		Description: "Show the current page of the catalog with favorites and state",
	}, s.handleListPage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "toggle_tag",
		Description: "Add or remove a tag filter; entities matching any selected tag are shown",
	}, s.handleToggleTag)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "set_sort",
		Description: "Choose the sort key and optionally the direction",
	}, s.handleSetSort)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "toggle_sort_direction",
		Description: "Flip between ascending and descending order",
	}, s.handleToggleSortDirection)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "set_search",
		Description: "Filter entities by name",
	}, s.handleSetSearch)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "set_page",
		Description: "Jump to a page",
	}, s.handleSetPage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "toggle_favorite",
		Description: "Mark or unmark an entity as favorite",
	}, s.handleToggleFavorite)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_entity",
		Description: "Retrieve the full detail of one entity",
	}, s.handleGetEntity)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_state",
		Description: "Return the current query state",
	}, s.handleGetState)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_tags",
		Description: "List the tags available for filtering",
	}, s.handleListTags)
}

func (s *Server) handleListPage(ctx context.Context, req *sdk.CallToolRequest, input ListPageInput) (*sdk.CallToolResult, ViewOutput, error) {
	var out ViewOutput
	s.withEngine(func(e *catalog.Engine) {
		out = viewOutput(e)
	})
	return nil, out, nil
}

func (s *Server) handleToggleTag(ctx context.Context, req *sdk.CallToolRequest, input ToggleTagInput) (*sdk.CallToolResult, ViewOutput, error) {
	tag := strings.TrimSpace(input.Tag)
	if tag == "" {
		return nil, ViewOutput{}, fmt.Errorf("tag is required")
	}
	var out ViewOutput
	s.withEngine(func(e *catalog.Engine) {
		e.ToggleTag(tag)
		out = viewOutput(e)
	})
	return nil, out, nil
}

func (s *Server) handleSetSort(ctx context.Context, req *sdk.CallToolRequest, input SetSortInput) (*sdk.CallToolResult, ViewOutput, error) {
	key, err := catalog.ParseSortKey(input.Key)
	if err != nil {
		return nil, ViewOutput{}, err
	}
	var direction catalog.Direction
	if input.Direction != "" {
		direction, err = catalog.ParseDirection(input.Direction)
		if err != nil {
			return nil, ViewOutput{}, err
		}
	}

	var out ViewOutput
	s.withEngine(func(e *catalog.Engine) {
		err = e.SetSortKey(key)
		if err != nil {
			return
		}
		if direction != "" && direction != e.SortDirection() {
			e.ToggleSortDirection()
		}
		out = viewOutput(e)
	})
	if err != nil {
		return nil, ViewOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleToggleSortDirection(ctx context.Context, req *sdk.CallToolRequest, input ToggleSortDirectionInput) (*sdk.CallToolResult, ViewOutput, error) {
	var out ViewOutput
	s.withEngine(func(e *catalog.Engine) {
		e.ToggleSortDirection()
		out = viewOutput(e)
	})
	return nil, out, nil
}

func (s *Server) handleSetSearch(ctx context.Context, req *sdk.CallToolRequest, input SetSearchInput) (*sdk.CallToolResult, ViewOutput, error) {
	var out ViewOutput
	s.withEngine(func(e *catalog.Engine) {
		e.SetSearchText(input.Text)
		// A narrower result set can leave the current page past the end.
		e.SetCurrentPage(1)
		out = viewOutput(e)
	})
	return nil, out, nil
}

// handleSetPage clamps to the available pages. The engine itself accepts
// any page; the clamp is this surface's choice.
func (s *Server) handleSetPage(ctx context.Context, req *sdk.CallToolRequest, input SetPageInput) (*sdk.CallToolResult, ViewOutput, error) {
	var out ViewOutput
	s.withEngine(func(e *catalog.Engine) {
		page := min(max(input.Page, 1), max(e.TotalPages(), 1))
		if page != input.Page {
			s.logger.Debug("clamped page", zap.Int("requested", input.Page), zap.Int("page", page))
		}
		e.SetCurrentPage(page)
		out = viewOutput(e)
	})
	return nil, out, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *sdk.CallToolRequest, input ToggleFavoriteInput) (*sdk.CallToolResult, ViewOutput, error) {
	var out ViewOutput
	var err error
	s.withEngine(func(e *catalog.Engine) {
		if _, err = e.Lookup(input.ID); err != nil {
			return
		}
		e.ToggleFavorite(input.ID)
		out = viewOutput(e)
	})
	if err != nil {
		return nil, ViewOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleGetEntity(ctx context.Context, req *sdk.CallToolRequest, input GetEntityInput) (*sdk.CallToolResult, EntityOutput, error) {
	if input.ID == 0 && strings.TrimSpace(input.Name) == "" {
		return nil, EntityOutput{}, fmt.Errorf("id or name is required")
	}

	var out EntityOutput
	var err error
	var suggestions []string
	s.withEngine(func(e *catalog.Engine) {
		var entity catalog.Entity
		if input.ID != 0 {
			entity, err = e.Lookup(input.ID)
		} else {
			entity, err = e.LookupName(strings.TrimSpace(input.Name))
		}
		switch {
		case err == nil:
			out = entityOutput(entity, e.IsFavorite(entity.ID))
		case input.ID == 0:
			suggestions = e.Suggest(input.Name, 3)
		}
	})
	if errors.Is(err, catalog.ErrNotFound) {
		if len(suggestions) > 0 {
			return nil, EntityOutput{}, fmt.Errorf("entity not found; did you mean %s?", strings.Join(suggestions, ", "))
		}
		return nil, EntityOutput{}, fmt.Errorf("entity not found")
	}
	if err != nil {
		return nil, EntityOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleGetState(ctx context.Context, req *sdk.CallToolRequest, input GetStateInput) (*sdk.CallToolResult, StateOutput, error) {
	var out StateOutput
	s.withEngine(func(e *catalog.Engine) {
		out = stateOutput(e.State())
	})
	return nil, out, nil
}

func (s *Server) handleListTags(ctx context.Context, req *sdk.CallToolRequest, input ListTagsInput) (*sdk.CallToolResult, ListTagsOutput, error) {
	var out ListTagsOutput
	s.withEngine(func(e *catalog.Engine) {
		out = ListTagsOutput{
			Tags:     append([]string{}, catalog.KnownTags...),
			Selected: e.SelectedTags(),
		}
	})
	return nil, out, nil
}

func viewOutput(e *catalog.Engine) ViewOutput {
	state := e.State()
	return ViewOutput{
		State:     stateOutput(state),
		Favorites: summaryOutputs(e, e.FavoriteEntities()),
		Entities:  summaryOutputs(e, e.PageNonFavorites()),
		Pages:     catalog.PageWindow(state.CurrentPage, state.TotalPages),
	}
}

func stateOutput(state catalog.State) StateOutput {
	return StateOutput{
		SelectedTags:  append([]string{}, state.SelectedTags...),
		SortKey:       string(state.SortKey),
		SortDirection: string(state.Direction),
		SearchText:    state.SearchText,
		CurrentPage:   state.CurrentPage,
		PageSize:      state.PageSize,
		TotalPages:    state.TotalPages,
		FilteredCount: state.FilteredCount,
		Favorites:     append([]int{}, state.Favorites...),
	}
}

func summaryOutputs(e *catalog.Engine, entities []catalog.Entity) []EntitySummaryOutput {
	out := make([]EntitySummaryOutput, 0, len(entities))
	for _, entity := range entities {
		out = append(out, EntitySummaryOutput{
			ID:       entity.ID,
			Name:     entity.Name,
			Tags:     append([]string{}, entity.Tags...),
			Favorite: e.IsFavorite(entity.ID),
		})
	}
	return out
}

func entityOutput(entity catalog.Entity, favorite bool) EntityOutput {
	stats := make([]StatOutput, 0, len(entity.Stats))
	for _, stat := range entity.Stats {
		stats = append(stats, StatOutput{Name: stat.Name, Base: stat.Base})
	}
	return EntityOutput{
		ID:        entity.ID,
		Name:      entity.Name,
		Tags:      append([]string{}, entity.Tags...),
		Height:    entity.Height,
		Weight:    entity.Weight,
		Favorite:  favorite,
		Sprite:    entity.Sprite,
		Artwork:   entity.Artwork,
		Abilities: append([]string{}, entity.Abilities...),
		Stats:     stats,
	}
}
