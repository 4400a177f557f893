package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dexview/internal/catalog"
	"dexview/internal/theme"
)

type listOptions struct {
	search string
	tags   []string
	sort   string
	desc   bool
	page   int
}

func listCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.search, "search", "", "Case-insensitive name filter")
	cmd.Flags().StringArrayVar(&opts.tags, "tag", nil, "Tag to filter by (repeatable, any match)")
	cmd.Flags().StringVar(&opts.sort, "sort", string(catalog.SortByID), "Sort key: id, name, height or weight")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "Sort descending")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number")
	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	if opts.page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", opts.page)
	}
	key, err := catalog.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	e := s.engine
	seen := map[string]bool{}
	for _, tag := range opts.tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		e.ToggleTag(tag)
	}
	if err := e.SetSortKey(key); err != nil {
		return err
	}
	if opts.desc {
		e.ToggleSortDirection()
	}
	e.SetSearchText(opts.search)
	// ToggleTag resets the page, so it goes last.
	e.SetCurrentPage(opts.page)

	styles := theme.For(theme.Load(s.prefs, nil))
	out := cmd.OutOrStdout()

	state := e.State()
	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("%d matching, sorted by %s (%s)",
		state.FilteredCount, state.SortKey, state.Direction)))

	if favorites := e.FavoriteEntities(); len(favorites) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Heading.Render("Favorites"))
		for _, entity := range favorites {
			fmt.Fprintln(out, renderCard(styles, entity, true))
		}
	}

	page := e.PageNonFavorites()
	fmt.Fprintln(out)
	if state.FilteredCount == 0 {
		fmt.Fprintln(out, styles.Muted.Render("No entities found."))
		return nil
	}
	if state.CurrentPage > state.TotalPages {
		fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("Page %d is past the last page (%d).", state.CurrentPage, state.TotalPages)))
	}
	for _, entity := range page {
		fmt.Fprintln(out, renderCard(styles, entity, false))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderPager(styles, state.CurrentPage, state.TotalPages))
	return nil
}
