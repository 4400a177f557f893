package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dexview/internal/theme"
)

func favoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id|name>",
		Short: "Mark or unmark an entity as favorite",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavorite,
	}
}

func runFavorite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	entity, err := lookup(s.engine, args[0])
	if err != nil {
		return err
	}

	s.engine.ToggleFavorite(entity.ID)
	if s.engine.IsFavorite(entity.ID) {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", displayName(entity.Name))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", displayName(entity.Name))
	}
	return nil
}

func favoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite entities",
		Args:  cobra.NoArgs,
		RunE:  runFavorites,
	}
}

func runFavorites(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	favorites := s.engine.FavoriteEntities()
	if len(favorites) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
		return nil
	}

	styles := theme.For(theme.Load(s.prefs, nil))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Heading.Render(fmt.Sprintf("Favorites (%d)", len(favorites))))
	for _, entity := range favorites {
		fmt.Fprintln(cmd.OutOrStdout(), renderCard(styles, entity, true))
	}
	return nil
}

