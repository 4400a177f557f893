package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dexview/internal/catalog"
	"dexview/internal/theme"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Display one entity in detail",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
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

	styles := theme.For(theme.Load(s.prefs, nil))
	fmt.Fprintln(cmd.OutOrStdout(), renderDetail(styles, entity, s.engine.IsFavorite(entity.ID)))
	return nil
}

// lookup resolves ref as an id when it parses as one, else as a name.
func lookup(e *catalog.Engine, ref string) (catalog.Entity, error) {
	var (
		entity catalog.Entity
		err    error
	)
	if id, convErr := strconv.Atoi(ref); convErr == nil {
		entity, err = e.Lookup(id)
	} else {
		entity, err = e.LookupName(ref)
	}
	if errors.Is(err, catalog.ErrNotFound) {
		if suggestions := e.Suggest(ref, 3); len(suggestions) > 0 {
			return catalog.Entity{}, fmt.Errorf("no entity found for %q; did you mean %s?", ref, strings.Join(suggestions, ", "))
		}
		return catalog.Entity{}, fmt.Errorf("no entity found for %q", ref)
	}
	return entity, err
}
