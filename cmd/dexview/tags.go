package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dexview/internal/catalog"
	"dexview/internal/config"
	"dexview/internal/store"
	"dexview/internal/theme"
)

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags available for filtering",
		Args:  cobra.NoArgs,
		RunE:  runTags,
	}
}

func runTags(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	entities, err := db.ListEntities(ctx)
	if err != nil {
		return err
	}
	counts := map[string]int{}
	for _, entity := range entities {
		for _, tag := range entity.Tags {
			counts[tag]++
		}
	}

	styles := theme.For(theme.Load(store.Settings(ctx, db), nil))
	for _, tag := range catalog.KnownTags {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Tag(tag), styles.Muted.Render(strconv.Itoa(counts[tag])))
	}
	return nil
}
