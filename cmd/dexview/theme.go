package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dexview/internal/config"
	"dexview/internal/store"
	"dexview/internal/theme"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Show or toggle the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE:      runTheme,
	}
}

func runTheme(cmd *cobra.Command, args []string) error {
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

	prefs := store.Settings(ctx, db)
	current := theme.Load(prefs, nil)
	if len(args) == 1 {
		current, err = theme.Toggle(prefs, nil)
		if err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
	}

	styles := theme.For(current)
	fmt.Fprintln(cmd.OutOrStdout(), styles.Title.Render(fmt.Sprintf("Theme: %s", current)))
	return nil
}
