package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexview/internal/config"
	"dexview/internal/pokeapi"
	"dexview/internal/validate"
)

const fetchFailedMessage = "Failed to fetch Pokemon data. Please try again later."

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch the catalog and replace the local cache",
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
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

	client := pokeapi.New(pokeapi.Options{
		BaseURL:     cfg.Source.BaseURL,
		Concurrency: cfg.Source.Concurrency,
		Timeout:     cfg.Source.Timeout,
		Logger:      logger,
	})

	entities, err := client.FetchCatalog(ctx, cfg.Source.Limit)
	if err != nil {
		logger.Error("catalog fetch failed", zap.String("base_url", cfg.Source.BaseURL), zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), fetchFailedMessage)
		return fmt.Errorf("fetching catalog: %w", err)
	}

	report := validate.Run(entities)
	for _, issue := range report.Warnings() {
		logger.Warn("catalog entry", zap.Int("id", issue.ID), zap.String("code", issue.Code), zap.String("message", issue.Message))
	}
	if errs := report.Errors(); len(errs) > 0 {
		printIssues(cmd.ErrOrStderr(), errs)
		return fmt.Errorf("fetched catalog failed validation with %d errors; cache left unchanged", len(errs))
	}

	if err := db.ReplaceEntities(ctx, entities); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d entities.\n", len(entities))
	return nil
}
