package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"womenhub/internal/cache"
	"womenhub/internal/models"
	"womenhub/internal/repository"
	"womenhub/internal/seed"
	"womenhub/internal/service"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create all tables and print a per-table summary",
	Args:  cobra.NoArgs,
	RunE:  runInitDB,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample jobs into an empty jobs table and the sample mentors",
	Long: `seed inserts the sample jobs when the jobs table is empty and every sample
mentor whose email is not registered yet.

When REDIS_ADDR is set the cached job and mentor lists are cleared so running
API servers pick up the new rows. Servers using the in-memory cache see them
once CACHE_TTL expires.`,
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runInitDB(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	report, initErr := db.InitSchema(ctx)
	printTableReport(out, report)

	tables, err := db.ListTables(ctx)
	if err == nil {
		fmt.Fprintf(out, "\n%d tables in database\n", len(tables))
	}

	if initErr != nil {
		return fmt.Errorf("initdb: %w", initErr)
	}
	return err
}

func printTableReport(w io.Writer, report []models.TableStatus) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tSTATUS\tERROR")
	for _, s := range report {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Status, s.Error)
	}
	tw.Flush()
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	res, err := seed.Run(ctx, repository.NewRepository(db), logger)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if res.Jobs+res.Mentors > 0 {
		if err := clearSharedCache(ctx); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cached lists not cleared: %v\n", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d jobs and %d mentors\n", res.Jobs, res.Mentors)
	return nil
}

// clearSharedCache drops the seeded lists from Redis. Without REDIS_ADDR there
// is nothing shared to clear.
func clearSharedCache(ctx context.Context) error {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rc, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rc.Close()

	service.InvalidateSeeded(ctx, cache.NewLoader(rc, cfg.Cache.TTL, logger.With(zap.String("cmd", "seed"))))
	return nil
}
