package cmd

import (
	"context"
	"fmt"
	"strconv"

	"book-my-property/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func MigrateCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate [up|down] [steps]",
		Short: "Apply or roll back database migrations",
		Long: `Applies the embedded SQL migrations in order. "up" without steps applies everything
pending; "down" without steps rolls back the most recent migration.`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := args[0]
			if direction != "up" && direction != "down" {
				return fmt.Errorf("unknown direction %q, want up or down", direction)
			}

			steps := 0
			if direction == "down" {
				steps = 1
			}
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive number, got %q", args[1])
				}
				steps = n
			}

			return migrate(cmd.Context(), direction, steps, seed)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", true, "include seed data migrations when migrating up")
	return cmd
}

func migrate(ctx context.Context, direction string, steps int, seed bool) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, logger)
	if err != nil {
		return err
	}

	var applied int
	if direction == "up" {
		applied, err = migrator.Up(ctx, steps, seed)
	} else {
		applied, err = migrator.Down(ctx, steps)
	}
	if err != nil {
		return err
	}

	logger.Info("Migrations finished",
		zap.String("direction", direction),
		zap.Int("count", applied))
	return nil
}
