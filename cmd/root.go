package cmd

import (
	"fmt"
	"log"
	"os"

	"book-my-property/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "book-my-property",
		Short:         "Property listing marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(ServeCmd(), MigrateCmd(), CreateUserCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and the logger shared by every command.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, nil, err
		}
	}

	return config, logger, nil
}
