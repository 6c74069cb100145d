// Package cli is the terminal host for the application store. It holds no
// state of its own: every command is a thin translation between flags and
// the repository API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockedby/jobtrack/internal/config"
	"github.com/blockedby/jobtrack/internal/database"
	"github.com/blockedby/jobtrack/internal/logger"
	"github.com/blockedby/jobtrack/internal/repository"
)

var (
	db   *database.DB
	repo *repository.ApplicationsRepository
)

var rootCmd = &cobra.Command{
	Use:           "jobtrack",
	Short:         "Track job applications from the terminal",
	Long:          "Jobtrack keeps a local record of your job applications: company, position, status, salary range and the resume you sent.",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		db, err = database.New(cmd.Context(), cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		repo = repository.NewApplicationsRepository(db, logger.Get())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setStatusCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
