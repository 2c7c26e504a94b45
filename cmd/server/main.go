package main

import (
	"fmt"
	"os"

	"anoa.com/casetrack/internal/config"
	"anoa.com/casetrack/pkg/database"
	"anoa.com/casetrack/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds what every subcommand shares. It is filled in by the root
// command's pre-run hook, before any RunE executes.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "casetrack",
		Short:         "Case management API for participant services, referrals and outcomes",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(
		a.serveCmd(),
		a.migrateCmd(),
		a.createUserCmd(),
		a.reindexCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) connect() (*gorm.DB, error) {
	return database.Connect(database.Options{
		Driver: a.cfg.DBDriver,
		DSN:    a.cfg.DatabaseURL,
		Debug:  a.cfg.IsDevelopment(),
	})
}
