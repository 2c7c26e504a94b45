package main

import (
	"errors"
	"fmt"

	"anoa.com/casetrack/internal/bootstrap"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	participantService "anoa.com/casetrack/internal/modules/participant/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Push every participant into the search index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.MeiliSearchHost == "" {
				return errors.New("MEILISEARCH_HOST is not set")
			}

			db, err := a.connect()
			if err != nil {
				return err
			}
			if err := bootstrap.Migrate(db); err != nil {
				return err
			}

			svc := participantService.NewService(participantRepo.NewRepository(db), a.newIndex(), a.log)
			n, err := svc.Reindex(cmd.Context())
			if err != nil {
				a.log.Error("reindex stopped", zap.Int("indexed", n), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d participants\n", n)
			return nil
		},
	}
}
