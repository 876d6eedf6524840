package main

import (
	"bookmarks_api/internal/config"
	"bookmarks_api/internal/storage"
	"fmt"

	"github.com/spf13/cobra"
)

func newCleanDBCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cleandb",
		Short: "Delete every bookmark and user in one transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe the database without --yes")
			}

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg := config.MustLoad(configPath)
			lgr := setupLogger(cfg.Env)

			st, err := storage.NewPostgresStorage(cmd.Context(), cfg.DbURL, lgr)
			if err != nil {
				return err
			}
			defer st.Close()

			lgr.Info("cleaning db...")

			if err := st.CleanDB(cmd.Context()); err != nil {
				return err
			}

			lgr.Info("db cleaned")

			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all data")

	return cmd
}
