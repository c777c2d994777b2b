package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/collectives/internal/config"
	"github.com/nfrund/collectives/internal/database"
	"github.com/nfrund/collectives/internal/logging"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the database schema",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), database.Schema())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Apply the schema to the configured SurrealDB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.New()
			cfg := config.New()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, err := database.Connect(ctx, cfg, database.DefaultBackoff())
			if err != nil {
				return err
			}
			defer db.Close(context.Background())

			if err := database.ApplySchema(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	})
	return cmd
}
