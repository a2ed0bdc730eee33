package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var resetTables bool

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "create or upgrade the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openDB(ctx, cfg)
		if err != nil {
			slog.Error("Failed to prepare database", "error", err)
			return err
		}
		defer db.Close()

		if resetTables {
			slog.Warn("Dropping all rolekeeper data", slog.String("type", "db"))
			if err := db.ResetAppTables(ctx); err != nil {
				return err
			}
		}

		version, err := db.SchemaVersion(ctx)
		if err != nil {
			return err
		}

		slog.Info("Migration completed successfully!",
			slog.String("type", "db"),
			slog.Int("schema_version", version))
		return nil
	},
}

func init() {
	migrateCMD.Flags().BoolVar(&resetTables, "reset", false, "empty every table after migrating")
	rootCmd.AddCommand(migrateCMD)
}
