package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/db"
)

func MigrateCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.app.Migrate()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return db.MigrateDown(s.app.DB.DB, s.app.Cfg.DBDriver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := db.Version(s.app.DB.DB, s.app.Cfg.DBDriver)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	})

	return cmd
}
