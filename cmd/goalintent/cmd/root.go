package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/logger"
)

// session holds the app for the duration of one command.
type session struct {
	app *app.App
}

// close runs after every command, including failed ones, which cobra does
// not follow with PersistentPostRunE.
func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	return s.app.Close()
}

// Execute runs the command line and closes the app it opened.
func Execute() error {
	root, s := newRootCmd()
	err := root.Execute()
	return errors.Join(err, s.close())
}

func newRootCmd() (*cobra.Command, *session) {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:           "goalintent",
		Short:         "Inspect and record goal intent snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), cfg.LogLevel, cfg.SentryDSN)

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			s.app = a
			return nil
		},
	}

	rootCmd.AddCommand(MigrateCmd(s))
	rootCmd.AddCommand(IntentCmd(s))
	rootCmd.AddCommand(AddCmd(s))
	rootCmd.AddCommand(GetCmd(s))
	rootCmd.AddCommand(CurrentCmd(s))
	rootCmd.AddCommand(SnapshotCmd(s))
	rootCmd.AddCommand(QueryCmd(s))

	return rootCmd, s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}
