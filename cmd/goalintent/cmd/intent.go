package cmd

import (
	"github.com/spf13/cobra"
)

func IntentCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intent",
		Short: "Goal intent commands",
	}

	cmd.AddCommand(intentAddCmd(s))
	cmd.AddCommand(intentGetCmd(s))
	return cmd
}

func intentAddCmd(s *session) *cobra.Command {
	var creator int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, err := s.app.GoalIntentDataService.CreateIntent(cmd.Context(), creator)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), intent)
		},
	}

	cmd.Flags().Int64Var(&creator, "creator", 0, "creator user id")
	_ = cmd.MarkFlagRequired("creator")
	return cmd
}

func intentGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a goal intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			intent, err := s.app.GoalIntentDataService.Intent(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), intent)
		},
	}
}
