package cmd

import (
	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/model"
)

func AddCmd(s *session) *cobra.Command {
	var (
		creator int64
		intent  int64
		name    string
		active  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a goal intent snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := s.app.GoalIntentDataService.Create(cmd.Context(), creator, intent, name, active)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().Int64Var(&creator, "creator", 0, "creator user id")
	cmd.Flags().Int64Var(&intent, "intent", 0, "goal intent id")
	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().BoolVar(&active, "active", true, "whether the goal is active")
	_ = cmd.MarkFlagRequired("creator")
	_ = cmd.MarkFlagRequired("intent")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func GetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one goal intent snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			data, err := s.app.GoalIntentDataService.ByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
}

func CurrentCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "current INTENT_ID",
		Short: "Show the latest snapshot of a goal intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			data, err := s.app.GoalIntentDataService.Current(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
}

func SnapshotCmd(s *session) *cobra.Command {
	var (
		creator int64
		intent  int64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record a new snapshot from the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			var name *string
			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				name = &v
			}
			var active *bool
			if cmd.Flags().Changed("active") {
				v, _ := cmd.Flags().GetBool("active")
				active = &v
			}

			data, err := s.app.GoalIntentDataService.Snapshot(cmd.Context(), creator, intent, name, active)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().Int64Var(&creator, "creator", 0, "creator user id")
	cmd.Flags().Int64Var(&intent, "intent", 0, "goal intent id")
	cmd.Flags().String("name", "", "new goal name")
	cmd.Flags().Bool("active", true, "new active flag")
	_ = cmd.MarkFlagRequired("creator")
	_ = cmd.MarkFlagRequired("intent")
	return cmd
}

func QueryCmd(s *session) *cobra.Command {
	var q model.GoalIntentDataQuery

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search goal intent snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			q.GoalIntentDataID = changedInt64(cmd, "id")
			q.CreationTime = changedInt64(cmd, "time")
			q.MinCreationTime = changedInt64(cmd, "min-time")
			q.MaxCreationTime = changedInt64(cmd, "max-time")
			q.CreatorUserID = changedInt64(cmd, "creator")
			q.GoalIntentID = changedInt64(cmd, "intent")
			if flags.Changed("name") {
				v, _ := flags.GetString("name")
				q.Name = &v
			}
			if flags.Changed("partial-name") {
				v, _ := flags.GetString("partial-name")
				q.PartialName = &v
			}
			if flags.Changed("active") {
				v, _ := flags.GetBool("active")
				q.Active = &v
			}

			results, err := s.app.GoalIntentDataService.Query(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}

	flags := cmd.Flags()
	flags.Int64("id", 0, "exact goal intent data id")
	flags.Int64("time", 0, "exact creation time (epoch millis)")
	flags.Int64("min-time", 0, "earliest creation time (epoch millis)")
	flags.Int64("max-time", 0, "latest creation time (epoch millis)")
	flags.Int64("creator", 0, "creator user id")
	flags.Int64("intent", 0, "goal intent id")
	flags.String("name", "", "exact name")
	flags.String("partial-name", "", "substring of the name")
	flags.Bool("active", false, "active flag")
	flags.BoolVar(&q.OnlyRecent, "only-recent", false, "only the latest snapshot per goal intent")
	flags.Int64Var(&q.Offset, "offset", 0, "rows to skip")
	flags.Int64Var(&q.Count, "count", 0, "page size (0 uses the configured default)")
	return cmd
}

func changedInt64(cmd *cobra.Command, name string) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt64(name)
	return &v
}
