// Package events lists the recorded gesture telemetry log from the command
// line. It reads the same events database the shell writes, so a swipe that
// misbehaved in a session can be pulled up afterwards and fed to replay.
package events

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kastheco/swerve/config"
	"github.com/kastheco/swerve/telemetry"
)

// NewCommand returns the events subcommand.
func NewCommand() *cobra.Command {
	var (
		limit int
		kinds []string
		tabID string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List recorded gesture telemetry events, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			rec, err := telemetry.NewSQLiteRecorder(filepath.Join(configDir, config.EventsFileName))
			if err != nil {
				return fmt.Errorf("failed to open event log: %w", err)
			}
			defer rec.Close()

			return run(cmd.OutOrStdout(), rec, limit, kinds, tabID)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of events to list")
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "filter by event kind, e.g. toolbar_tab_swipe (repeatable)")
	cmd.Flags().StringVar(&tabID, "tab", "", "filter by target tab id")

	return cmd
}

// run queries the recorder and prints one line per event. Split from the
// cobra plumbing for testing.
func run(out io.Writer, rec telemetry.Recorder, limit int, kindNames []string, tabID string) error {
	filter := telemetry.QueryFilter{Limit: limit, TabID: tabID}
	for _, name := range kindNames {
		filter.Kinds = append(filter.Kinds, telemetry.EventKind(name))
	}

	events, err := rec.Query(filter)
	if err != nil {
		return fmt.Errorf("failed to query event log: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(out, "no recorded events")
		return nil
	}

	for _, e := range events {
		fmt.Fprintln(out, formatEvent(e))
	}
	return nil
}

func formatEvent(e telemetry.Event) string {
	parts := []string{
		e.Timestamp.Local().Format("2006-01-02 15:04:05"),
		fmt.Sprintf("%-18s", e.Kind),
	}
	if e.Direction != "" {
		parts = append(parts, e.Direction)
	}
	if e.TabID != "" {
		parts = append(parts, "tab="+e.TabID)
	}
	if e.Private {
		parts = append(parts, "private")
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "  ")
}
