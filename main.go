package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/swerve/app"
	"github.com/kastheco/swerve/cmd/events"
	"github.com/kastheco/swerve/cmd/replay"
	"github.com/kastheco/swerve/config"
	sentrypkg "github.com/kastheco/swerve/internal/sentry"
	"github.com/kastheco/swerve/log"
	"github.com/kastheco/swerve/tabs"
	"github.com/kastheco/swerve/telemetry"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "swerve",
		Short: "swerve - a terminal browser shell with toolbar swipe navigation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.IsTelemetryEnabled())
			defer log.Close()

			sentrypkg.SetContext(cfg.ToolbarPosition, cfg.IsRTL(), false)

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}

			sess, err := tabs.OpenSession(filepath.Join(configDir, config.SessionFileName))
			if err != nil {
				return fmt.Errorf("failed to open session store: %w", err)
			}
			store, err := sess.Load()
			if err != nil {
				log.WarningLog.Printf("failed to load session, starting fresh: %v", err)
				store = tabs.NewStore()
			}
			defer sess.Close()

			rec := telemetry.Recorder(telemetry.NopRecorder())
			if cfg.IsTelemetryEnabled() {
				sqlRec, err := telemetry.NewSQLiteRecorder(filepath.Join(configDir, config.EventsFileName))
				if err != nil {
					log.WarningLog.Printf("failed to open event log: %v", err)
				} else {
					rec = sqlRec
				}
			}
			defer rec.Close()

			return app.Run(ctx, cfg, store, sess, rec)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the saved session and gesture event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}

			sess, err := tabs.OpenSession(filepath.Join(configDir, config.SessionFileName))
			if err != nil {
				return fmt.Errorf("failed to open session store: %w", err)
			}
			defer sess.Close()
			if err := sess.Reset(); err != nil {
				return fmt.Errorf("failed to reset session: %w", err)
			}
			fmt.Println("Session has been reset")

			rec, err := telemetry.NewSQLiteRecorder(filepath.Join(configDir, config.EventsFileName))
			if err != nil {
				return fmt.Errorf("failed to open event log: %w", err)
			}
			defer rec.Close()
			if err := rec.Reset(); err != nil {
				return fmt.Errorf("failed to reset event log: %w", err)
			}
			fmt.Println("Gesture event log has been reset")

			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Session: %s\n", filepath.Join(configDir, config.SessionFileName))
			fmt.Printf("Events: %s\n", filepath.Join(configDir, config.EventsFileName))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of swerve",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("swerve version %s\n", version)
			fmt.Printf("https://github.com/kastheco/swerve/releases/tag/v%s\n", version)
		},
	}
)

func init() {
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(replay.NewCommand())
	rootCmd.AddCommand(events.NewCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
