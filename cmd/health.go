package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
)

const healthTimeout = 5 * time.Second

var healthCmd = &cobra.Command{
	Use:          "health",
	Short:        "Check that the prediction service is up",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLog(debug, os.Stderr, true, cfg.GetAPIKey())

		clf, err := classifier.New(cfg)
		if err != nil {
			return err
		}
		checker, ok := clf.(classifier.HealthChecker)
		if !ok {
			return fmt.Errorf("backend %q has no health endpoint", cfg.GetBackend())
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()
		status, err := checker.Health(ctx)
		if err != nil {
			return fmt.Errorf("%s is unreachable: %w", cfg.GetBaseURL(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Endpoint: %s\nStatus: %s\nModel loaded: %t\n", cfg.GetBaseURL(), status.Status, status.ModelLoaded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
