package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the analyzer",
	Long:  `Switch to the specified profile, save it as active and immediately start the analyzer UI.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName = args[0]
		cfg := loadConfig()

		// Save config with new active profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runTUI(cfg)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
