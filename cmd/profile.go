package cmd

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
	"github.com/Rorical/EmotionAnalyzer/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage classifier profiles",
	Long:  `Manage profiles for different prediction services and LLM backends.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile(cfg.Profiles[name], "    ")
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		name := args[0]
		profile, exists := cfg.Profiles[name]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", name)
		}

		fmt.Printf("Profile: %s\n", name)
		printProfile(profile, "")
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			name, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[name]; exists {
			log.Fatalf("Profile '%s' already exists", name)
		}

		cfg.Profiles[name] = promptProfile(config.DefaultProfile())

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", name)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		name := selectProfile(cfg, args, "Select profile to edit", "")
		profile, exists := cfg.Profiles[name]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", name)
		}

		cfg.Profiles[name] = promptProfile(profile)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", name)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		name := selectProfile(cfg, args, "Select profile to delete", "")
		if _, exists := cfg.Profiles[name]; !exists {
			log.Fatalf("Profile '%s' does not exist", name)
		}

		// Confirm deletion
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'", name),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		removeProfile(cfg, name)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", name)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}

		name := selectProfile(cfg, args, "Select profile to switch to", cfg.ActiveProfile)
		if err := cfg.UseProfile(name); err != nil {
			log.Fatalf("Failed to switch profile: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", name)
	},
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}

// profileNames returns the sorted profile names, without skip
func profileNames(cfg *config.Config, skip string) []string {
	names := slices.Sorted(maps.Keys(cfg.Profiles))
	return slices.DeleteFunc(names, func(n string) bool { return n == skip })
}

// selectProfile takes the name from args or lets the user pick one
func selectProfile(cfg *config.Config, args []string, label, skip string) string {
	if len(args) > 0 {
		return args[0]
	}

	names := profileNames(cfg, skip)
	if len(names) == 0 {
		log.Fatalf("No profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

// removeProfile deletes name, moving the active profile elsewhere and
// recreating the default profile when the last one goes.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)
	if cfg.ActiveProfile != name {
		return
	}
	if rest := profileNames(cfg, ""); len(rest) > 0 {
		cfg.ActiveProfile = rest[0]
		return
	}
	cfg.ActiveProfile = "default"
	cfg.Profiles["default"] = config.DefaultProfile()
}

func printProfile(profile config.Profile, indent string) {
	backend := profile.Backend
	if backend == "" {
		backend = classifier.BackendHTTP
	}
	fmt.Printf("%sBackend: %s\n", indent, backend)
	if profile.BaseURL != "" {
		fmt.Printf("%sBase URL: %s\n", indent, profile.BaseURL)
	}
	if backend == classifier.BackendOpenAI {
		fmt.Printf("%sModel: %s\n", indent, profile.Model)
		hasKey := "Not set"
		if profile.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Printf("%sAPI Key: %s\n", indent, hasKey)
	}
	if profile.Timeout != "" {
		fmt.Printf("%sTimeout: %s\n", indent, profile.Timeout)
	}
}

// promptProfile asks for every profile field, using current as defaults
func promptProfile(current config.Profile) config.Profile {
	profile := current

	backends := []string{classifier.BackendHTTP, classifier.BackendOpenAI}
	backendPrompt := promptui.Select{
		Label:     "Backend",
		Items:     backends,
		CursorPos: max(slices.Index(backends, current.Backend), 0),
	}
	_, backend, err := backendPrompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	profile.Backend = backend

	urlLabel := "Base URL"
	if backend == classifier.BackendOpenAI {
		urlLabel = "Base URL (optional, empty for api.openai.com)"
		if profile.BaseURL == config.DefaultBaseURL {
			profile.BaseURL = ""
		}
	}
	profile.BaseURL = runPrompt(promptui.Prompt{Label: urlLabel, Default: profile.BaseURL})

	if backend == classifier.BackendOpenAI {
		profile.APIKey = runPrompt(promptui.Prompt{Label: "API Key", Default: profile.APIKey, Mask: '*'})
		model := profile.Model
		if model == "" {
			model = config.DefaultModel
		}
		profile.Model = runPrompt(promptui.Prompt{Label: "Model", Default: model})
	}

	profile.Timeout = runPrompt(promptui.Prompt{
		Label:   "Request timeout",
		Default: profile.Timeout,
		Validate: func(s string) error {
			if s == "" {
				return nil
			}
			d, err := time.ParseDuration(s)
			if err != nil || d <= 0 {
				return fmt.Errorf("invalid duration %q", s)
			}
			return nil
		},
	})

	return profile
}

func runPrompt(prompt promptui.Prompt) string {
	value, err := prompt.Run()
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	return value
}
