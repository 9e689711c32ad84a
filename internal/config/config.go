package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultBaseURL        = "http://localhost:5000"
	DefaultTimeout        = 30 * time.Second
	DefaultHistoryBackend = "file"
	DefaultModel          = "gpt-4o-mini"

	homeEnv   = "EMOTIONANALYZER_HOME"
	apiURLEnv = "EMOTION_API_URL"
)

type Profile struct {
	Backend string `json:"backend,omitempty"` // "http" (default) or "openai"
	BaseURL string `json:"base_url,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	Model   string `json:"model,omitempty"`
	Timeout string `json:"timeout,omitempty"` // Go duration, e.g. "30s"
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	HistoryBackend string             `json:"history_backend,omitempty"` // "file", "sqlite" or "memory"

	currentProfile  *Profile
	baseURLOverride string
	dir             string
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.dir = filepath.Dir(configPath)

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// UseProfile activates name for this process without saving it
func (c *Config) UseProfile(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

// OverrideBaseURL replaces the endpoint for this process (e.g. --api-url)
func (c *Config) OverrideBaseURL(url string) {
	c.baseURLOverride = url
}

func (c *Config) GetBackend() string {
	if c.currentProfile == nil || c.currentProfile.Backend == "" {
		return "http"
	}
	return c.currentProfile.Backend
}

// GetBaseURL resolves the classifier endpoint. For the http backend the
// precedence is override, EMOTION_API_URL, profile, DefaultBaseURL.
func (c *Config) GetBaseURL() string {
	if c.baseURLOverride != "" {
		return c.baseURLOverride
	}
	if c.GetBackend() != "http" {
		return c.GetLLMEndpoint()
	}
	if env := os.Getenv(apiURLEnv); env != "" {
		return env
	}
	if c.currentProfile != nil && c.currentProfile.BaseURL != "" {
		return c.currentProfile.BaseURL
	}
	return DefaultBaseURL
}

// GetLLMEndpoint is the OpenAI-compatible base URL, empty means api.openai.com
func (c *Config) GetLLMEndpoint() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetAPIKey() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

// GetTimeout returns the per-request timeout; invalid values fall back to DefaultTimeout
func (c *Config) GetTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.currentProfile.Timeout)
	if err != nil || d <= 0 {
		log.Printf("[WARN] invalid timeout %q in profile %s, using %v", c.currentProfile.Timeout, c.ActiveProfile, DefaultTimeout)
		return DefaultTimeout
	}
	return d
}

func (c *Config) GetHistoryBackend() string {
	if c.HistoryBackend == "" {
		return DefaultHistoryBackend
	}
	return c.HistoryBackend
}

// Dir is the directory holding config.json and local state
func (c *Config) Dir() string {
	return c.dir
}

func getConfigPath() (string, error) {
	var configDir string

	// Use EMOTIONANALYZER_HOME if set, otherwise use user's home directory
	if home := os.Getenv(homeEnv); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".emotionanalyzer", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultProfile targets the local prediction service
func DefaultProfile() Profile {
	return Profile{
		Backend: "http",
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout.String(),
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": DefaultProfile(),
		},
		ActiveProfile:  "default",
		HistoryBackend: DefaultHistoryBackend,
	}

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
