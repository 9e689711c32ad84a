package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/spf13/cobra"

	"github.com/Rorical/EmotionAnalyzer/internal/app"
	"github.com/Rorical/EmotionAnalyzer/internal/config"
)

var revision = "unknown"

var (
	profileName string
	apiURL      string
	debug       bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:     "emotion-analyzer",
	Short:   "Detect the emotional tone of text",
	Long:    `EmotionAnalyzer classifies text into one of six emotions using a prediction service and remembers your recent analyses.`,
	Version: revision,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the analyzer UI
		runTUI(loadConfig())
	},
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "profile to use for this run (not saved)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "prediction service URL, overrides the profile")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging (the UI writes to debug.log in the config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable color output")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}

// loadConfig reads the config and applies the per-run flags
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if profileName != "" {
		if err := cfg.UseProfile(profileName); err != nil {
			log.Fatalf("Failed to use profile: %v", err)
		}
	}
	if apiURL != "" {
		cfg.OverrideBaseURL(apiURL)
	}
	color.NoColor = color.NoColor || noColor
	return cfg
}

func runTUI(cfg *config.Config) {
	// the UI owns the terminal, logs go to a file or nowhere
	var out io.Writer = io.Discard
	if debug {
		f, err := os.OpenFile(filepath.Join(cfg.Dir(), "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			log.Fatalf("Failed to open debug log: %v", err)
		}
		defer f.Close()
		out = f
	}
	setupLog(debug, out, false, cfg.GetAPIKey())

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Printf("[ERROR] application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
	}
}

// setupLog routes the std logger through lgr. Without dbg everything is
// discarded; secrets are masked in every line.
func setupLog(dbg bool, out io.Writer, colorize bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.Out(out), lgr.Err(out)}
	}

	if colorize && !color.NoColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
