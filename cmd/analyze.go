package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
	"github.com/Rorical/EmotionAnalyzer/internal/config"
	"github.com/Rorical/EmotionAnalyzer/internal/core"
	"github.com/Rorical/EmotionAnalyzer/internal/eventbus"
	"github.com/Rorical/EmotionAnalyzer/internal/history"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/presenter"
)

// maxStdinBytes bounds piped input; the text is clamped to 2400 characters anyway
const maxStdinBytes = 64 * 1024

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:          "analyze [text...]",
	Short:        "Analyze text once and print the result",
	Long:         `Classify the given text, or standard input when no text is given, print the detected emotions and add the analysis to the recent history.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg := loadConfig()
		setupLog(debug, os.Stderr, true, cfg.GetAPIKey())

		store, closeStore, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		clf, err := classifier.New(cfg)
		if err != nil {
			return err
		}

		service := core.NewAnalysisService(core.NewController(store), clf, eventbus.NewEventBus(), cfg.GetTimeout())
		state, err := service.Analyze(cmd.Context(), text)
		if err != nil {
			if state.Error != "" {
				return errors.New(state.Error)
			}
			return err
		}

		if analyzeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(state.Result)
		}
		printResult(cmd.OutOrStdout(), *state.Result)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the raw classification result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// readInput joins args, or reads r when there are none
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(io.LimitReader(r, maxStdinBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// openHistory opens the configured slot and reads it once
func openHistory(cfg *config.Config) (*history.Store, func(), error) {
	slot, closeSlot, err := history.OpenSlot(cfg.GetHistoryBackend(), cfg.Dir())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	store := history.NewStore(slot)
	store.Load()
	return store, func() { _ = closeSlot() }, nil
}

func printResult(w io.Writer, result models.ClassificationResult) {
	primary := presenter.Primary(result)
	label := color.New(color.Bold).Sprint(primary.Label)

	fmt.Fprintf(w, "%s %s  %d%%\n", primary.Icon, label, presenter.ConfidencePercent(result))
	fmt.Fprintln(w, "Primary emotion detected")

	secondary := presenter.SecondaryEmotions(result)
	if len(secondary) == 0 {
		return
	}
	fmt.Fprintln(w, "\nOther emotions:")
	for _, s := range secondary {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
