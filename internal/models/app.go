package models

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	State    AnalysisState // Last state pushed by core
	Status   string        // Status bar text
	Note     string        // One-shot hint, e.g. why a key was ignored
	Profile  string        // Active profile name
	Endpoint string        // Classifier endpoint shown in the header
	Health   string        // "checking", "online", "offline", "model not loaded" or "" when unsupported
	Width    int           // Terminal width
	Height   int           // Terminal height
	Now      time.Time     // Reference time for relative history timestamps

	Input    textarea.Model
	Spinner  spinner.Model
	Progress progress.Model
	Help     help.Model
}
