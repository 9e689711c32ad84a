package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/Rorical/EmotionAnalyzer/internal/emotion"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/validate"
	"github.com/Rorical/EmotionAnalyzer/ui/styles"
)

// NewAppModel builds the initial UI state. History and input arrive from
// core with the first state update.
func NewAppModel(profile, endpoint string) models.AppModel {
	input := textarea.New()
	input.Placeholder = "Type or paste text to analyze..."
	input.CharLimit = validate.MaxChars
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("ctrl+j"))
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.SpinnerStyle()

	return models.AppModel{
		State:    models.AnalysisState{Phase: models.Idle},
		Status:   "Ready",
		Profile:  profile,
		Endpoint: endpoint,
		Now:      time.Now(),
		Input:    input,
		Spinner:  spin,
		Progress: progress.New(progress.WithSolidFill(emotion.NeutralColor), progress.WithoutPercentage()),
		Help:     help.New(),
	}
}
