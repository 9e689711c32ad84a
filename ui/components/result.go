package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/presenter"
	"github.com/Rorical/EmotionAnalyzer/ui/styles"
)

// RenderResult shows the spinner while loading, the result panel once one
// is available, and nothing otherwise.
func RenderResult(state models.AnalysisState, bar progress.Model, spinnerView string, width int) string {
	width = viewWidth(width)

	if state.Loading {
		return "  " + spinnerView + " Analyzing emotions...\n"
	}
	if state.Result == nil {
		return ""
	}
	return RenderResultPanel(*state.Result, bar, width)
}

func RenderResultPanel(result models.ClassificationResult, bar progress.Model, width int) string {
	width = viewWidth(width)
	primary := presenter.Primary(result)

	var b strings.Builder
	b.WriteString(primary.Icon + "  ")
	b.WriteString(styles.EmotionLabelStyle(primary.Color).Render(primary.Label))
	b.WriteString("  ")
	b.WriteString(styles.BadgeStyle(primary.Color).Render(fmt.Sprintf("%d%%", presenter.ConfidencePercent(result))))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle().Render("Primary emotion detected"))
	b.WriteString("\n")

	bar.FullColor = primary.Color
	b.WriteString(bar.ViewAs(presenter.ConfidenceRatio(result)))

	secondary := presenter.SecondaryEmotions(result)
	if len(secondary) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedStyle().Render("Other emotions"))
		for _, s := range secondary {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("  %-10s %3d%%", s.Label, s.Percent))
		}
	}

	return styles.ResultStyle(primary.Color, width).Render(b.String()) + "\n"
}
