package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/EmotionAnalyzer/internal/validate"
	"github.com/Rorical/EmotionAnalyzer/ui/styles"
)

// RenderInput frames the textarea view and adds the character counter and
// the inline error, if any.
func RenderInput(inputView string, length int, errMsg string, width int) string {
	width = viewWidth(width)

	var b strings.Builder
	b.WriteString(styles.InputStyle(width).Render(inputView))
	b.WriteString("\n")
	b.WriteString(styles.CounterStyle().Render(fmt.Sprintf("%d/%d chars", length, validate.MaxChars)))
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(styles.ErrorStyle().Render("⚠️ " + errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
