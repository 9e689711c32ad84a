package components

import (
	"github.com/Rorical/EmotionAnalyzer/ui/styles"
)

func RenderStatus(status, note string, width int) string {
	width = viewWidth(width)

	statusContent := status
	if note != "" {
		statusContent += " · " + note
	}

	return styles.StatusStyle(width).Render(statusContent)
}
