package components

import (
	"strings"

	"github.com/Rorical/EmotionAnalyzer/ui/styles"
)

func RenderHeader(profile, endpoint, health string, width int) string {
	width = viewWidth(width)

	var b strings.Builder
	b.WriteString(styles.HeaderStyle(width).Render("😊 Emotion Analyzer"))
	b.WriteString("\n")

	info := []string{"Detect the emotional tone of any text"}
	if profile != "" {
		info = append(info, "profile: "+profile)
	}
	if endpoint != "" {
		info = append(info, endpoint)
	}
	if health != "" {
		info = append(info, healthDot(health)+" "+health)
	}
	b.WriteString(styles.SubtitleStyle().Render(strings.Join(info, " · ")))
	b.WriteString("\n")
	return b.String()
}

func healthDot(health string) string {
	switch health {
	case "online":
		return "●"
	case "checking":
		return "◌"
	}
	return "○"
}
