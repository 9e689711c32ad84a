package components

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/presenter"
	"github.com/Rorical/EmotionAnalyzer/ui/styles"
)

// RenderHistory renders the recent analyses, newest first. Empty history
// renders nothing.
func RenderHistory(entries []models.HistoryEntry, now time.Time, width int) string {
	if len(entries) == 0 {
		return ""
	}
	width = viewWidth(width)
	// border, padding and margin of the card
	textWidth := max(width-6, 10)

	var b strings.Builder
	b.WriteString(styles.SectionTitleStyle().Render("Recent Analyses"))
	b.WriteString("\n")
	for _, entry := range entries {
		card := presenter.Card(entry, now)
		head := styles.BadgeStyle(card.Color).Render(card.Badge) + " " +
			styles.MutedStyle().Render(card.When)
		body := runewidth.Truncate(quote(card.Preview), textWidth, "…")
		b.WriteString(styles.CardStyle(card.Color).Render(head + "\n" + body))
		b.WriteString("\n")
	}
	return b.String()
}

// quote flattens whitespace so a card preview stays on one line
func quote(text string) string {
	return `"` + strings.Join(strings.Fields(text), " ") + `"`
}
