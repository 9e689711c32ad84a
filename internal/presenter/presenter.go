// Package presenter derives display values from classification results.
// Nothing here mutates its input.
package presenter

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/Rorical/EmotionAnalyzer/internal/emotion"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

const (
	maxSecondary = 3
	previewChars = 80
)

// PrimaryDisplay is the headline of a result
type PrimaryDisplay struct {
	Code  string
	Label string
	Icon  string
	Color string
}

func Primary(result models.ClassificationResult) PrimaryDisplay {
	e := emotion.Parse(result.PredictedEmotion)
	return PrimaryDisplay{
		Code:  e.Code,
		Label: e.Label(),
		Icon:  e.Icon(),
		Color: e.Color(),
	}
}

// ConfidencePercent is the rounded confidence badge value
func ConfidencePercent(result models.ClassificationResult) int {
	return int(math.Round(result.Confidence))
}

// ConfidenceRatio is the bar fill: confidence used directly as a percentage,
// clamped to [0, 1].
func ConfidenceRatio(result models.ClassificationResult) float64 {
	r := result.Confidence / 100
	switch {
	case math.IsNaN(r) || r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// SecondaryEmotion is one row under the primary emotion
type SecondaryEmotion struct {
	Code    string
	Label   string
	Percent int
}

func (s SecondaryEmotion) String() string {
	return fmt.Sprintf("%s %d%%", s.Label, s.Percent)
}

// SecondaryEmotions returns all_emotions[1:4] in server order
func SecondaryEmotions(result models.ClassificationResult) []SecondaryEmotion {
	if len(result.AllEmotions) < 2 {
		return []SecondaryEmotion{}
	}
	end := min(len(result.AllEmotions), 1+maxSecondary)

	out := make([]SecondaryEmotion, 0, end-1)
	for _, score := range result.AllEmotions[1:end] {
		e := emotion.Parse(score.Emotion)
		out = append(out, SecondaryEmotion{
			Code:    score.Emotion,
			Label:   e.TitleLabel(),
			Percent: int(math.Round(score.Probability)),
		})
	}
	return out
}

// RelativeTime buckets the time elapsed since ts using floor division
func RelativeTime(ts, now time.Time) string {
	elapsed := now.Sub(ts)
	mins := int64(elapsed / time.Minute)
	hours := int64(elapsed / time.Hour)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// Preview shortens history text for the recent analysis cards
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= previewChars {
		return text
	}
	return string([]rune(text)[:previewChars]) + "..."
}

// HistoryCard is a display-ready history entry
type HistoryCard struct {
	Badge   string
	Color   string
	Icon    string
	When    string
	Preview string
}

func Card(entry models.HistoryEntry, now time.Time) HistoryCard {
	e := emotion.Parse(entry.Emotion)
	return HistoryCard{
		Badge:   e.Badge(),
		Color:   e.Color(),
		Icon:    e.Icon(),
		When:    RelativeTime(entry.Timestamp, now),
		Preview: Preview(entry.Text),
	}
}
