package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

func thrilled() models.ClassificationResult {
	return models.ClassificationResult{
		InputText:        "I am thrilled!",
		PredictedEmotion: "joy",
		Confidence:       92.4,
		AllEmotions: []models.EmotionScore{
			{Emotion: "joy", Probability: 92.4},
			{Emotion: "surprise", Probability: 5.1},
			{Emotion: "love", Probability: 2.5},
		},
	}
}

func TestPrimary(t *testing.T) {
	p := Primary(thrilled())
	assert.Equal(t, "Joyful", p.Label)
	assert.Equal(t, "😊", p.Icon)
	assert.Equal(t, "#FFD700", p.Color)
	assert.Equal(t, "joy", p.Code)
}

func TestPrimary_UnknownEmotion(t *testing.T) {
	p := Primary(models.ClassificationResult{PredictedEmotion: "confusion", Confidence: 40})
	assert.Equal(t, "confusion", p.Label)
	assert.Equal(t, "😐", p.Icon)
}

func TestConfidencePercent(t *testing.T) {
	tests := []struct {
		confidence float64
		want       int
	}{
		{0, 0}, {0.49, 0}, {0.5, 1}, {49.5, 50}, {92.4, 92}, {99.99, 100}, {100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidencePercent(models.ClassificationResult{Confidence: tt.confidence}), "confidence %v", tt.confidence)
	}
}

func TestConfidenceRatio(t *testing.T) {
	assert.InDelta(t, 0.924, ConfidenceRatio(thrilled()), 1e-9)
	assert.Equal(t, 0.0, ConfidenceRatio(models.ClassificationResult{Confidence: -5}))
	assert.Equal(t, 1.0, ConfidenceRatio(models.ClassificationResult{Confidence: 120}))
}

func TestSecondaryEmotions(t *testing.T) {
	rows := SecondaryEmotions(thrilled())
	require.Len(t, rows, 2)
	assert.Equal(t, "Surprised 5%", rows[0].String())
	assert.Equal(t, "Loving 3%", rows[1].String())
}

func TestSecondaryEmotions_Bounds(t *testing.T) {
	many := models.ClassificationResult{
		PredictedEmotion: "anger",
		AllEmotions: []models.EmotionScore{
			{Emotion: "anger", Probability: 50},
			{Emotion: "fear", Probability: 20},
			{Emotion: "sadness", Probability: 15},
			{Emotion: "confusion", Probability: 10},
			{Emotion: "joy", Probability: 5},
		},
	}
	rows := SecondaryEmotions(many)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"fear", "sadness", "confusion"}, []string{rows[0].Code, rows[1].Code, rows[2].Code})
	assert.Equal(t, "Confusion", rows[2].Label)
	for _, r := range rows {
		assert.NotEqual(t, "anger", r.Code)
	}

	assert.Empty(t, SecondaryEmotions(models.ClassificationResult{}))
	assert.Empty(t, SecondaryEmotions(models.ClassificationResult{AllEmotions: many.AllEmotions[:1]}))
}

func TestSecondaryEmotions_DoesNotMutate(t *testing.T) {
	r := thrilled()
	before := append([]models.EmotionScore(nil), r.AllEmotions...)
	SecondaryEmotions(r)
	Primary(r)
	assert.Equal(t, before, r.AllEmotions)
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{60 * time.Second, "1m ago"},
		{119 * time.Second, "1m ago"},
		{59*time.Minute + 59*time.Second, "59m ago"},
		{60 * time.Minute, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{47 * time.Hour, "1d ago"},
		{72 * time.Hour, "3d ago"},
		{-5 * time.Minute, "Just now"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now), "elapsed %v", tt.ago)
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))
	exact := strings.Repeat("a", 80)
	assert.Equal(t, exact, Preview(exact))
	long := strings.Repeat("é", 81)
	assert.Equal(t, strings.Repeat("é", 80)+"...", Preview(long))
}

func TestCard(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	card := Card(models.HistoryEntry{Text: "hello", Emotion: "sadness", Timestamp: now.Add(-2 * time.Hour)}, now)
	assert.Equal(t, "SADNESS", card.Badge)
	assert.Equal(t, "2h ago", card.When)
	assert.Equal(t, "hello", card.Preview)
	assert.Equal(t, "😢", card.Icon)
}
