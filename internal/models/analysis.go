package models

import "time"

// EmotionScore is one entry of the classifier distribution
type EmotionScore struct {
	Emotion     string  `json:"emotion"`
	Probability float64 `json:"probability"`
}

// ClassificationResult is the classifier response. Element 0 of AllEmotions is the
// primary emotion, the rest follow in the order the server sent them.
type ClassificationResult struct {
	InputText        string         `json:"input_text"`
	PredictedEmotion string         `json:"predicted_emotion"`
	Confidence       float64        `json:"confidence"`
	AllEmotions      []EmotionScore `json:"all_emotions"`
}

// HistoryEntry is a persisted summary of one successful analysis
type HistoryEntry struct {
	Text      string    `json:"text"`
	Emotion   string    `json:"emotion"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHistoryEntry captures a result at the given time
func NewHistoryEntry(result ClassificationResult, at time.Time) HistoryEntry {
	return HistoryEntry{
		Text:      result.InputText,
		Emotion:   result.PredictedEmotion,
		Timestamp: at.UTC(),
	}
}

// Phase of the analysis request lifecycle
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// AnalysisState is a snapshot of the controller state pushed to the UI
type AnalysisState struct {
	InputText  string
	Result     *ClassificationResult
	Loading    bool
	Error      string
	Phase      Phase
	History    []HistoryEntry
	Generation uint64
}
