package core

import (
	"errors"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
	"github.com/Rorical/EmotionAnalyzer/internal/history"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/validate"
)

// ErrBusy is returned when an action is attempted while a request is in flight
var ErrBusy = errors.New("analysis already in progress")

// Controller owns the analysis state machine:
// Idle -> Submitting -> {Succeeded, Failed} -> Idle.
// Every submission gets a generation number; completions carrying an older
// generation are discarded.
type Controller struct {
	mu         sync.RWMutex
	input      string
	result     *models.ClassificationResult
	loading    bool
	errMsg     string
	phase      models.Phase
	generation uint64

	history *history.Store
	now     func() time.Time
	pick    func(n int) int
}

func NewController(store *history.Store) *Controller {
	return &Controller{
		phase:   models.Idle,
		history: store,
		now:     time.Now,
		pick:    rand.IntN,
	}
}

// SetClock replaces the clock used for history timestamps
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// SetPicker replaces the random index source used by RandomExample
func (c *Controller) SetPicker(pick func(n int) int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pick = pick
}

// SetInput records an edit. Ignored while submitting; otherwise the text is
// clamped and a finished cycle returns to Idle. Result and error stay visible.
func (c *Controller) SetInput(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == models.Submitting {
		return false
	}
	c.input = validate.Clamp(text)
	c.phase = models.Idle
	return true
}

// Begin starts a submission and returns its generation. Validation failures
// never reach the network and leave the controller Idle with the message set.
func (c *Controller) Begin(text string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == models.Submitting {
		return 0, ErrBusy
	}

	c.input = validate.Clamp(text)
	if err := validate.Validate(c.input); err != nil {
		c.result = nil
		c.errMsg = err.Error()
		c.phase = models.Idle
		return 0, err
	}

	c.generation++
	c.result = nil
	c.errMsg = ""
	c.loading = true
	c.phase = models.Submitting
	return c.generation, nil
}

// Complete applies the outcome of submission gen. It returns false when the
// outcome is stale and was dropped. On success the result is stored before
// history is written; a history write failure is logged and does not affect
// the displayed result.
func (c *Controller) Complete(gen uint64, result models.ClassificationResult, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.phase != models.Submitting {
		log.Printf("[DEBUG] dropping stale response for generation %d (current %d)", gen, c.generation)
		return false
	}
	c.loading = false

	if err != nil {
		c.result = nil
		c.errMsg = userMessage(err)
		c.phase = models.Failed
		log.Printf("[WARN] analysis failed: %v", err)
		return true
	}

	stored := cloneResult(result)
	c.result = &stored
	c.errMsg = ""
	c.phase = models.Succeeded

	if c.history != nil {
		if herr := c.history.Append(models.NewHistoryEntry(stored, c.now())); herr != nil {
			log.Printf("[WARN] can't save analysis to history: %v", herr)
		}
	}
	return true
}

// Clear resets input, result and error, and invalidates any in-flight
// submission. History is untouched.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.input = ""
	c.result = nil
	c.errMsg = ""
	c.loading = false
	c.phase = models.Idle
}

// RandomExample replaces the input with one of the curated examples
func (c *Controller) RandomExample() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == models.Submitting {
		return "", ErrBusy
	}

	text := exampleTexts[c.pick(len(exampleTexts))]
	c.input = text
	c.result = nil
	c.errMsg = ""
	c.phase = models.Idle
	return text, nil
}

func (c *Controller) IsSubmitting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase == models.Submitting
}

// Snapshot returns a copy of the current state including history
func (c *Controller) Snapshot() models.AnalysisState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := models.AnalysisState{
		InputText:  c.input,
		Loading:    c.loading,
		Error:      c.errMsg,
		Phase:      c.phase,
		Generation: c.generation,
	}
	if c.result != nil {
		r := cloneResult(*c.result)
		state.Result = &r
	}
	if c.history != nil {
		state.History = c.history.Entries()
	}
	return state
}

func userMessage(err error) string {
	var te *classifier.TransportError
	if errors.As(err, &te) {
		return te.UserMessage()
	}
	return classifier.FallbackMessage
}

func cloneResult(r models.ClassificationResult) models.ClassificationResult {
	out := r
	if r.AllEmotions != nil {
		out.AllEmotions = make([]models.EmotionScore, len(r.AllEmotions))
		copy(out.AllEmotions, r.AllEmotions)
	}
	return out
}
