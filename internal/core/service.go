package core

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
	"github.com/Rorical/EmotionAnalyzer/internal/config"
	"github.com/Rorical/EmotionAnalyzer/internal/eventbus"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/validate"
)

// completion carries a classifier outcome back into the event loop
type completion struct {
	generation uint64
	result     models.ClassificationResult
	err        error
}

// AnalysisService runs the controller on a single event loop. UI events and
// classifier completions are applied one at a time, so the history
// read-modify-write never races.
type AnalysisService struct {
	controller     *Controller
	classifier     classifier.Classifier
	eventBus       *eventbus.EventBus
	timeout        time.Duration
	ctx            context.Context
	cancel         context.CancelFunc
	completions    chan completion
	inflightCancel context.CancelFunc
	inflightGen    uint64
}

func NewAnalysisService(ctrl *Controller, clf classifier.Classifier, eb *eventbus.EventBus, timeout time.Duration) *AnalysisService {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AnalysisService{
		controller:  ctrl,
		classifier:  clf,
		eventBus:    eb,
		timeout:     timeout,
		ctx:         ctx,
		cancel:      cancel,
		completions: make(chan completion, 1),
	}
}

// Start runs the core logic in a goroutine
func (s *AnalysisService) Start() {
	// Send initial state (loaded history) to UI immediately
	s.pushStateToUI(false)
	go s.eventLoop()
}

func (s *AnalysisService) Stop() {
	s.cancel()
}

func (s *AnalysisService) Controller() *Controller {
	return s.controller
}

func (s *AnalysisService) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			s.cancelInflight()
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		case c := <-s.completions:
			s.handleCompletion(c)
		}
	}
}

func (s *AnalysisService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitEvent:
		s.submit(e.Text)
	case eventbus.InputChangedEvent:
		if s.controller.SetInput(e.Text) {
			s.pushStateToUI(false)
		}
	case eventbus.ClearEvent:
		s.cancelInflight()
		s.controller.Clear()
		s.pushStateToUI(true)
	case eventbus.RandomExampleEvent:
		if _, err := s.controller.RandomExample(); err != nil {
			log.Printf("[DEBUG] random example ignored: %v", err)
			return
		}
		s.pushStateToUI(true)
	}
}

func (s *AnalysisService) submit(text string) {
	gen, err := s.controller.Begin(text)
	if errors.Is(err, ErrBusy) {
		log.Printf("[DEBUG] submit ignored: %v", err)
		return
	}
	// validation errors are already part of the state
	s.pushStateToUI(false)
	if err != nil {
		return
	}

	reqCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	s.inflightCancel = cancel
	s.inflightGen = gen
	input := s.controller.Snapshot().InputText

	go func() {
		defer cancel()
		result, err := s.classifier.Classify(reqCtx, input)
		select {
		case s.completions <- completion{generation: gen, result: result, err: err}:
		case <-s.ctx.Done():
		}
	}()
}

func (s *AnalysisService) handleCompletion(c completion) {
	if c.generation == s.inflightGen {
		s.inflightCancel = nil
	}
	if s.controller.Complete(c.generation, c.result, c.err) {
		s.pushStateToUI(false)
	}
}

func (s *AnalysisService) cancelInflight() {
	if s.inflightCancel != nil {
		s.inflightCancel()
		s.inflightCancel = nil
	}
}

// Analyze runs one synchronous submit cycle without the event loop. It returns
// the resulting state and the validation, busy or classifier error, if any.
// Must not be mixed with a started service.
func (s *AnalysisService) Analyze(ctx context.Context, text string) (models.AnalysisState, error) {
	gen, err := s.controller.Begin(text)
	if err != nil {
		return s.controller.Snapshot(), err
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.classifier.Classify(reqCtx, validate.Clamp(text))
	s.controller.Complete(gen, result, err)
	return s.controller.Snapshot(), err
}

func (s *AnalysisService) pushStateToUI(inputReplaced bool) {
	if err := s.eventBus.SendToUI(eventbus.StateUpdateEvent{
		State:         s.controller.Snapshot(),
		InputReplaced: inputReplaced,
	}); err != nil {
		// If we can't send to UI, log the error and continue
		log.Printf("[WARN] error sending state to UI: %v", err)
	}
}
