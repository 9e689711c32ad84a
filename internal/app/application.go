package app

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
	"github.com/Rorical/EmotionAnalyzer/internal/config"
	"github.com/Rorical/EmotionAnalyzer/internal/core"
	"github.com/Rorical/EmotionAnalyzer/internal/dispatcher"
	"github.com/Rorical/EmotionAnalyzer/internal/eventbus"
	"github.com/Rorical/EmotionAnalyzer/internal/history"
	"github.com/Rorical/EmotionAnalyzer/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.AnalysisService
	closeSlot  func() error
	model      *AppModel
}

func NewApplication(cfg *config.Config) (*Application, error) {
	clf, err := classifier.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	slot, closeSlot, err := history.OpenSlot(cfg.GetHistoryBackend(), cfg.Dir())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	store := history.NewStore(slot)
	// read once before any submission can happen
	store.Load()

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Printf("[WARN] %v", e)
	})
	disp := dispatcher.NewEventDispatcher(eb)

	service := core.NewAnalysisService(core.NewController(store), clf, eb, cfg.GetTimeout())

	log.Printf("[INFO] profile %s, backend %s, endpoint %s, history %s",
		cfg.ActiveProfile, cfg.GetBackend(), cfg.GetBaseURL(), cfg.GetHistoryBackend())

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		closeSlot:  closeSlot,
		model:      newAppModel(cfg, clf, disp),
	}, nil
}

func (app *Application) Start() error {
	// Start background services
	app.service.Start()

	// Run UI
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	if err := app.closeSlot(); err != nil {
		log.Printf("[WARN] can't close history storage: %v", err)
	}
	app.eventBus.Close()
}

func newAppModel(cfg *config.Config, clf classifier.Classifier, disp *dispatcher.EventDispatcher) *AppModel {
	appModel := update.NewAppModel(cfg.ActiveProfile, cfg.GetBaseURL())
	healthCmd := update.CheckHealthCmd(clf)
	if healthCmd != nil {
		appModel.Health = "checking"
	}
	return &AppModel{
		appModel:   appModel,
		dispatcher: disp,
		healthCmd:  healthCmd,
	}
}
