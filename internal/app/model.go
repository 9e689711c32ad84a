package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/EmotionAnalyzer/internal/dispatcher"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/update"
	"github.com/Rorical/EmotionAnalyzer/internal/validate"
	"github.com/Rorical/EmotionAnalyzer/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	healthCmd  tea.Cmd
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
		m.healthCmd,
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	// Handle other events through the event bus
	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	am := &m.appModel
	var b strings.Builder

	b.WriteString(components.RenderHeader(am.Profile, am.Endpoint, am.Health, am.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(am.Input.View(), validate.Length(am.Input.Value()), am.State.Error, am.Width))
	b.WriteString("\n")
	if result := components.RenderResult(am.State, am.Progress, am.Spinner.View(), am.Width); result != "" {
		b.WriteString(result)
		b.WriteString("\n")
	}
	if recent := components.RenderHistory(am.State.History, am.Now, am.Width); recent != "" {
		b.WriteString(recent)
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatus(am.Status, am.Note, am.Width))
	b.WriteString("\n")
	b.WriteString(am.Help.View(update.Keys))

	return b.String()
}
