package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/EmotionAnalyzer/internal/classifier"
	"github.com/Rorical/EmotionAnalyzer/internal/dispatcher"
	"github.com/Rorical/EmotionAnalyzer/internal/eventbus"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

const (
	tickInterval  = 30 * time.Second
	healthTimeout = 3 * time.Second
	busyNote      = "Analysis in progress, please wait"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	appModel.Note = ""

	switch {
	case key.Matches(keyMsg, Keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, Keys.Submit):
		if appModel.State.Loading {
			appModel.Note = busyNote
			return nil
		}
		send(appModel, eb, eventbus.SubmitEvent{Text: appModel.Input.Value()})
		return nil
	case key.Matches(keyMsg, Keys.Clear):
		send(appModel, eb, eventbus.ClearEvent{})
		return nil
	case key.Matches(keyMsg, Keys.Random):
		if appModel.State.Loading {
			appModel.Note = busyNote
			return nil
		}
		send(appModel, eb, eventbus.RandomExampleEvent{})
		return nil
	}

	// the input is read-only while a request is in flight
	if appModel.State.Loading {
		appModel.Note = busyNote
		return nil
	}

	before := appModel.Input.Value()
	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	if after := appModel.Input.Value(); after != before {
		send(appModel, eb, eventbus.InputChangedEvent{Text: after})
	}
	return cmd
}

func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	event, ok := coreEventMsg.Event.(eventbus.StateUpdateEvent)
	if !ok {
		return nil
	}

	wasLoading := appModel.State.Loading
	appModel.State = event.State
	appModel.Now = time.Now()

	if event.InputReplaced {
		appModel.Input.SetValue(event.State.InputText)
		appModel.Input.CursorEnd()
	}

	switch {
	case event.State.Loading:
		appModel.Status = "Analyzing"
	case event.State.Phase == models.Failed:
		appModel.Status = "Analysis failed"
	case event.State.Phase == models.Succeeded:
		appModel.Status = "Analysis complete"
	default:
		appModel.Status = "Ready"
	}

	switch {
	case event.State.Loading && !wasLoading:
		appModel.Input.Blur()
		return appModel.Spinner.Tick
	case !event.State.Loading && !appModel.Input.Focused():
		return appModel.Input.Focus()
	}
	return nil
}

type TickMsg time.Time

// TickCmd refreshes relative timestamps on history cards
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	appModel.Input.SetWidth(max(sizeMsg.Width-4, 20))
	appModel.Progress.Width = max(sizeMsg.Width-12, 10)
	appModel.Help.Width = sizeMsg.Width
}

func HandleTickMsg(appModel *models.AppModel, tick TickMsg) tea.Cmd {
	appModel.Now = time.Time(tick)
	return TickCmd()
}

// HandleSpinnerMsg advances the spinner only while a request is in flight
func HandleSpinnerMsg(appModel *models.AppModel, msg spinner.TickMsg) tea.Cmd {
	if !appModel.State.Loading {
		return nil
	}
	var cmd tea.Cmd
	appModel.Spinner, cmd = appModel.Spinner.Update(msg)
	return cmd
}

// HealthMsg reports the outcome of the startup health probe
type HealthMsg struct {
	Status classifier.HealthStatus
	Err    error
}

// CheckHealthCmd probes the backend once; backends without a probe skip it
func CheckHealthCmd(clf classifier.Classifier) tea.Cmd {
	checker, ok := clf.(classifier.HealthChecker)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()
		status, err := checker.Health(ctx)
		return HealthMsg{Status: status, Err: err}
	}
}

func HandleHealthMsg(appModel *models.AppModel, msg HealthMsg) {
	switch {
	case msg.Err != nil:
		appModel.Health = "offline"
	case !msg.Status.ModelLoaded:
		appModel.Health = "model not loaded"
	default:
		appModel.Health = "online"
	}
}
