package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/EmotionAnalyzer/internal/config"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

const scenarioA = `{
	"input_text": "I am thrilled!",
	"predicted_emotion": "joy",
	"confidence": 92.4,
	"all_emotions": [
		{"emotion": "joy", "probability": 92.4},
		{"emotion": "surprise", "probability": 5.1},
		{"emotion": "love", "probability": 2.5}
	]
}`

func newPredictServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/predict":
			w.Write([]byte(scenarioA))
		case "/health":
			w.Write([]byte(`{"status": "healthy", "model_loaded": true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// execute runs the root command in a fresh config home
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	profileName, apiURL, debug, analyzeJSON = "", "", false, false

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func setHome(t *testing.T) {
	t.Helper()
	t.Setenv("EMOTIONANALYZER_HOME", t.TempDir())
	t.Setenv("EMOTION_API_URL", "")
}

func TestAnalyzeAndHistory(t *testing.T) {
	setHome(t)
	server := newPredictServer(t)

	out, err := execute(t, "", "analyze", "--api-url", server.URL, "I", "am", "thrilled!")
	require.NoError(t, err)
	assert.Contains(t, out, "😊 Joyful  92%")
	assert.Contains(t, out, "Primary emotion detected")
	assert.Contains(t, out, "Surprised 5%")
	assert.Contains(t, out, "Loving 3%")

	out, err = execute(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "JOY")
	assert.Contains(t, out, "Just now")
	assert.Contains(t, out, `"I am thrilled!"`)
}

func TestAnalyzeFromStdinAsJSON(t *testing.T) {
	setHome(t)
	server := newPredictServer(t)

	out, err := execute(t, "I am thrilled!\n", "analyze", "--json", "--api-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"predicted_emotion": "joy"`)
}

func TestAnalyzeRejectsBlankText(t *testing.T) {
	setHome(t)
	server := newPredictServer(t)

	_, err := execute(t, "", "analyze", "--api-url", server.URL, "   ")
	require.Error(t, err)
	assert.Equal(t, "Please enter some text", err.Error())
}

func TestAnalyzeReportsServiceError(t *testing.T) {
	setHome(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "model unavailable"}`))
	}))
	defer server.Close()

	_, err := execute(t, "", "analyze", "--api-url", server.URL, "hello")
	require.Error(t, err)
	assert.Equal(t, "model unavailable", err.Error())

	out, err := execute(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No recent analyses")
}

func TestHealth(t *testing.T) {
	setHome(t)
	server := newPredictServer(t)

	out, err := execute(t, "", "health", "--api-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: healthy")
	assert.Contains(t, out, "Model loaded: true")
}

func TestReadInput(t *testing.T) {
	text, err := readInput([]string{"hello", "world"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	text, err = readInput(nil, strings.NewReader("line one\nline two\n"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestPrintHistory(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	printHistory(&buf, []models.HistoryEntry{
		{Text: "first", Emotion: "fear", Timestamp: now.Add(-2 * time.Hour)},
		{Text: "second", Emotion: "boredom", Timestamp: now.Add(-3 * 24 * time.Hour)},
	}, now)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "FEAR")
	assert.Contains(t, lines[0], "2h ago")
	assert.Contains(t, lines[1], "BOREDOM")
	assert.Contains(t, lines[1], "3d ago")
	assert.Contains(t, lines[1], "😐")
}

func TestRemoveProfile(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.Profile{
			"a": {BaseURL: "http://a"},
			"b": {BaseURL: "http://b"},
		},
		ActiveProfile: "b",
	}

	removeProfile(cfg, "b")
	assert.Equal(t, "a", cfg.ActiveProfile)
	assert.Equal(t, []string{"a"}, profileNames(cfg, ""))

	removeProfile(cfg, "a")
	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.Equal(t, config.DefaultProfile(), cfg.Profiles["default"])
}

func TestProfileNames(t *testing.T) {
	cfg := &config.Config{Profiles: map[string]config.Profile{"z": {}, "a": {}, "m": {}}}
	assert.Equal(t, []string{"a", "m", "z"}, profileNames(cfg, ""))
	assert.Equal(t, []string{"a", "z"}, profileNames(cfg, "m"))
}
