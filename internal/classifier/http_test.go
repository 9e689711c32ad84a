package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClassifier_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I am thrilled!", req["text"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"input_text": "I am thrilled!",
			"predicted_emotion": "joy",
			"confidence": 92.4,
			"all_emotions": [
				{"emotion": "joy", "probability": 92.4},
				{"emotion": "surprise", "probability": 5.1},
				{"emotion": "love", "probability": 2.5}
			]
		}`))
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL+"/", nil)
	result, err := c.Classify(context.Background(), "I am thrilled!")
	require.NoError(t, err)

	assert.Equal(t, "I am thrilled!", result.InputText)
	assert.Equal(t, "joy", result.PredictedEmotion)
	assert.InDelta(t, 92.4, result.Confidence, 0.0001)
	require.Len(t, result.AllEmotions, 3)
	assert.Equal(t, "surprise", result.AllEmotions[1].Emotion)
	assert.Equal(t, server.URL, c.BaseURL())
}

func TestHTTPClassifier_FillsMissingInputText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predicted_emotion": "fear", "confidence": 60, "all_emotions": [{"emotion": "fear", "probability": 60}]}`))
	}))
	defer server.Close()

	result, err := NewHTTPClassifier(server.URL, nil).Classify(context.Background(), "what now")
	require.NoError(t, err)
	assert.Equal(t, "what now", result.InputText)
}

func TestHTTPClassifier_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"structured error", http.StatusInternalServerError, `{"error":"model unavailable"}`, 500, "model unavailable"},
		{"bad request", http.StatusBadRequest, `{"error":"Empty text provided"}`, 400, "Empty text provided"},
		{"plain text body", http.StatusBadGateway, `upstream down`, 502, FallbackMessage},
		{"empty body", http.StatusServiceUnavailable, ``, 503, FallbackMessage},
		{"error of wrong type", http.StatusInternalServerError, `{"error": 42}`, 500, FallbackMessage},
		{"malformed success", http.StatusOK, `{not json`, 0, FallbackMessage},
		{"success without emotion", http.StatusOK, `{"confidence": 10}`, 0, FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewHTTPClassifier(server.URL, nil).Classify(context.Background(), "text")
			require.Error(t, err)

			var te *TransportError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.wantStatus, te.StatusCode)
			assert.Equal(t, tt.wantMsg, te.UserMessage())
		})
	}
}

func TestHTTPClassifier_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPClassifier(url, nil).Classify(context.Background(), "text")
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 0, te.StatusCode)
	assert.Equal(t, FallbackMessage, te.UserMessage())
	assert.Contains(t, te.Error(), "classifier request failed")
}

func TestHTTPClassifier_ContextTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPClassifier(server.URL, nil).Classify(ctx, "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPClassifier_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status": "healthy", "model_loaded": true}`))
	}))
	defer server.Close()

	status, err := NewHTTPClassifier(server.URL, nil).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.True(t, status.ModelLoaded)
}

func TestHTTPClassifier_HealthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPClassifier(server.URL, nil).Health(context.Background())
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
}

func TestTransportError_Messages(t *testing.T) {
	assert.Equal(t, "classifier returned 500: boom", (&TransportError{StatusCode: 500, Message: "boom"}).Error())
	assert.Equal(t, "classifier returned 404", (&TransportError{StatusCode: 404}).Error())
	assert.Equal(t, "classifier request failed", (&TransportError{}).Error())
	assert.Equal(t, "boom", (&TransportError{Message: "boom"}).UserMessage())
}
