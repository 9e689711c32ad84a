package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

const maxResponseSize = 1 << 20

// HTTPClassifier calls the emotion prediction service
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClassifier creates a classifier for baseURL. A nil client uses a plain
// http.Client; deadlines come from the request context.
func NewHTTPClassifier(baseURL string, client *http.Client) *HTTPClassifier {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *HTTPClassifier) BaseURL() string {
	return c.baseURL
}

type predictRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Classify posts text to {base}/predict
func (c *HTTPClassifier) Classify(ctx context.Context, text string) (models.ClassificationResult, error) {
	var result models.ClassificationResult

	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return result, &TransportError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return result, &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log.Printf("[DEBUG] predict request %s, %d chars", requestID, len(text))
	resp, err := c.client.Do(req)
	if err != nil {
		return result, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return result, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(data, &errResp); jsonErr != nil {
			errResp.Error = ""
		}
		log.Printf("[WARN] predict request %s failed with status %d", requestID, resp.StatusCode)
		return result, &TransportError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return models.ClassificationResult{}, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if result.PredictedEmotion == "" {
		return models.ClassificationResult{}, &TransportError{Err: fmt.Errorf("response has no predicted_emotion")}
	}
	if result.InputText == "" {
		result.InputText = text
	}

	log.Printf("[DEBUG] predict request %s: %s (%.2f)", requestID, result.PredictedEmotion, result.Confidence)
	return result, nil
}

// HealthStatus is the response of the service health endpoint
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Health queries {base}/health
func (c *HTTPClassifier) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return status, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return status, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return status, &TransportError{StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&status); err != nil {
		return status, &TransportError{Err: fmt.Errorf("decode health response: %w", err)}
	}
	return status, nil
}
