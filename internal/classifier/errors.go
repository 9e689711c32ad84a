package classifier

import "fmt"

// FallbackMessage is shown when the failure carries no message of its own
const FallbackMessage = "An error occurred. Please try again."

// TransportError covers unreachable endpoints, non-2xx responses and malformed bodies
type TransportError struct {
	StatusCode int    // 0 when no response was received
	Message    string // structured error from the response body, may be empty
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("classifier returned %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("classifier returned %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("classifier request failed: %v", e.Err)
	}
	return "classifier request failed"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage is the short text shown next to the input
func (e *TransportError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return FallbackMessage
}
