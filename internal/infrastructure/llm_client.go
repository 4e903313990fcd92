package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yanamull/Example-of-LLM-translater/internal/postprocess"
)

// ErrUnavailable reports that the provider could not be reached at the
// network level (connection refused, DNS failure, timeout).
var ErrUnavailable = errors.New("llm service unavailable")

// ErrMalformedResponse reports a successful provider reply that does not
// carry the expected choices[0].message.content shape.
var ErrMalformedResponse = errors.New("malformed response from llm service")

// StatusError carries a non-2xx status code returned by the provider.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm service returned status %d", e.Code)
}

const requestTimeout = 60 * time.Second

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// LLMClient performs single request/response cycles against a
// chat-completion endpoint. It keeps no state between calls.
type LLMClient struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

func NewLLMClient(endpoint, model, apiKey string) *LLMClient {
	return &LLMClient{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// Complete sends the instruction and user input as a two-message chat
// prompt and returns the cleaned assistant reply.
func (l *LLMClient) Complete(ctx context.Context, instruction, userInput string) (string, error) {
	reqBody := chatRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "system", Content: instruction},
			{Role: "user", Content: userInput},
		},
		Temperature: 0.7,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+l.apiKey)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: could not unmarshall response: %v", ErrMalformedResponse, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}

	return postprocess.Clean(chatResp.Choices[0].Message.Content), nil
}
