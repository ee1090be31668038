package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tailored-agentic-units/shellagent/core/protocol"
)

// chatClient is the OpenAI-compatible chat-completions HTTP client.
type chatClient struct {
	endpoint    string
	model       string
	temperature float64
	stop        []string
	client      *http.Client
}

func newChatClient(cfg *Config) *chatClient {
	return &chatClient{
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		stop:        cfg.Stop,
		client:      &http.Client{Timeout: cfg.Timeout()},
	}
}

type chatRequest struct {
	Model       string             `json:"model,omitempty"`
	Messages    []protocol.Message `json:"messages"`
	Temperature float64            `json:"temperature"`
	Stream      bool               `json:"stream"`
	Stop        []string           `json:"stop,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) Chat(ctx context.Context, messages []protocol.Message) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		Stream:      false,
		Stop:        c.stop,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response body: %v", ErrProtocol, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", ErrProtocol, resp.StatusCode, snippet(data))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response contains no choices", ErrProtocol)
	}

	return parsed.Choices[0].Message.Content, nil
}

// snippet truncates a response body for inclusion in error text.
func snippet(data []byte) string {
	const limit = 200
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
