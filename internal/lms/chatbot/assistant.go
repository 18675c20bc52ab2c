package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"time"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/config"
)

// Assistant answers student questions. The concrete implementation proxies
// an external LLM service; handlers only see this interface.
type Assistant interface {
	Ask(ctx context.Context, message string, sessionID int64) (string, error)
}

// SessionID derives a stable session from the message when the client does
// not supply one.
func SessionID(message string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	return int64(h.Sum32()) % 1000000
}

type httpAssistant struct {
	url    string
	apiKey string
	client *http.Client
}

func NewAssistant(cfg *config.Config) Assistant {
	return &httpAssistant{
		url:    cfg.AssistantURL,
		apiKey: cfg.AssistantAPIKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type askRequest struct {
	Message   string `json:"message"`
	SessionID int64  `json:"sessionId"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

func (a *httpAssistant) Ask(ctx context.Context, message string, sessionID int64) (string, error) {
	if a.url == "" {
		return "", fmt.Errorf("assistant is not configured")
	}

	body, err := json.Marshal(askRequest{Message: message, SessionID: sessionID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("assistant returned %d: %s", res.StatusCode, payload)
	}

	var out askResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return out.Reply, nil
}
