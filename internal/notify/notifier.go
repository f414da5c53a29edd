package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Notifier interface {
	Send(ctx context.Context, content string) error
}

// ChatNotifier posts messages to a chat webhook. One request per message, no
// retries and no queueing: a failure is the caller's problem to log or report.
type ChatNotifier struct {
	httpClient *http.Client
	webhookURL string
}

type chatMessage struct {
	Content string `json:"content"`
}

func NewChatNotifier(webhookURL string) *ChatNotifier {
	return &ChatNotifier{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		webhookURL: webhookURL,
	}
}

// Send delivers one message. With no webhook URL configured it is a no-op,
// so environments without the chat integration keep working.
func (c *ChatNotifier) Send(ctx context.Context, content string) error {
	if c.webhookURL == "" {
		return nil
	}

	jsonData, err := json.Marshal(chatMessage{Content: content})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("chat webhook error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return nil
}
