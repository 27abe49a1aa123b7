package edge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Samuel-Loga/Personal-Website/metal/env"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// Invoker calls named serverless functions on the hosted backend.
// A failure surfaces as an error with the gateway's message; nothing here
// retries.
type Invoker interface {
	Invoke(ctx context.Context, name string, payload any) error
}

type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func MakeClient(e env.EdgeEnvironment) *Client {
	return &Client{
		endpoint: strings.TrimRight(e.Endpoint, "/"),
		apiKey:   e.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Invoke(ctx context.Context, name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode function payload: %w", err)
	}

	target := c.endpoint + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create function request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("function request failed: %w", err)
	}

	defer portal.CloseWithLog(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := portal.ReadWithSizeLimit(resp.Body, 4096)

		return fmt.Errorf("function %s failed with status %d: %s", name, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}
