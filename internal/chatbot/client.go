package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
)

const (
	// UnknownModel is reported when a successful response does not name its model.
	UnknownModel = "Unknown"

	defaultFailureMessage = "response failed"
)

type ChatRequest struct {
	UserQuery    string `json:"userQuery"`
	SystemPrompt string `json:"systemPrompt"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Text      string `json:"text,omitempty"`
	ModelName string `json:"modelName,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Asker sends one question to the chatbot.
type Asker interface {
	Ask(ctx context.Context, question string) models.CallResult
}

type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ask never fails: every transport or application error is folded into the
// Answer of an unsuccessful CallResult so the batch can keep going.
func (c *Client) Ask(ctx context.Context, question string) models.CallResult {
	reqBody, err := json.Marshal(ChatRequest{UserQuery: question})
	if err != nil {
		return failure(fmt.Sprintf("Error: encoding request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return failure(fmt.Sprintf("Error: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(c.describeTransportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failure(fmt.Sprintf("HTTP Error: %d", resp.StatusCode))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return failure(c.describeDecodeError(err))
	}

	if !chatResp.Success {
		message := chatResp.Error
		if message == "" {
			message = defaultFailureMessage
		}
		return failure(message)
	}

	model := chatResp.ModelName
	if model == "" {
		model = UnknownModel
	}
	return models.CallResult{Success: true, Answer: chatResp.Text, Model: model}
}

func (c *Client) describeTransportError(err error) string {
	if isTimeout(err) {
		return fmt.Sprintf("Error: request timed out after %s: %v", c.timeout, err)
	}
	return fmt.Sprintf("Error: %v", err)
}

func (c *Client) describeDecodeError(err error) string {
	if isTimeout(err) {
		return fmt.Sprintf("Error: request timed out after %s: %v", c.timeout, err)
	}
	return fmt.Sprintf("Error: decoding response: %v", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func failure(message string) models.CallResult {
	return models.CallResult{Success: false, Answer: message}
}
