package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
)

const (
	// MaxAnswerLength caps the answer sent to the sheet, in characters.
	MaxAnswerLength = 1000

	TimestampLayout = "2006-01-02 15:04:05"
)

type Uploader interface {
	Upload(ctx context.Context, payload models.UploadPayload) error
}

type Client struct {
	url        string
	strict     bool
	httpClient *http.Client
}

// NewClient returns an Apps Script upload client. Unless strict is set, any
// completed HTTP exchange counts as a successful upload and the response is
// not inspected.
func NewClient(url string, timeout time.Duration, strict bool) *Client {
	return &Client{
		url:        url,
		strict:     strict,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Upload(ctx context.Context, payload models.UploadPayload) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting payload: %w", err)
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if c.strict && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return fmt.Errorf("upload rejected with status: %s", resp.Status)
	}

	return nil
}

// NewPayload builds the sheet row for a record, truncating the answer to
// MaxAnswerLength characters.
func NewPayload(sheetName string, record models.TestRecord, now time.Time) models.UploadPayload {
	return models.UploadPayload{
		SheetName: sheetName,
		Question:  record.Question,
		Answer:    truncate(record.Answer, MaxAnswerLength),
		Version:   record.Version,
		Timestamp: now.Format(TimestampLayout),
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
