package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TestRecord is one question/answer exchange with the chatbot. Failed is kept in
// memory only and marks answers that carry a degraded error string.
type TestRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Version  string `json:"version"`
	Model    string `json:"model,omitempty"`
	Failed   bool   `json:"-"`
}

// CallResult is the outcome of a single chat API call. Answer always holds
// something printable: the model answer on success, an error message otherwise.
type CallResult struct {
	Success bool
	Answer  string
	Model   string
}

type UploadPayload struct {
	SheetName string `json:"sheetName"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type RowError struct {
	Index   int
	Message string
	Err     error
	Record  *TestRecord
}

func (e *RowError) Error() string {
	var recordDetails string
	if e.Record != nil {
		recordJSON, err := json.Marshal(e.Record)
		if err != nil {
			recordDetails = "failed to marshal record to JSON"
		} else {
			recordDetails = string(recordJSON)
		}
	}

	if e.Err != nil {
		if recordDetails != "" {
			return fmt.Sprintf("Row %d: %s - %v - Record: %s", e.Index, e.Message, e.Err, recordDetails)
		}
		return fmt.Sprintf("Row %d: %s - %v", e.Index, e.Message, e.Err)
	}

	if recordDetails != "" {
		return fmt.Sprintf("Row %d: %s - Record: %s", e.Index, e.Message, recordDetails)
	}

	return fmt.Sprintf("Row %d: %s", e.Index, e.Message)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

type RunSummary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Duration  time.Duration
}

type UploadStats struct {
	Total     int
	Succeeded int
	Failed    int
	Errors    []RowError
}

// VersionSummary aggregates the archived records of one test version.
type VersionSummary struct {
	Version   string    `json:"version"`
	Total     int64     `json:"total"`
	Failed    int64     `json:"failed"`
	Models    []string  `json:"models"`
	LastRunAt time.Time `json:"last_run_at"`
}
