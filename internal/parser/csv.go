package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
)

var (
	// Header is the fixed column order of the results file.
	Header = []string{"question", "answer", "version", "model"}

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	requiredColumns = []string{"question", "answer", "version"}
)

// WriteRecords writes a UTF-8 BOM, the header row and one row per record.
func WriteRecords(w io.Writer, records []models.TestRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte order mark: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		row := []string{record.Question, record.Answer, record.Version, record.Model}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func WriteRecordsFile(filePath string, records []models.TestRecord) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}

	if err := WriteRecords(file, records); err != nil {
		file.Close()
		return fmt.Errorf("failed to write records to %s: %w", filePath, err)
	}

	return file.Close()
}

// ReadRecords parses a results file. Columns are matched by header name, so the
// model column and any extra column are optional.
func ReadRecords(r io.Reader) ([]models.TestRecord, error) {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		if _, err := buffered.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("failed to skip byte order mark: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	modelIndex, hasModel := columns["model"]

	var records []models.TestRecord
	for rowNumber := 1; ; rowNumber++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", rowNumber, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, header has %d", rowNumber, len(row), len(header))
		}

		record := models.TestRecord{
			Question: row[columns["question"]],
			Answer:   row[columns["answer"]],
			Version:  row[columns["version"]],
		}
		if hasModel {
			record.Model = row[modelIndex]
		}
		records = append(records, record)
	}

	return records, nil
}

func ReadRecordsFile(filePath string) ([]models.TestRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	records, err := ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read records from %s: %w", filePath, err)
	}

	return records, nil
}
