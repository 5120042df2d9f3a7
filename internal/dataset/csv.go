package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ReadCSV parses CSV input into rows keyed by the header line. Rows with a
// mismatched column count are padded or truncated with a warning rather than
// failing the whole file.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	// We pad/truncate short and long rows ourselves.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty input: no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}

	var rows []Row
	rowNum := 1 // header is row 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if len(record) != len(headers) {
			log.Warn().
				Int("row", rowNum).
				Int("columns", len(record)).
				Int("expected", len(headers)).
				Msg("Column count mismatch, adjusting row")
			if len(record) < len(headers) {
				padded := make([]string, len(headers))
				copy(padded, record)
				record = padded
			} else {
				record = record[:len(headers)]
			}
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadCSVFile parses the CSV file at path.
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}
