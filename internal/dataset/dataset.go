// Package dataset loads tabular input data for the bulk importer. Rows come
// in as named string fields (from CSV files or built-in samples) and leave as
// typed records, so malformed values are caught here rather than mid-import.
package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// Row is a single tabular record: field name to raw string value.
type Row map[string]string

// EnrollmentDateLayout is the wire format for enrollment dates.
const EnrollmentDateLayout = "2006-01-02"

// field returns the named field or an error mentioning the row number, so
// loader errors pinpoint the offending input line.
func field(row Row, name string, rowNum int) (string, error) {
	v, ok := row[name]
	if !ok || v == "" {
		return "", fmt.Errorf("row %d: missing field %q", rowNum, name)
	}
	return v, nil
}

// intField parses the named field as an integer.
func intField(row Row, name string, rowNum int) (int64, error) {
	raw, err := field(row, name, rowNum)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: field %q: parse int: %w", rowNum, name, err)
	}
	return n, nil
}

// dateField parses the named field as an enrollment date. An unparsable date
// is a fatal input error, not a skippable one.
func dateField(row Row, name string, rowNum int) (time.Time, error) {
	raw, err := field(row, name, rowNum)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(EnrollmentDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("row %d: field %q: parse date: %w", rowNum, name, err)
	}
	return t, nil
}
