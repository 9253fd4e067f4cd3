package tabular

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseError reports a record field that could not be parsed.
// Row is 1-based and counts the header row.
type ParseError struct {
	Err    error
	Column string
	Value  string
	Row    int
}

func (e *ParseError) Error() string {
	reason := e.Err
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		reason = numErr.Err
	}
	return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Column, e.Value, reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedRowError reports a row with fewer fields than a record needs.
type MalformedRowError struct {
	Row    int
	Fields int
}

func (e *MalformedRowError) Error() string {
	if e.Fields == 0 && e.Row == 1 {
		return "row 1: missing header row"
	}
	return fmt.Sprintf("row %d: expected at least %d fields (name, dx, dy), got %d", e.Row, recordFields, e.Fields)
}
