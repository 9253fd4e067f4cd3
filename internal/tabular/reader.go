package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/geostart/internal/geo"
	"github.com/woozymasta/geostart/internal/station"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// name, dx, dy
const recordFields = 3

var errEmptyName = errors.New("empty station name")

// ReadFile reads all offsets from path. The whole file is parsed before
// anything is returned; the first bad row aborts the read.
func ReadFile(path string, f Format) (*station.Offsets, error) {
	f = Resolve(f, path)
	if !f.CanRead() {
		return nil, errUnsupported(f, "input")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	offsets, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("format", string(f)).
		Int("records", offsets.Len()).
		Msg("Offsets loaded")

	return offsets, nil
}

// Read parses offsets encoded as f from r.
func Read(r io.Reader, f Format) (*station.Offsets, error) {
	switch f {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, errUnsupported(f, "input")
	}
}

// ReadCSV parses comma separated rows of name, dx, dy after a header row.
func ReadCSV(r io.Reader) (*station.Offsets, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// Skip header row
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, &MalformedRowError{Row: 1}
		}
		return nil, err
	}

	offsets := station.NewTable[geo.Offset](0)
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if err := addRecord(offsets, rec, row); err != nil {
			return nil, err
		}
	}

	return offsets, nil
}

// ReadXLSX parses the first sheet of a workbook the same way as ReadCSV.
func ReadXLSX(r io.Reader) (*station.Offsets, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = wb.Close() }()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &MalformedRowError{Row: 1}
	}

	offsets := station.NewTable[geo.Offset](len(rows) - 1)
	for i, rec := range rows[1:] {
		if err := addRecord(offsets, rec, i+2); err != nil {
			return nil, err
		}
	}

	return offsets, nil
}

func addRecord(offsets *station.Offsets, rec []string, row int) error {
	if len(rec) < recordFields {
		return &MalformedRowError{Row: row, Fields: len(rec)}
	}

	name := rec[0]
	if strings.TrimSpace(name) == "" {
		return &ParseError{Row: row, Column: "name", Value: name, Err: errEmptyName}
	}

	dx, err := parseFloat(rec[1])
	if err != nil {
		return &ParseError{Row: row, Column: "dx", Value: rec[1], Err: err}
	}
	dy, err := parseFloat(rec[2])
	if err != nil {
		return &ParseError{Row: row, Column: "dy", Value: rec[2], Err: err}
	}

	if _, dup := offsets.Get(name); dup {
		log.Warn().Str("name", name).Int("row", row).Msg("Duplicate station name, later row wins")
	}
	offsets.Set(name, geo.Offset{DX: dx, DY: dy})

	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
