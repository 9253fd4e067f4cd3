package tabular

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geostart/internal/geo"
	"github.com/woozymasta/geostart/internal/station"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Header holds the three column labels of a tabular output: name, latitude, longitude.
type Header [3]string

// xlsxSheet is the sheet name used for workbook output.
const xlsxSheet = "Locations"

// WriteFile writes positions encoded as f to path, creating or truncating it.
// The whole document is encoded before the file is touched, so a failed
// encode leaves an existing file as it was.
func WriteFile(path string, f Format, header Header, positions *station.Positions) error {
	f = Resolve(f, path)
	if !f.CanWrite() {
		return errUnsupported(f, "output")
	}

	var buf bytes.Buffer
	if err := Write(&buf, f, header, positions); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Write encodes positions as f. Header is used by the tabular formats only.
func Write(w io.Writer, f Format, header Header, positions *station.Positions) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, header, positions)
	case FormatXLSX:
		return WriteXLSX(w, header, positions)
	case FormatGeoJSON:
		return WriteGeoJSON(w, positions)
	case FormatYAML:
		return WriteYAML(w, positions)
	default:
		return errUnsupported(f, "output")
	}
}

// WriteCSV writes the header row followed by one name, lat, lon row per record.
func WriteCSV(w io.Writer, header Header, positions *station.Positions) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return err
	}

	for name, c := range positions.All() {
		if err := cw.Write([]string{name, geo.FormatDegrees(c.Lat), geo.FormatDegrees(c.Lon)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook laid out like the CSV output.
func WriteXLSX(w io.Writer, header Header, positions *station.Positions) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	if err := wb.SetSheetName(wb.GetSheetName(0), xlsxSheet); err != nil {
		return err
	}

	if err := wb.SetSheetRow(xlsxSheet, "A1", &[]any{header[0], header[1], header[2]}); err != nil {
		return err
	}

	row := 2
	for name, c := range positions.All() {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(xlsxSheet, cell, &[]any{name, c.Lat, c.Lon}); err != nil {
			return err
		}
		row++
	}

	return wb.Write(w)
}

// WriteGeoJSON writes positions as an indented GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, positions *station.Positions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(featureCollection(positions))
}

// WriteYAML writes the same document as WriteGeoJSON in YAML.
func WriteYAML(w io.Writer, positions *station.Positions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(featureCollection(positions)); err != nil {
		return err
	}
	return enc.Close()
}

func featureCollection(positions *station.Positions) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(positions.Len())
	for name, c := range positions.All() {
		fc.AddPoint(name, c)
	}
	return fc
}
