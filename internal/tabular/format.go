// Package tabular reads station offsets from and writes station coordinates
// to tabular files.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a file encoding.
type Format string

// Supported formats.
const (
	FormatAuto    Format = "auto"
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatGeoJSON Format = "geojson"
	FormatYAML    Format = "yaml"
)

// DetectFormat picks a format from the file extension, defaulting to CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".geojson", ".json":
		return FormatGeoJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Resolve returns f, or the format detected from path when f is empty or auto.
func Resolve(f Format, path string) Format {
	if f == "" || f == FormatAuto {
		return DetectFormat(path)
	}
	return f
}

// CanRead reports whether offsets can be read from f.
func (f Format) CanRead() bool {
	return f == FormatCSV || f == FormatXLSX
}

// CanWrite reports whether coordinates can be written as f.
func (f Format) CanWrite() bool {
	switch f {
	case FormatCSV, FormatXLSX, FormatGeoJSON, FormatYAML:
		return true
	}
	return false
}

func errUnsupported(f Format, op string) error {
	return fmt.Errorf("format %q is not supported for %s", f, op)
}
