package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/s2"
)

// Coordinate is an absolute position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Offset is a planar displacement in meters from the origin.
// DX runs along the latitude axis, DY along the longitude axis.
type Offset struct {
	DX float64
	DY float64
}

// DegreesPerMeter returns how many degrees of arc one meter spans
// on a sphere with the given radius.
func DegreesPerMeter(radiusM float64) float64 {
	return 1 / ((2 * math.Pi / 360) * radiusM)
}

// Convert applies a meter offset to origin using a local flat-earth
// (equirectangular) approximation.
//
// The longitude correction divides by cos of the new latitude, so the
// result diverges as the latitude approaches ±90°. Offsets near the
// poles produce very large or infinite longitudes; callers that care
// must keep their origin well away from them.
func Convert(origin Coordinate, radiusM float64, off Offset) Coordinate {
	return convert(origin, DegreesPerMeter(radiusM), off)
}

func convert(origin Coordinate, degPerM float64, off Offset) Coordinate {
	lat := origin.Lat + off.DX*degPerM

	// meridians converge towards the poles (math.Cos needs radians)
	dlon := (off.DY * degPerM) / math.Cos(lat*(math.Pi/180))

	return Coordinate{Lat: lat, Lon: origin.Lon + dlon}
}

// Converter holds a fixed origin and the degree-per-meter factor of its radius.
// It is immutable and safe for concurrent use.
type Converter struct {
	origin  Coordinate
	radiusM float64
	degPerM float64
}

// NewConverter validates the origin and radius and precomputes the
// degree-per-meter factor.
func NewConverter(origin Coordinate, radiusM float64) (*Converter, error) {
	if !(radiusM > 0) || math.IsInf(radiusM, 1) {
		return nil, fmt.Errorf("earth radius must be a positive finite number of meters, got %v", radiusM)
	}

	if !s2.LatLngFromDegrees(origin.Lat, origin.Lon).IsValid() {
		return nil, fmt.Errorf("origin %s, %s is outside of the valid latitude/longitude range",
			FormatDegrees(origin.Lat), FormatDegrees(origin.Lon))
	}

	return &Converter{
		origin:  origin,
		radiusM: radiusM,
		degPerM: DegreesPerMeter(radiusM),
	}, nil
}

// Origin returns the reference coordinate.
func (c *Converter) Origin() Coordinate { return c.origin }

// RadiusM returns the earth radius in meters.
func (c *Converter) RadiusM() float64 { return c.radiusM }

// Convert applies off to the converter origin.
func (c *Converter) Convert(off Offset) Coordinate {
	return convert(c.origin, c.degPerM, off)
}

// FormatDegrees renders a degree value with the shortest text that parses
// back to the same float64.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
