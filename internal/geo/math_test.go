package geo

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOrigin = Coordinate{Lat: 51.042103, Lon: 3.725674}
	testRadius = 6365264.0
)

func TestConvertZeroOffset(t *testing.T) {
	origins := []Coordinate{
		testOrigin,
		{Lat: 0, Lon: 0},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 89.5, Lon: -179.9},
	}

	for _, o := range origins {
		got := Convert(o, testRadius, Offset{})
		assert.Equal(t, o, got)
	}
}

func TestConvertLatitudeIsLinear(t *testing.T) {
	slope := DegreesPerMeter(testRadius)

	for _, dx := range []float64{-5000, -1, 0, 1, 100, 12345.678} {
		for _, dy := range []float64{0, 250, -3000} {
			got := Convert(testOrigin, testRadius, Offset{DX: dx, DY: dy})
			assert.InDelta(t, dx*slope, got.Lat-testOrigin.Lat, 1e-12, "dx=%v dy=%v", dx, dy)
		}
	}
}

func TestConvertLongitudeGrowsWithLatitude(t *testing.T) {
	prev := 0.0
	for lat := 0.0; lat < 90; lat += 5 {
		o := Coordinate{Lat: lat, Lon: 10}
		got := Convert(o, testRadius, Offset{DY: 1000})

		delta := math.Abs(got.Lon - o.Lon)
		assert.Greater(t, delta, prev, "lat=%v", lat)
		prev = delta
	}
}

func TestConvertUsesNewLatitudeForCorrection(t *testing.T) {
	off := Offset{DX: 50000, DY: 1000}
	got := Convert(testOrigin, testRadius, off)

	k := DegreesPerMeter(testRadius)
	want := testOrigin.Lon + (off.DY*k)/math.Cos(got.Lat*math.Pi/180)
	assert.Equal(t, want, got.Lon)

	atOrigin := testOrigin.Lon + (off.DY*k)/math.Cos(testOrigin.Lat*math.Pi/180)
	assert.NotEqual(t, atOrigin, got.Lon)
}

func TestConvertReferenceStation(t *testing.T) {
	k := DegreesPerMeter(testRadius)

	a := Convert(testOrigin, testRadius, Offset{})
	assert.Equal(t, 51.042103, a.Lat)
	assert.Equal(t, 3.725674, a.Lon)

	b := Convert(testOrigin, testRadius, Offset{DX: 100, DY: 50})
	assert.Greater(t, b.Lat, 51.042103)
	assert.InDelta(t, 100*k, b.Lat-51.042103, 1e-12)
	assert.Greater(t, b.Lon, 3.725674)
}

func TestConvertNearPoleDiverges(t *testing.T) {
	got := Convert(Coordinate{Lat: 90, Lon: 0}, testRadius, Offset{DY: 1})
	assert.Greater(t, math.Abs(got.Lon), 1e6)
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name    string
		origin  Coordinate
		radius  float64
		wantErr bool
	}{
		{name: "site", origin: testOrigin, radius: testRadius},
		{name: "pole", origin: Coordinate{Lat: 90, Lon: 0}, radius: testRadius},
		{name: "zero radius", origin: testOrigin, radius: 0, wantErr: true},
		{name: "negative radius", origin: testOrigin, radius: -1, wantErr: true},
		{name: "nan radius", origin: testOrigin, radius: math.NaN(), wantErr: true},
		{name: "infinite radius", origin: testOrigin, radius: math.Inf(1), wantErr: true},
		{name: "latitude out of range", origin: Coordinate{Lat: 91, Lon: 0}, radius: testRadius, wantErr: true},
		{name: "longitude out of range", origin: Coordinate{Lat: 0, Lon: 181}, radius: testRadius, wantErr: true},
		{name: "nan latitude", origin: Coordinate{Lat: math.NaN(), Lon: 0}, radius: testRadius, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConverter(tt.origin, tt.radius)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.origin, c.Origin())
			assert.Equal(t, tt.radius, c.RadiusM())
		})
	}
}

func TestConverterMatchesConvert(t *testing.T) {
	c, err := NewConverter(testOrigin, testRadius)
	require.NoError(t, err)

	for _, off := range []Offset{{}, {DX: 100, DY: 50}, {DX: -20, DY: 7.5}} {
		assert.Equal(t, Convert(testOrigin, testRadius, off), c.Convert(off))
	}
}

func TestFormatDegreesRoundTrip(t *testing.T) {
	c := Convert(testOrigin, testRadius, Offset{DX: 100, DY: 50})

	for _, v := range []float64{c.Lat, c.Lon, 51.042103, 0, -0.000001} {
		parsed, err := strconv.ParseFloat(FormatDegrees(v), 64)
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	assert.Equal(t, "51.042103", FormatDegrees(51.042103))
}
