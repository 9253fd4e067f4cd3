// Package geo handles coordinate conversion and geographic data structures.
package geo

// GeoJSONFeatureCollection is the document written for GeoJSON and YAML
// station output, one feature per station in input order.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature is a single converted station. Properties carries "name".
type GeoJSONFeature struct {
	Properties map[string]any  `json:"properties" yaml:"properties"`
	Type       string          `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry is always a Point for station output.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat] per RFC 7946
}

// NewFeatureCollection returns an empty collection sized for n stations.
func NewFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, n),
	}
}

// AddPoint appends station name at c.
func (fc *GeoJSONFeatureCollection) AddPoint(name string, c Coordinate) {
	fc.Features = append(fc.Features, GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        "Point",
			Coordinates: []float64{c.Lon, c.Lat},
		},
		Properties: map[string]any{
			"name": name,
		},
	})
}
