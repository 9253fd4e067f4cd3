// Package config holds the compiled-in site constants.
//
// These need to be modified if the start point moves. The command line
// options of geostart are pre-populated from them.
package config

// Start point of the site.
const (
	StartLatitude  = 51.042103
	StartLongitude = 3.725674
)

// EarthRadiusM is the radius of the earth at the latitude of the start
// point, in meters.
const EarthRadiusM = 6365264.0

// Column labels of the tabular output.
const (
	HeaderName      = "Puntnaam"
	HeaderLatitude  = "Latitude"
	HeaderLongitude = "Longitude"
)

// Header returns the default output column labels.
func Header() []string {
	return []string{HeaderName, HeaderLatitude, HeaderLongitude}
}
