// Package processor turns station offsets into absolute coordinates.
package processor

import (
	"fmt"
	"io"

	"github.com/woozymasta/geostart/internal/geo"
	"github.com/woozymasta/geostart/internal/station"

	"github.com/rs/zerolog/log"
)

// ConvertAll applies conv to every offset in input order.
// If progress is not nil one "name: lat° N, lon° E" line is written to it per record.
func ConvertAll(conv *geo.Converter, offsets *station.Offsets, progress io.Writer) (*station.Positions, error) {
	positions := station.NewTable[geo.Coordinate](offsets.Len())

	for name, off := range offsets.All() {
		c := conv.Convert(off)

		if progress != nil {
			if _, err := fmt.Fprintf(progress, "%s: %s° N, %s° E\n",
				name, geo.FormatDegrees(c.Lat), geo.FormatDegrees(c.Lon)); err != nil {
				return nil, err
			}
		}

		log.Trace().
			Str("name", name).
			Float64("dx", off.DX).
			Float64("dy", off.DY).
			Float64("lat", c.Lat).
			Float64("lon", c.Lon).
			Msg("Station converted")

		positions.Set(name, c)
	}

	return positions, nil
}
