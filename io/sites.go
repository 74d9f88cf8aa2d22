package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/rotations/frames"
)

// ReadSiteTable reads latitudes, longitudes, and altitudes from the given
// columns of a whitespace-separated text table. Sites are named after the
// (one-indexed) row they were read from.
func ReadSiteTable(fname string, latCol, lonCol, altCol int) ([]Site, error) {
	cols, err := table.ReadTable(fname, []int{latCol, lonCol, altCol}, nil)
	if err != nil { return nil, err }

	lats, lons, alts := cols[0], cols[1], cols[2]
	sites := make([]Site, len(lats))
	for i := range sites {
		sites[i] = Site{
			Name: fmt.Sprintf("%s:%d", fname, i+1),
			Lat: lats[i], Lon: lons[i], Alt: alts[i],
		}
		if err := frames.CheckLatitude(sites[i].Lat, true); err != nil {
			return nil, fmt.Errorf("Row %d of '%s': %w", i+1, fname, err)
		}
	}

	return sites, nil
}
