package stats

import (
	"sort"
	"time"

	"github.com/epistats/covidboard-api/consts"
	"github.com/epistats/covidboard-api/schema"
)

// AvailableLocations lists the distinct non-empty locations of the
// dataset in sorted order.
func AvailableLocations(ds *schema.Dataset) []string {
	seen := make(map[string]struct{})
	locations := []string{}

	for _, r := range ds.Records {
		if r.Location == "" {
			continue
		}
		if _, ok := seen[r.Location]; ok {
			continue
		}
		seen[r.Location] = struct{}{}
		locations = append(locations, r.Location)
	}

	sort.Strings(locations)
	return locations
}

// DefaultLocation picks the selector default: the preferred location
// when present, otherwise the first in sorted order.
func DefaultLocation(locations []string) string {
	if len(locations) == 0 {
		return ""
	}

	for _, l := range locations {
		if l == consts.PreferredLocation {
			return l
		}
	}

	return locations[0]
}

// DateBounds returns the global min and max date across all records of
// the dataset.
func DateBounds(ds *schema.Dataset) (time.Time, time.Time) {
	var min, max time.Time

	for _, r := range ds.Records {
		if min.IsZero() || r.Date.Before(min) {
			min = r.Date
		}
		if max.IsZero() || r.Date.After(max) {
			max = r.Date
		}
	}

	return min, max
}
