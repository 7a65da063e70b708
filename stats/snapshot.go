package stats

import (
	"sort"

	"github.com/epistats/covidboard-api/schema"
)

// Metric selects one nullable metric column of a record.
type Metric func(schema.Record) *float64

func TotalCases(r schema.Record) *float64 {
	return r.TotalCases
}

func TotalDeaths(r schema.Record) *float64 {
	return r.TotalDeaths
}

func TotalDeathsPerMillion(r schema.Record) *float64 {
	return r.TotalDeathsPerMillion
}

func PeopleFullyVaccinatedPerHundred(r schema.Record) *float64 {
	return r.PeopleFullyVaccinatedPerHundred
}

// Snapshot holds the chronologically last record of every location of
// a dataset. Order is unspecified; consumers re-sort as needed.
type Snapshot []schema.Record

// LatestPerLocation groups the dataset by location and keeps each
// group's record with the maximum date. On equal dates the later
// record in dataset order wins.
func LatestPerLocation(ds *schema.Dataset) Snapshot {
	latest := make(map[string]schema.Record)
	for _, r := range ds.Records {
		cur, ok := latest[r.Location]
		if !ok || !r.Date.Before(cur.Date) {
			latest[r.Location] = r
		}
	}

	snapshot := make(Snapshot, 0, len(latest))
	for _, r := range latest {
		snapshot = append(snapshot, r)
	}

	return snapshot
}

// TopNByMetric ranks the snapshot by one metric in descending order and
// keeps the first n records. Records missing the metric and excluded
// locations are dropped; ties keep their relative order.
func TopNByMetric(snapshot Snapshot, metric Metric, n int, exclude []string) Snapshot {
	excluded := make(map[string]struct{})
	for _, l := range exclude {
		excluded[l] = struct{}{}
	}

	ranked := Snapshot{}
	for _, r := range snapshot {
		if _, ok := excluded[r.Location]; ok {
			continue
		}
		if metric(r) == nil {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *metric(ranked[i]) > *metric(ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// MetricPair is one scatter point: two metric values and the location
// they belong to.
type MetricPair struct {
	X        float64
	Y        float64
	Location string
}

// PairedMetrics returns an (x, y, location) triple for every snapshot
// record that carries both metrics and is not an excluded location.
func PairedMetrics(snapshot Snapshot, x, y Metric, exclude []string) []MetricPair {
	excluded := make(map[string]struct{})
	for _, l := range exclude {
		excluded[l] = struct{}{}
	}

	pairs := []MetricPair{}
	for _, r := range snapshot {
		if _, ok := excluded[r.Location]; ok {
			continue
		}

		xv, yv := x(r), y(r)
		if xv == nil || yv == nil {
			continue
		}

		pairs = append(pairs, MetricPair{
			X:        *xv,
			Y:        *yv,
			Location: r.Location,
		})
	}

	return pairs
}
