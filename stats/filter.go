package stats

import (
	"sort"
	"time"

	"github.com/epistats/covidboard-api/schema"
)

// FilteredView is the read-only subset of a dataset for one location
// and an inclusive date range, ordered by date.
type FilteredView struct {
	Records []schema.Record
}

// FilterByLocationAndRange selects the records of one location whose
// date lies in [start, end]. A start after end, an unknown location or
// a range with no observations all produce an empty view; emptiness is
// an expected condition the caller checks, not an error.
func FilterByLocationAndRange(ds *schema.Dataset, location string, start, end time.Time) FilteredView {
	records := []schema.Record{}
	if start.After(end) {
		return FilteredView{Records: records}
	}

	for _, r := range ds.Records {
		if r.Location != location {
			continue
		}
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		records = append(records, r)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return FilteredView{Records: records}
}

// Empty reports whether the view holds no records.
func (v FilteredView) Empty() bool {
	return len(v.Records) == 0
}

// Latest returns the record with the maximum date; on equal dates the
// last one in stable sort order wins. Nil for an empty view.
func (v FilteredView) Latest() *schema.Record {
	if v.Empty() {
		return nil
	}

	r := v.Records[len(v.Records)-1]
	return &r
}
