package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epistats/covidboard-api/consts"
	"github.com/epistats/covidboard-api/external/owid"
	"github.com/epistats/covidboard-api/schema"
	"github.com/epistats/covidboard-api/stats"
)

const (
	rankingSize = 10
	previewSize = 50
)

type summaryQueryParams struct {
	Location  string `form:"location"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// kpi is one headline metric: the raw value and its display string,
// "N/A" when the value is missing.
type kpi struct {
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

type seriesPoint struct {
	Date       string   `json:"date"`
	TotalCases *float64 `json:"total_cases"`
}

type rankingEntry struct {
	Location              string  `json:"location"`
	TotalDeathsPerMillion float64 `json:"total_deaths_per_million"`
}

type scatterPoint struct {
	PeopleFullyVaccinatedPerHundred float64 `json:"people_fully_vaccinated_per_hundred"`
	TotalDeathsPerMillion           float64 `json:"total_deaths_per_million"`
	Location                        string  `json:"location"`
}

// dataset resolves the cached dataset for a request, translating a
// total load failure into a 503 response.
func (s *Server) dataset(c *gin.Context) (*schema.Dataset, bool) {
	ds, err := s.store.Dataset()
	if nil != err {
		log.Error(err)

		var loadErr *owid.LoadError
		if errors.As(err, &loadErr) {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetUnavailable, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil, false
	}

	return ds, true
}

func (s *Server) locations(c *gin.Context) {
	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	locations := stats.AvailableLocations(ds)
	c.JSON(http.StatusOK, gin.H{
		"locations":        locations,
		"default_location": stats.DefaultLocation(locations),
	})
}

func (s *Server) dateBounds(c *gin.Context) {
	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	minDate, maxDate := stats.DateBounds(ds)
	c.JSON(http.StatusOK, gin.H{
		"min_date": minDate.Format(schema.DateFormat),
		"max_date": maxDate.Format(schema.DateFormat),
	})
}

// summary runs one full render cycle of the dashboard: the filtered
// view, the three KPIs, the three chart inputs and the preview rows.
func (s *Server) summary(c *gin.Context) {
	var params summaryQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	minDate, maxDate := stats.DateBounds(ds)

	location := params.Location
	if location == "" {
		location = stats.DefaultLocation(stats.AvailableLocations(ds))
	}

	start, end := minDate, maxDate
	var err error
	if params.StartDate != "" {
		start, err = time.Parse(schema.DateFormat, params.StartDate)
		if nil != err {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}
	if params.EndDate != "" {
		end, err = time.Parse(schema.DateFormat, params.EndDate)
		if nil != err {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	view := stats.FilterByLocationAndRange(ds, location, start, end)
	if view.Empty() {
		c.JSON(http.StatusOK, gin.H{
			"empty":   true,
			"message": "No data available for the selected filters. Try a different date range.",
		})
		return
	}

	latest := view.Latest()

	series := make([]seriesPoint, 0, len(view.Records))
	for _, r := range view.Records {
		series = append(series, seriesPoint{
			Date:       r.Date.Format(schema.DateFormat),
			TotalCases: r.TotalCases,
		})
	}

	snapshot := stats.LatestPerLocation(ds)

	ranking := []rankingEntry{}
	for _, r := range stats.TopNByMetric(snapshot, stats.TotalDeathsPerMillion, rankingSize, consts.AggregateLocations) {
		ranking = append(ranking, rankingEntry{
			Location:              r.Location,
			TotalDeathsPerMillion: *r.TotalDeathsPerMillion,
		})
	}

	scatter := []scatterPoint{}
	for _, p := range stats.PairedMetrics(snapshot, stats.PeopleFullyVaccinatedPerHundred, stats.TotalDeathsPerMillion, consts.AggregateLocations) {
		scatter = append(scatter, scatterPoint{
			PeopleFullyVaccinatedPerHundred: p.X,
			TotalDeathsPerMillion:           p.Y,
			Location:                        p.Location,
		})
	}

	preview := view.Records
	if len(preview) > previewSize {
		preview = preview[:previewSize]
	}

	c.JSON(http.StatusOK, gin.H{
		"location":   location,
		"start_date": start.Format(schema.DateFormat),
		"end_date":   end.Format(schema.DateFormat),
		"kpi": gin.H{
			"total_cases": kpi{
				Value:   latest.TotalCases,
				Display: stats.FormatCount(latest.TotalCases),
			},
			"total_deaths": kpi{
				Value:   latest.TotalDeaths,
				Display: stats.FormatCount(latest.TotalDeaths),
			},
			"fully_vaccinated_per_hundred": kpi{
				Value:   latest.PeopleFullyVaccinatedPerHundred,
				Display: stats.FormatPercent(latest.PeopleFullyVaccinatedPerHundred),
			},
		},
		"case_series":            series,
		"top_deaths_per_million": ranking,
		"vaccination_vs_deaths":  scatter,
		"preview":                preview,
	})
}
