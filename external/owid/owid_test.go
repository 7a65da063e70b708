package owid_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epistats/covidboard-api/external/owid"
)

const sampleCSV = `iso_code,location,date,total_cases,total_deaths,total_deaths_per_million,people_fully_vaccinated_per_hundred
IND,India,2021-06-01,100,10,1.5,20.5
IND,India,2021-06-02,150,12,1.8,
OWID_WRL,World,2021-06-02,1000,100,2.2,30.1
`

func csvServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
}

func failingServer(code int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}))
}

func TestFetchParsesRecords(t *testing.T) {
	ts := csvServer(sampleCSV)
	defer ts.Close()

	source := owid.New(nil, []string{ts.URL})
	ds, err := source.Fetch()
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, 3, len(ds.Records), "wrong record count")

	first := ds.Records[0]
	assert.Equal(t, "India", first.Location, "wrong location")
	assert.Equal(t, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), first.Date, "wrong date")
	assert.Equal(t, 100.0, *first.TotalCases, "wrong total cases")
	assert.Equal(t, 20.5, *first.PeopleFullyVaccinatedPerHundred, "wrong vaccination rate")

	second := ds.Records[1]
	assert.Nil(t, second.PeopleFullyVaccinatedPerHundred, "empty cell should be missing")
	assert.False(t, ds.FetchedAt.IsZero(), "missing fetch timestamp")
}

func TestFetchFallback(t *testing.T) {
	bad := failingServer(http.StatusInternalServerError)
	defer bad.Close()
	good := csvServer(sampleCSV)
	defer good.Close()

	source := owid.New(nil, []string{bad.URL, good.URL})
	ds, err := source.Fetch()
	assert.Nil(t, err, "fallback candidate should succeed")
	assert.Equal(t, 3, len(ds.Records), "wrong record count from fallback")
}

func TestFetchFallbackOnParseError(t *testing.T) {
	bad := csvServer("location,date\nIndia,not-a-date\n")
	defer bad.Close()
	good := csvServer(sampleCSV)
	defer good.Close()

	source := owid.New(nil, []string{bad.URL, good.URL})
	ds, err := source.Fetch()
	assert.Nil(t, err, "fallback candidate should succeed")
	assert.Equal(t, 3, len(ds.Records), "wrong record count from fallback")
}

func TestFetchAllCandidatesFail(t *testing.T) {
	first := failingServer(http.StatusInternalServerError)
	defer first.Close()
	last := failingServer(http.StatusBadGateway)
	defer last.Close()

	source := owid.New(nil, []string{first.URL, last.URL})
	ds, err := source.Fetch()
	assert.Nil(t, ds, "no dataset expected")

	var loadErr *owid.LoadError
	assert.True(t, errors.As(err, &loadErr), "wrong error type")
	assert.True(t, strings.Contains(loadErr.LastErr.Error(), "502"), "cause should be the last candidate's failure")
}

func TestFetchMissingRequiredColumn(t *testing.T) {
	ts := csvServer("country,day\nIndia,2021-06-01\n")
	defer ts.Close()

	source := owid.New(nil, []string{ts.URL})
	_, err := source.Fetch()

	var loadErr *owid.LoadError
	assert.True(t, errors.As(err, &loadErr), "wrong error type")
	assert.True(t, strings.Contains(err.Error(), "missing column"), "wrong cause")
}

func TestFetchMalformedMetricIsMissing(t *testing.T) {
	ts := csvServer("location,date,total_cases\nIndia,2021-06-01,oops\n")
	defer ts.Close()

	source := owid.New(nil, []string{ts.URL})
	ds, err := source.Fetch()
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, 1, len(ds.Records), "wrong record count")
	assert.Nil(t, ds.Records[0].TotalCases, "malformed cell should be missing")
}
