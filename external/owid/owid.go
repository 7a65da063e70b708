package owid

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epistats/covidboard-api/consts"
	"github.com/epistats/covidboard-api/schema"
)

const logPrefix = "owid"

// DefaultURLs are the candidate sources for the dataset, tried in
// priority order.
var DefaultURLs = []string{
	"https://covid.ourworldindata.org/data/owid-covid-data.csv",
	"https://raw.githubusercontent.com/owid/covid-19-data/master/public/data/owid-covid-data.csv",
}

// LoadError reports that every candidate source failed. It carries the
// last candidate's failure for diagnostics.
type LoadError struct {
	LastErr error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to download dataset. last error: %s", e.LastErr)
}

func (e *LoadError) Unwrap() error {
	return e.LastErr
}

// Source downloads and parses the dataset.
type Source interface {
	Fetch() (*schema.Dataset, error)
}

type client struct {
	urls       []string
	httpClient *http.Client
}

// New - dataset client over the given candidate URLs. The default
// candidate list is used when urls is empty.
func New(httpClient *http.Client, urls []string) Source {
	u := urls
	if len(u) == 0 {
		u = DefaultURLs
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 60 * time.Second,
		}
	}

	return &client{
		urls:       u,
		httpClient: httpClient,
	}
}

// Fetch tries each candidate in order and returns the first fully
// parsed dataset. Nothing is merged across candidates: the first full
// success wins.
func (c *client) Fetch() (*schema.Dataset, error) {
	var lastErr error
	for _, url := range c.urls {
		ds, err := c.fetchOne(url)
		if nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Warn("candidate source failed")
			lastErr = err
			continue
		}

		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "records": len(ds.Records)}).Info("dataset downloaded")
		return ds, nil
	}

	return nil, &LoadError{LastErr: lastErr}
}

func (c *client) fetchOne(url string) (*schema.Dataset, error) {
	resp, err := c.httpClient.Get(url)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("response status %s", resp.Status)
	}

	records, err := parse(resp.Body)
	if nil != err {
		return nil, err
	}

	return &schema.Dataset{
		Records:   records,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// parse reads the header row, resolves the recognized columns and turns
// every following row into a Record. An unparseable date cell fails the
// whole candidate; an empty or malformed metric cell is a missing
// value.
func parse(r io.Reader) ([]schema.Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if nil != err {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int)
	for i, name := range header {
		index[name] = i
	}

	locationCol, ok := index[consts.ColumnLocation]
	if !ok {
		return nil, fmt.Errorf("missing column %q", consts.ColumnLocation)
	}
	dateCol, ok := index[consts.ColumnDate]
	if !ok {
		return nil, fmt.Errorf("missing column %q", consts.ColumnDate)
	}

	records := []schema.Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, fmt.Errorf("read row: %w", err)
		}

		date, err := time.Parse(schema.DateFormat, row[dateCol])
		if nil != err {
			return nil, fmt.Errorf("parse date %q: %w", row[dateCol], err)
		}

		records = append(records, schema.Record{
			Location:                        row[locationCol],
			Date:                            date,
			TotalCases:                      metric(row, index, consts.ColumnTotalCases),
			TotalDeaths:                     metric(row, index, consts.ColumnTotalDeaths),
			TotalDeathsPerMillion:           metric(row, index, consts.ColumnTotalDeathsPerMillion),
			PeopleFullyVaccinatedPerHundred: metric(row, index, consts.ColumnPeopleFullyVaccinatedPerHundred),
		})
	}

	return records, nil
}

func metric(row []string, index map[string]int, column string) *float64 {
	i, ok := index[column]
	if !ok || row[i] == "" {
		return nil
	}

	v, err := strconv.ParseFloat(row[i], 64)
	if nil != err {
		return nil
	}

	return &v
}
