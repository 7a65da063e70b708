package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epistats/covidboard-api/schema"
)

type fakeSource struct {
	calls int
	ds    *schema.Dataset
	err   error
}

func (f *fakeSource) Fetch() (*schema.Dataset, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ds, nil
}

func testDataset(location string) *schema.Dataset {
	return &schema.Dataset{
		Records: []schema.Record{
			{Location: location, Date: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		FetchedAt: time.Now().UTC(),
	}
}

func TestDatasetCachedWithinTTL(t *testing.T) {
	source := &fakeSource{ds: testDataset("India")}
	s := NewDashboardStore(source)

	clock := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	first, err := s.Dataset()
	assert.Nil(t, err, "wrong Dataset")

	clock = clock.Add(DatasetTTL - time.Minute)
	second, err := s.Dataset()
	assert.Nil(t, err, "wrong Dataset")

	assert.Equal(t, 1, source.calls, "second call within TTL must not fetch")
	assert.Equal(t, first, second, "cached dataset should be identical")
}

func TestDatasetRefreshedAfterTTL(t *testing.T) {
	source := &fakeSource{ds: testDataset("India")}
	s := NewDashboardStore(source)

	clock := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	_, err := s.Dataset()
	assert.Nil(t, err, "wrong Dataset")

	source.ds = testDataset("France")
	clock = clock.Add(DatasetTTL + time.Minute)

	refreshed, err := s.Dataset()
	assert.Nil(t, err, "wrong Dataset")
	assert.Equal(t, 2, source.calls, "expiry should trigger exactly one new fetch")
	assert.Equal(t, "France", refreshed.Records[0].Location, "slot should hold the new dataset")
}

func TestDatasetFetchErrorNotCached(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("boom")}
	s := NewDashboardStore(source)

	_, err := s.Dataset()
	assert.NotNil(t, err, "fetch failure should surface")
	assert.Nil(t, s.Cached(), "failure must not fill the slot")

	_, err = s.Dataset()
	assert.NotNil(t, err, "fetch failure should surface")
	assert.Equal(t, 2, source.calls, "failures are not memoized")
}

func TestCachedDoesNotFetch(t *testing.T) {
	source := &fakeSource{ds: testDataset("India")}
	s := NewDashboardStore(source)

	assert.Nil(t, s.Cached(), "empty slot expected")
	assert.Equal(t, 0, source.calls, "Cached must not fetch")

	_, err := s.Dataset()
	assert.Nil(t, err, "wrong Dataset")
	assert.NotNil(t, s.Cached(), "slot should be filled")
}
