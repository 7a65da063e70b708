package store

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epistats/covidboard-api/external/owid"
	"github.com/epistats/covidboard-api/schema"
)

const logPrefix = "store"

// DatasetTTL is how long a downloaded dataset stays valid before the
// next call re-runs the fetch sequence.
const DatasetTTL = 24 * time.Hour

// DashboardCore is the storage interface of the dashboard API.
type DashboardCore interface {
	// Dataset returns the current dataset, downloading it when the
	// cache slot is empty or expired.
	Dataset() (*schema.Dataset, error)

	// Cached returns whatever dataset the cache slot holds without
	// triggering a download; nil when the slot is empty.
	Cached() *schema.Dataset
}

// DashboardStore is an implementation of DashboardCore backed by a
// single in-memory cache slot with a fixed TTL.
type DashboardStore struct {
	mu sync.Mutex

	source owid.Source
	now    func() time.Time

	cached    *schema.Dataset
	refreshed time.Time
}

// NewDashboardStore new instance of DashboardStore
func NewDashboardStore(source owid.Source) *DashboardStore {
	return &DashboardStore{
		source: source,
		now:    time.Now,
	}
}

// Dataset returns the memoized dataset while it is younger than
// DatasetTTL. After expiry the fetch sequence runs again and the slot
// is swapped under the lock, so a caller sees either the previous
// complete dataset or the new one. A failed refresh leaves the slot
// empty; the error surfaces to the caller.
func (s *DashboardStore) Dataset() (*schema.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.refreshed) < DatasetTTL {
		return s.cached, nil
	}

	ds, err := s.source.Fetch()
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("refresh dataset")
		s.cached = nil
		return nil, err
	}

	s.cached = ds
	s.refreshed = s.now()
	log.WithFields(log.Fields{"prefix": logPrefix, "records": len(ds.Records)}).Info("dataset cache refreshed")

	return s.cached, nil
}

// Cached is the non-fetching read of the cache slot.
func (s *DashboardStore) Cached() *schema.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cached
}
