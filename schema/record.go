package schema

import "time"

// DateFormat is the calendar-date layout used by the dataset and the
// API query parameters.
const DateFormat = "2006-01-02"

// Record is one country-date observation. Metric fields are pointers:
// a nil value means the source cell was empty, which is not the same
// as zero.
type Record struct {
	Location                        string    `json:"location"`
	Date                            time.Time `json:"date"`
	TotalCases                      *float64  `json:"total_cases"`
	TotalDeaths                     *float64  `json:"total_deaths"`
	TotalDeathsPerMillion           *float64  `json:"total_deaths_per_million"`
	PeopleFullyVaccinatedPerHundred *float64  `json:"people_fully_vaccinated_per_hundred"`
}

// Dataset is the full in-memory table for one cache epoch. It is
// immutable once produced; derived views copy, they never mutate.
type Dataset struct {
	Records   []Record
	FetchedAt time.Time
}
