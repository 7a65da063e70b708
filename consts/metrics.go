package consts

// Column names of the dataset recognized by the loader. Other columns
// in the source file are ignored.
const (
	ColumnLocation                        = "location"
	ColumnDate                            = "date"
	ColumnTotalCases                      = "total_cases"
	ColumnTotalDeaths                     = "total_deaths"
	ColumnTotalDeathsPerMillion           = "total_deaths_per_million"
	ColumnPeopleFullyVaccinatedPerHundred = "people_fully_vaccinated_per_hundred"
)

// PreferredLocation is the location selector default when present in
// the dataset.
const PreferredLocation = "India"

// AggregateLocations are pseudo-locations of the dataset that do not
// represent a single country and are excluded from cross-country
// rankings.
var AggregateLocations = []string{"World"}
