package dashboard

import (
	"context"
	"sync"

	"github.com/mwhalen/weather-deck/internal/models"
)

// Fetcher resolves a city name to a current-conditions record.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (models.WeatherRecord, error)
}

// State owns the ordered collection of weather records. Order is
// insertion/recency order and ids are unique within the collection. All
// writes happen from the UI update loop; fetches run elsewhere and apply
// their results through these methods.
type State struct {
	records []models.WeatherRecord
}

// NewState creates an empty dashboard state.
func NewState() *State {
	return &State{}
}

// FetchAll resolves the given cities concurrently and returns the
// successful records in input order. Failed cities are dropped silently:
// partial data beats blocking the whole dashboard on one bad city name.
func FetchAll(ctx context.Context, fetcher Fetcher, cities []string) []models.WeatherRecord {
	results := make([]models.WeatherRecord, len(cities))
	succeeded := make([]bool, len(cities))

	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func(i int, city string) {
			defer wg.Done()
			record, err := fetcher.Fetch(ctx, city)
			if err != nil {
				return
			}
			results[i] = record
			succeeded[i] = true
		}(i, city)
	}
	wg.Wait()

	records := make([]models.WeatherRecord, 0, len(cities))
	for i := range results {
		if succeeded[i] {
			records = append(records, results[i])
		}
	}
	return records
}

// SetRecords replaces the whole collection. This is the initial-load
// settle, the only transition that does not mutate incrementally.
func (s *State) SetRecords(records []models.WeatherRecord) {
	s.records = records
}

// Upsert applies a successful search: any existing record whose city name
// equals the new record's city is removed, then the new record is inserted
// at the front. The match is exact and case-sensitive on the name the API
// returned, not on the user's query, so searching a present city moves its
// card to the front instead of duplicating it.
func (s *State) Upsert(record models.WeatherRecord) {
	kept := make([]models.WeatherRecord, 0, len(s.records)+1)
	kept = append(kept, record)
	for _, r := range s.records {
		if r.City != record.City {
			kept = append(kept, r)
		}
	}
	s.records = kept
}

// Replace applies a successful refresh: the record with the given id is
// swapped for the new one at its current position. The stored id is kept
// even if the API reassigned one, so a record's identity is stable across
// refreshes. Returns false when the id is no longer present (the record
// may have been evicted by a search for the same city).
func (s *State) Replace(id int, record models.WeatherRecord) bool {
	for i, r := range s.records {
		if r.ID == id {
			record.ID = id
			s.records[i] = record
			return true
		}
	}
	return false
}

// CityByID returns the current city name for a record id.
func (s *State) CityByID(id int) (string, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r.City, true
		}
	}
	return "", false
}

// Records returns a copy of the collection in display order.
func (s *State) Records() []models.WeatherRecord {
	out := make([]models.WeatherRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records.
func (s *State) Len() int {
	return len(s.records)
}
