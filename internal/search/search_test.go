package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/skyscan-flight-api/internal/catalog"
)

const feedDoc = `{
  "AirSearchResponse": {
    "AirSearchResult": {
      "FareItineraries": [
        {
          "FareItinerary": {
            "AirItineraryFareInfo": {
              "ItinTotalFares": { "TotalFare": { "Amount": "245.50", "CurrencyCode": "USD" } }
            },
            "OriginDestinationOptions": [
              {
                "TotalStops": 0,
                "OriginDestinationOption": [
                  {
                    "FlightSegment": {
                      "DepartureAirportLocationCode": "AMS",
                      "ArrivalAirportLocationCode": "FRA",
                      "DepartureDateTime": "2026-09-15T08:30:00",
                      "ArrivalDateTime": "2026-09-15T09:45:00",
                      "FlightNumber": "1823",
                      "MarketingAirlineCode": "LH",
                      "MarketingAirlineName": "Lufthansa",
                      "CabinClassText": "Economy",
                      "JourneyDuration": 75
                    }
                  }
                ]
              }
            ]
          }
        },
        {
          "FareItinerary": {
            "AirItineraryFareInfo": {
              "ItinTotalFares": { "TotalFare": { "Amount": 512, "CurrencyCode": "USD" } }
            },
            "OriginDestinationOptions": []
          }
        },
        {
          "FareItinerary": {
            "AirItineraryFareInfo": {
              "ItinTotalFares": { "TotalFare": { "Amount": "189.99", "CurrencyCode": "EUR" } }
            },
            "OriginDestinationOptions": [
              {
                "TotalStops": "1",
                "OriginDestinationOption": [
                  {
                    "FlightSegment": {
                      "DepartureAirportLocationCode": "AMS",
                      "ArrivalAirportLocationCode": "IST",
                      "DepartureDateTime": "2026-09-16T11:20:00",
                      "ArrivalDateTime": "2026-09-16T15:55:00",
                      "FlightNumber": 1952,
                      "MarketingAirlineCode": "TK",
                      "MarketingAirlineName": "Turkish Airlines",
                      "CabinClassText": "Economy",
                      "JourneyDuration": "215"
                    }
                  },
                  {
                    "FlightSegment": {
                      "DepartureAirportLocationCode": "IST",
                      "ArrivalAirportLocationCode": "DXB",
                      "DepartureDateTime": "2026-09-16T18:40:00",
                      "ArrivalDateTime": "2026-09-16T23:55:00",
                      "FlightNumber": "762",
                      "MarketingAirlineCode": "TK",
                      "MarketingAirlineName": "Turkish Airlines",
                      "CabinClassText": "Economy",
                      "JourneyDuration": 195
                    }
                  }
                ]
              }
            ]
          }
        }
      ]
    }
  }
}`

func loadDoc(t *testing.T) *catalog.Document {
	t.Helper()
	var doc catalog.Document
	require.NoError(t, json.Unmarshal([]byte(feedDoc), &doc))
	return &doc
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestFlattenSkipsItemsWithoutOptionsButKeepsIndex(t *testing.T) {
	doc := loadDoc(t)
	records := Flatten(doc)

	// The middle itinerary has no routing options, so it yields no
	// record but its index is still consumed.
	require.Len(t, records, 2)
	assert.Equal(t, "flt_0", records[0].ID)
	assert.Equal(t, "flt_2", records[1].ID)
}

func TestFlattenUsesFirstSegmentOfFirstOption(t *testing.T) {
	doc := loadDoc(t)
	records := Flatten(doc)
	require.Len(t, records, 2)

	rec := records[1]
	assert.Equal(t, "AMS", rec.DepartureAirport)
	assert.Equal(t, "IST", rec.ArrivalAirport)
	assert.Equal(t, "TK", rec.AirlineCode)
	assert.Equal(t, "1952", rec.FlightNumber)
	assert.Equal(t, 1, rec.Stops)
	assert.Equal(t, 215, rec.Duration)
	assert.InDelta(t, 189.99, rec.Price, 0.001)
	assert.Equal(t, "EUR", rec.Currency)
	require.Len(t, rec.Segments, 1)
	assert.Equal(t, "AMS", rec.Segments[0].DepartureAirport)
}

func TestFlattenIsIdempotent(t *testing.T) {
	doc := loadDoc(t)
	first := Flatten(doc)
	second := Flatten(doc)
	assert.Equal(t, first, second)
}

func TestSearchMaxPriceIsInclusive(t *testing.T) {
	doc := loadDoc(t)

	records := Search(doc, Filter{MaxPrice: fptr(245.50)})
	require.Len(t, records, 2)

	records = Search(doc, Filter{MaxPrice: fptr(200)})
	require.Len(t, records, 1)
	assert.Equal(t, "flt_2", records[0].ID)
}

func TestSearchMaxStopsZeroMeansNonstopOnly(t *testing.T) {
	doc := loadDoc(t)
	records := Search(doc, Filter{MaxStops: iptr(0)})
	require.Len(t, records, 1)
	assert.Equal(t, "flt_0", records[0].ID)
}

func TestSearchAirlineCodesMembership(t *testing.T) {
	doc := loadDoc(t)
	records := Search(doc, Filter{AirlineCodes: []string{"TK", "BA"}})
	require.Len(t, records, 1)
	assert.Equal(t, "TK", records[0].AirlineCode)
}

func TestSearchOriginDestinationCaseInsensitive(t *testing.T) {
	doc := loadDoc(t)
	records := Search(doc, Filter{Origin: "ams", Destination: "fra"})
	require.Len(t, records, 1)
	assert.Equal(t, "flt_0", records[0].ID)
}

func TestSearchFiltersAreConjunctive(t *testing.T) {
	doc := loadDoc(t)

	// Origin matches both records, the price only one of them.
	records := Search(doc, Filter{Origin: "AMS", MaxPrice: fptr(200)})
	require.Len(t, records, 1)
	assert.Equal(t, "flt_2", records[0].ID)

	// Conflicting criteria match nothing.
	records = Search(doc, Filter{Origin: "AMS", Destination: "JFK"})
	assert.Empty(t, records)
}

func TestSearchDepartureDateFilter(t *testing.T) {
	doc := loadDoc(t)

	records := Search(doc, Filter{DepartureDate: "2026-09-15"})
	require.Len(t, records, 1)
	assert.Equal(t, "flt_0", records[0].ID)

	records = Search(doc, Filter{DepartureDate: "2026-01-01"})
	assert.Empty(t, records)
}

func TestSearchDepartureDateUsesTimestampOwnDate(t *testing.T) {
	doc := loadDoc(t)
	// 01:00 at +03:00 is still the previous day in UTC; the filter
	// must compare against the timestamp's own date component.
	doc.AirSearchResponse.AirSearchResult.FareItineraries[0].
		FareItinerary.OriginDestinationOptions[0].
		OriginDestinationOption[0].FlightSegment.DepartureDateTime = "2026-09-16T01:00:00+03:00"

	records := Search(doc, Filter{DepartureDate: "2026-09-16"})
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "flt_0")

	records = Search(doc, Filter{DepartureDate: "2026-09-15"})
	for _, r := range records {
		assert.NotEqual(t, "flt_0", r.ID)
	}
}

func TestSearchKeepsRecordWithUnparseableDeparture(t *testing.T) {
	doc := loadDoc(t)
	doc.AirSearchResponse.AirSearchResult.FareItineraries[0].
		FareItinerary.OriginDestinationOptions[0].
		OriginDestinationOption[0].FlightSegment.DepartureDateTime = "not-a-timestamp"

	records := Search(doc, Filter{DepartureDate: "2026-09-16"})
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	// The broken record skips the date predicate instead of being dropped.
	assert.Contains(t, ids, "flt_0")
	assert.Contains(t, ids, "flt_2")
}

func TestAirportsSortedAndDeduplicated(t *testing.T) {
	doc := loadDoc(t)
	airports := Airports(doc)
	assert.Equal(t, []string{"AMS", "DXB", "FRA", "IST"}, airports)
}

func TestParseDepartureLayouts(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-09-15T08:30:00Z", true},
		{"2026-09-15T08:30:00+02:00", true},
		{"2026-09-15T08:30:00", true},
		{"2026-09-15T08:30", true},
		{"2026-09-15", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		_, ok := parseDeparture(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
	}
}
