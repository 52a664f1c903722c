// Package search flattens the nested fare-itinerary document into flat
// flight records and applies search filters over them.  All functions
// are pure: the source document is never mutated and repeated calls
// yield identical output.
package search

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/skyscan-flight-api/internal/catalog"
	"github.com/iliyamo/skyscan-flight-api/internal/model"
)

// Filter is the optional set of search criteria.  All provided
// predicates are conjunctive.  Numeric predicates are pointers so that
// an explicit zero (max_price: 0, max_stops: 0) is distinguishable
// from an absent filter.
type Filter struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"` // YYYY-MM-DD
	MaxPrice      *float64 `json:"max_price"`
	MaxStops      *int     `json:"max_stops"`
	AirlineCodes  []string `json:"airline_codes"`
}

// Flatten converts every fare itinerary in the document into a flight
// record.  Record ids encode the position in the source sequence
// (flt_0, flt_1, ...); items without itinerary options are skipped but
// still consume their index, so ids are stable regardless of later
// filtering.
func Flatten(doc *catalog.Document) []model.FlightRecord {
	return Search(doc, Filter{})
}

// Search flattens the document and keeps only the records matching
// every provided filter.  Source order is preserved.
func Search(doc *catalog.Document, f Filter) []model.FlightRecord {
	items := doc.AirSearchResponse.AirSearchResult.FareItineraries
	records := make([]model.FlightRecord, 0, len(items))
	for idx, item := range items {
		rec, ok := flatten(item.FareItinerary, idx)
		if !ok {
			continue
		}
		if matches(rec, f) {
			records = append(records, rec)
		}
	}
	return records
}

// Airports returns the deduplicated, sorted set of airport codes
// appearing as segment endpoints in the document.
func Airports(doc *catalog.Document) []string {
	seen := map[string]bool{}
	for _, item := range doc.AirSearchResponse.AirSearchResult.FareItineraries {
		options := item.FareItinerary.OriginDestinationOptions
		if len(options) == 0 {
			continue
		}
		for _, seg := range options[0].OriginDestinationOption {
			if code := seg.FlightSegment.DepartureAirportLocationCode; code != "" {
				seen[code] = true
			}
			if code := seg.FlightSegment.ArrivalAirportLocationCode; code != "" {
				seen[code] = true
			}
		}
	}
	airports := make([]string, 0, len(seen))
	for code := range seen {
		airports = append(airports, code)
	}
	sort.Strings(airports)
	return airports
}

// flatten builds one record from a fare itinerary: the first routing
// option, first segment.  Alternative routings and connecting segments
// are discarded.  Items with no options (or an option with no
// segments) yield no record.
func flatten(itin catalog.FareItinerary, idx int) (model.FlightRecord, bool) {
	if len(itin.OriginDestinationOptions) == 0 {
		return model.FlightRecord{}, false
	}
	option := itin.OriginDestinationOptions[0]
	if len(option.OriginDestinationOption) == 0 {
		return model.FlightRecord{}, false
	}
	seg := option.OriginDestinationOption[0].FlightSegment

	totalFare := itin.AirItineraryFareInfo.ItinTotalFares.TotalFare
	currency := totalFare.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	flat := model.FlightSegment{
		DepartureAirport: seg.DepartureAirportLocationCode,
		ArrivalAirport:   seg.ArrivalAirportLocationCode,
		DepartureTime:    seg.DepartureDateTime,
		ArrivalTime:      seg.ArrivalDateTime,
		FlightNumber:     string(seg.FlightNumber),
		AirlineCode:      seg.MarketingAirlineCode,
		AirlineName:      seg.MarketingAirlineName,
		Duration:         int(seg.JourneyDuration),
	}

	return model.FlightRecord{
		ID:               "flt_" + strconv.Itoa(idx),
		AirlineCode:      seg.MarketingAirlineCode,
		AirlineName:      seg.MarketingAirlineName,
		FlightNumber:     string(seg.FlightNumber),
		DepartureAirport: seg.DepartureAirportLocationCode,
		ArrivalAirport:   seg.ArrivalAirportLocationCode,
		DepartureTime:    seg.DepartureDateTime,
		ArrivalTime:      seg.ArrivalDateTime,
		Duration:         int(seg.JourneyDuration),
		Price:            float64(totalFare.Amount),
		Stops:            int(option.TotalStops),
		Currency:         currency,
		CabinClass:       seg.CabinClassText,
		Segments:         []model.FlightSegment{flat},
	}, true
}

func matches(rec model.FlightRecord, f Filter) bool {
	if f.MaxPrice != nil && rec.Price > *f.MaxPrice {
		return false
	}
	if f.MaxStops != nil && rec.Stops > *f.MaxStops {
		return false
	}
	if len(f.AirlineCodes) > 0 && !contains(f.AirlineCodes, rec.AirlineCode) {
		return false
	}
	if f.Origin != "" && !strings.EqualFold(rec.DepartureAirport, f.Origin) {
		return false
	}
	if f.Destination != "" && !strings.EqualFold(rec.ArrivalAirport, f.Destination) {
		return false
	}
	if f.DepartureDate != "" {
		// The date is taken in the timestamp's own offset (a trailing
		// Z parses as UTC).  A record whose departure time does not
		// parse is deliberately kept: the filter is skipped for that
		// record rather than the record being excluded.
		if dep, ok := parseDeparture(rec.DepartureTime); ok {
			if dep.Format("2006-01-02") != f.DepartureDate {
				return false
			}
		}
	}
	return true
}

// parseDeparture accepts the timestamp shapes seen in the feed:
// RFC3339 with or without a trailing Z, and the minute-precision
// variant without an offset.
func parseDeparture(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
