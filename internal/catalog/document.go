package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The fare-itinerary feed is not consistent about scalar encodings:
// amounts, durations and stop counts appear both as JSON numbers and as
// quoted strings depending on the upstream provider.  The Flex* types
// accept either form so the document structs can stay strongly typed.

// FlexFloat decodes a JSON number or a numeric string into a float64.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes a JSON number or a numeric string into an int.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = FlexInt(f)
	return nil
}

// FlexString decodes a JSON string or a bare number into a string.
// Flight numbers in particular show up both ways.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(b)
	return nil
}

// Document mirrors the airline search response that the flight feed
// delivers.  Only the fields the flattening step consumes are mapped;
// everything else in the feed is ignored on decode.
type Document struct {
	AirSearchResponse AirSearchResponse `json:"AirSearchResponse"`
}

type AirSearchResponse struct {
	AirSearchResult AirSearchResult `json:"AirSearchResult"`
}

type AirSearchResult struct {
	FareItineraries []FareItineraryItem `json:"FareItineraries"`
}

// FareItineraryItem wraps a single priced, bookable offer.
type FareItineraryItem struct {
	FareItinerary FareItinerary `json:"FareItinerary"`
}

type FareItinerary struct {
	AirItineraryFareInfo     AirItineraryFareInfo      `json:"AirItineraryFareInfo"`
	OriginDestinationOptions []OriginDestinationOption `json:"OriginDestinationOptions"`
}

type AirItineraryFareInfo struct {
	ItinTotalFares ItinTotalFares `json:"ItinTotalFares"`
}

type ItinTotalFares struct {
	TotalFare TotalFare `json:"TotalFare"`
}

type TotalFare struct {
	Amount       FlexFloat `json:"Amount"`
	CurrencyCode string    `json:"CurrencyCode"`
}

// OriginDestinationOption is one routing alternative: an ordered list
// of flight segments plus the stop count for the routing.
type OriginDestinationOption struct {
	TotalStops              FlexInt       `json:"TotalStops"`
	OriginDestinationOption []SegmentItem `json:"OriginDestinationOption"`
}

type SegmentItem struct {
	FlightSegment FlightSegment `json:"FlightSegment"`
}

type FlightSegment struct {
	DepartureAirportLocationCode string     `json:"DepartureAirportLocationCode"`
	ArrivalAirportLocationCode   string     `json:"ArrivalAirportLocationCode"`
	DepartureDateTime            string     `json:"DepartureDateTime"`
	ArrivalDateTime              string     `json:"ArrivalDateTime"`
	FlightNumber                 FlexString `json:"FlightNumber"`
	MarketingAirlineCode         string     `json:"MarketingAirlineCode"`
	MarketingAirlineName         string     `json:"MarketingAirlineName"`
	CabinClassText               string     `json:"CabinClassText"`
	JourneyDuration              FlexInt    `json:"JourneyDuration"`
}
