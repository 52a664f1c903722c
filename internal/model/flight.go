package model

// FlightSegment is one leg of a flattened flight record.  The camelCase
// json tags match what the mobile client consumes.
type FlightSegment struct {
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	FlightNumber     string `json:"flightNumber"`
	AirlineCode      string `json:"airlineCode"`
	AirlineName      string `json:"airlineName,omitempty"`
	Duration         int    `json:"duration"`
}

// FlightRecord is the flattened view of one fare itinerary from the
// source document.  It is derived, never persisted: records are
// recomputed from the document on each read, and the ID encodes the
// record's position in the source sequence (flt_0, flt_1, ...) before
// any filtering.
type FlightRecord struct {
	ID               string          `json:"id"`
	AirlineCode      string          `json:"airlineCode"`
	AirlineName      string          `json:"airlineName,omitempty"`
	FlightNumber     string          `json:"flightNumber"`
	DepartureAirport string          `json:"departureAirport"`
	ArrivalAirport   string          `json:"arrivalAirport"`
	DepartureTime    string          `json:"departureTime"`
	ArrivalTime      string          `json:"arrivalTime"`
	Duration         int             `json:"duration"`
	Price            float64         `json:"price"`
	Stops            int             `json:"stops"`
	Currency         string          `json:"currency"`
	CabinClass       string          `json:"cabinClass,omitempty"`
	Segments         []FlightSegment `json:"segments"`
}

// Airline is one entry of the static airline reference list.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// ExtraService is one entry of the static ancillary-service catalog
// (seats, bags, meals and the like) offered alongside a booking.
type ExtraService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	MinQuantity int     `json:"minQuantity"`
	MaxQuantity int     `json:"maxQuantity"`
	IsMandatory bool    `json:"isMandatory"`
}
