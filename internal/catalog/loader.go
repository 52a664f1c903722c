// Package catalog reads the static reference documents (flight offers,
// airlines, extra services) that the API serves.  Documents are read
// from disk on every call; flight records are derived data and a
// failure to load or decode any document fails the request that needed
// it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iliyamo/skyscan-flight-api/internal/model"
)

const (
	flightsFile  = "flights.json"
	airlinesFile = "airline-list.json"
	servicesFile = "extra-services.json"
)

// Loader resolves and decodes JSON documents from a data directory.
type Loader struct {
	dir string
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Flights reads and decodes the fare-itinerary document.
func (l *Loader) Flights() (*Document, error) {
	var doc Document
	if err := l.read(flightsFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Airlines reads the static airline reference list.
func (l *Loader) Airlines() ([]model.Airline, error) {
	var airlines []model.Airline
	if err := l.read(airlinesFile, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

// Services reads the static extra-service catalog.
func (l *Loader) Services() ([]model.ExtraService, error) {
	var services []model.ExtraService
	if err := l.read(servicesFile, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (l *Loader) read(name string, v any) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
