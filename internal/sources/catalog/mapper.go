package catalog

import (
	"fmt"

	"github.com/mcsclean/bookingd/internal/domain"
)

// Mapper converts raw catalog entries to domain.Service values
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapServices converts a parsed catalog Config to domain services.
// Entries without an id are skipped; a missing duration falls back to the
// default slot length.
func (m *Mapper) MapServices(config Config) ([]domain.Service, error) {
	services := make([]domain.Service, 0, len(config.Services))

	for _, props := range config.Services {
		if props.ID == "" {
			continue
		}

		name := props.Name
		if name == "" {
			name = props.ID
		}

		duration := props.DurationMinutes
		if duration <= 0 {
			duration = domain.DefaultSlotMinutes
		}

		services = append(services, domain.Service{
			ID:              props.ID,
			Name:            name,
			DurationMinutes: duration,
		})
	}

	if len(services) == 0 {
		return nil, fmt.Errorf("no valid services found in catalog config")
	}

	return services, nil
}

// Defaults returns the built-in cleaning catalog used when no catalog file
// is configured.
func Defaults() []domain.Service {
	return []domain.Service{
		{ID: "room_clean", Name: "Room cleaning", DurationMinutes: 60},
		{ID: "kitchen_clean", Name: "Kitchen cleaning", DurationMinutes: 60},
	}
}
