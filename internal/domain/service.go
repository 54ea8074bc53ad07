package domain

// Service is a bookable cleaning service from the static catalog.
//
// Services are defined once at process start (built-in defaults or a YAML
// catalog file) and never mutated afterwards.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Catalog is the immutable, ordered set of bookable services.
//
// Order matters: the first entry is the fallback when an availability query
// names an unknown service.
type Catalog struct {
	services []Service
	byID     map[string]Service
}

// NewCatalog builds a catalog from an ordered service list.
func NewCatalog(services []Service) *Catalog {
	byID := make(map[string]Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	return &Catalog{
		services: services,
		byID:     byID,
	}
}

// Lookup retrieves a service by ID.
func (c *Catalog) Lookup(id string) (Service, bool) {
	svc, ok := c.byID[id]
	return svc, ok
}

// First returns the first catalog entry.
// The catalog is guaranteed non-empty by construction in startup wiring.
func (c *Catalog) First() Service {
	return c.services[0]
}

// All returns all services in catalog order.
func (c *Catalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Len returns the number of services in the catalog.
func (c *Catalog) Len() int {
	return len(c.services)
}
