package catalog

// Config represents the top-level structure of services.yaml
type Config struct {
	Services []ServiceProps `yaml:"services"`
}

// ServiceProps contains the raw service properties as written in the file
type ServiceProps struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	DurationMinutes int    `yaml:"durationMinutes,omitempty"`
}
