package configs

import (
	"net/url"
	"time"
)

// Directory configures the client for the platform's internal org and
// campaign lookup API.
type Directory struct {
	// Addr is the base URL of the internal directory API.
	Addr url.URL `env:"ADDRESS" envDefault:"http://localhost:8081"`
	// Timeout bounds each lookup call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
