package config

import (
	"github.com/caarlos0/env/v11"

	"adbooks/internal/config/configs"
)

// Config aggregates all configuration sections for the application.
// Fields are populated from environment variables using the caarlos0/env
// library; the nested structs are tagged with envPrefix so their fields
// are parsed with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// SeedDemoData loads demo transactions and campaigns on startup.
	// Only honoured by main; never enable in prod.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the transaction-ledger PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Mongo configures the campaign document store connection.
	Mongo configs.Mongo `envPrefix:"MONGO_"`

	// Directory configures the internal org/campaign lookup client.
	Directory configs.Directory `envPrefix:"DIRECTORY_"`
}

// Load reads configuration from environment variables into a Config.
// All fields fall back to their tag defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
