package configs

import "time"

// Mongo holds configuration for the campaign document store. The store
// is owned by the campaign service; this service opens a read-only
// logical connection to it.
type Mongo struct {
	// URI is a MongoDB connection string.
	URI string `env:"URI" envDefault:"mongodb://localhost:27017"`
	// Database is the campaign service's database name.
	Database string `env:"DATABASE" envDefault:"campaigns"`
	// SelectionTimeout bounds server selection when connecting.
	SelectionTimeout time.Duration `env:"SELECTION_TIMEOUT" envDefault:"5s"`
}
