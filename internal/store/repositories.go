package store

import (
	"github.com/MKhiriev/go-screen-sync/internal/logger"
)

// Repositories groups the server-side storage repositories handed to the
// service layer.
type Repositories struct {
	Screens ServerScreenRepository
}

// NewRepositories wires the server repositories to an established database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Screens: NewServerScreenRepository(db, logger),
	}
}
