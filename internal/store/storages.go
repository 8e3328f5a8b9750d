package store

import "github.com/MKhiriev/style-keeper/internal/logger"

// Storages groups the repositories built on one database connection.
type Storages struct {
	StyleProfileRepository StyleProfileRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		StyleProfileRepository: NewStyleProfileRepository(db, logger),
	}
}
