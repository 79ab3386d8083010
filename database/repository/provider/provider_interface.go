package providerRepo

import (
	"oxywell/models"
)

// ProviderRepository defines methods for provider data access. Reads return
// the raw storage shape; normalization into the canonical Provider happens in
// the service layer, keeping this the single untyped boundary.
type ProviderRepository interface {
	// GetAllRaw retrieves every stored provider row as-is.
	GetAllRaw() ([]models.RawProviderRecord, error)
	// GetRawByID retrieves one raw row by its id.
	GetRawByID(id string) (*models.RawProviderRecord, error)
	// Create inserts a new raw row.
	Create(raw *models.RawProviderRecord) error
	// UpdateFields patches individual fields on a stored row.
	UpdateFields(id string, updates map[string]interface{}) error
	// UpdateCoordinates writes resolved coordinates for a single row.
	UpdateCoordinates(id string, lat, lng float64) error
	// Delete removes a row by its id.
	Delete(id string) error
}
