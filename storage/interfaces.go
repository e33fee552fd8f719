package storage

import "tourism-dashboard/models"

// ReviewSource is the interface any review data backend must satisfy.
// Load reads the complete table once; it is never called again for the
// lifetime of the process.
type ReviewSource interface {
	Load() ([]*models.RawReview, error)
	Close() error
}
