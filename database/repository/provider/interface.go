// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"
	"errors"

	"consultly/database"
	"consultly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals that no provider matched the given id.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository owns the providers collection. The booking core reads
// provider documents and writes back the denormalized rating aggregate.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	Update(ctx context.Context, provider *models.Provider) error
	// UpdateRating overwrites the denormalized rating aggregate. Callers
	// compute both values from the authoritative consultation set.
	UpdateRating(ctx context.Context, id string, rating float64, totalReviews int) error
	EnsureIndexes() error
}

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	return &MongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}
