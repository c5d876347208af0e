// File: database/repository/seeker/interface.go
package seekerRepo

import (
	"context"
	"errors"

	"consultly/database"
	"consultly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals that no seeker matched the given id.
var ErrNotFound = errors.New("seeker not found")

// SeekerRepository gives the booking core its read-only view of seekers.
type SeekerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Seeker, error)
}

type mongoSeekerRepo struct {
	coll *mongo.Collection
}

// NewMongoSeekerRepo constructs a new MongoDB SeekerRepository.
func NewMongoSeekerRepo() SeekerRepository {
	return &mongoSeekerRepo{
		coll: database.DB().Collection("users"),
	}
}
