// File: database/repository/consultation/interface.go
package consultationRepo

import (
	"context"
	"errors"
	"time"

	"consultly/database"
	"consultly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals that no consultation matched the given id.
var ErrNotFound = errors.New("consultation not found")

// ConsultationRepository owns the consultations collection.
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *models.Consultation) error
	GetByID(ctx context.Context, id string) (*models.Consultation, error)
	Update(ctx context.Context, consultation *models.Consultation) error
	// CountOverlapping counts consultations for the provider whose
	// [scheduledAt, scheduledAt+duration) window intersects [start, end)
	// and whose status is in statuses.
	CountOverlapping(ctx context.Context, providerID string, start, end time.Time, statuses []string) (int64, error)
	ListBySeeker(ctx context.Context, seekerID, status string) ([]models.Consultation, error)
	ListByProvider(ctx context.Context, providerID, status string) ([]models.Consultation, error)
	// RatingAggregate computes the mean rating and count over every rated
	// consultation of the provider, from a single collection snapshot.
	RatingAggregate(ctx context.Context, providerID string) (average float64, count int, err error)
	EnsureIndexes() error
}

type mongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo constructs a new MongoDB ConsultationRepository.
func NewMongoConsultationRepo() ConsultationRepository {
	return &mongoConsultationRepo{
		coll: database.DB().Collection("consultations"),
	}
}
