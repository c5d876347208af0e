// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"

	"consultly/database"
	"consultly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals that no slot matched the given id.
var ErrNotFound = errors.New("slot not found")

// SlotRepository owns the availability_slots collection.
type SlotRepository interface {
	Create(ctx context.Context, slot *models.AvailabilitySlot) error
	GetByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error)
	Update(ctx context.Context, slot *models.AvailabilitySlot) error
	DeleteByID(ctx context.Context, slotID string) error
	ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.AvailabilitySlot, error)
	ListByProviderAndRange(ctx context.Context, providerID, startDate, endDate string) ([]models.AvailabilitySlot, error)
	ListAvailableByProviderAndDate(ctx context.Context, providerID, date string) ([]models.AvailabilitySlot, error)
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{
		coll: database.DB().Collection("availability_slots"),
	}
}
