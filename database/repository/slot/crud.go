// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.AvailabilitySlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.AvailabilitySlot
	if err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch slot %s: %w", slotID, err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) Update(ctx context.Context, slot *models.AvailabilitySlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	slot.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slot.ID}, bson.M{"$set": slot})
	if err != nil {
		return fmt.Errorf("failed to update slot %s: %w", slot.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoSlotRepo) DeleteByID(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID})
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
