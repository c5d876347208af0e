// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// slotSort orders slots by (date asc, start asc), the contract for all list reads.
var slotSort = bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}

func (r *mongoSlotRepo) ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.AvailabilitySlot, error) {
	filter := bson.M{"providerId": providerID, "date": date}
	return r.list(ctx, filter)
}

func (r *mongoSlotRepo) ListByProviderAndRange(ctx context.Context, providerID, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": startDate, "$lte": endDate},
	}
	return r.list(ctx, filter)
}

func (r *mongoSlotRepo) ListAvailableByProviderAndDate(ctx context.Context, providerID, date string) ([]models.AvailabilitySlot, error) {
	filter := bson.M{"providerId": providerID, "date": date, "isAvailable": true}
	return r.list(ctx, filter)
}

func (r *mongoSlotRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(slotSort))
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}
