// File: database/repository/consultation/aggregates.go
package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// RatingAggregate groups every rated consultation of the provider and
// returns the arithmetic mean and count. A full pipeline pass rather than an
// incremental counter, so concurrent rate calls converge on the same value.
func (r *mongoConsultationRepo) RatingAggregate(ctx context.Context, providerID string) (float64, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"providerId": providerID,
				"rating":     bson.M{"$ne": nil},
			},
		},
		{
			"$group": bson.M{
				"_id":     nil,
				"average": bson.M{"$avg": "$rating"},
				"count":   bson.M{"$sum": 1},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode rating aggregate: %w", err)
		}
	}
	return result.Average, result.Count, nil
}
