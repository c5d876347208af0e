// FILE: database/repository/consultation/indexes.go
package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the consultations collection.
func (r *mongoConsultationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on consultation ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index backing the overlap check
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "status", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().SetName("provider_status_scheduled_idx"),
		},
		// Seeker booking history
		{
			Keys:    bson.D{{Key: "seekerId", Value: 1}, {Key: "scheduledAt", Value: -1}},
			Options: options.Index().SetName("seeker_scheduled_idx"),
		},
		// Rating aggregation pass
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "rating", Value: 1}},
			Options: options.Index().SetName("provider_rating_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create consultation indexes: %w", err)
	}
	return nil
}
