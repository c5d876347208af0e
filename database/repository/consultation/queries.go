// File: database/repository/consultation/queries.go
package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountOverlapping applies the half-open overlap rule inside Mongo: an
// existing window [s, s+d) intersects [start, end) iff s < end and
// s+d > start. The end of each stored window is computed in the query via
// $add on scheduledAt plus duration in milliseconds.
func (r *mongoConsultationRepo) CountOverlapping(ctx context.Context, providerID string, start, end time.Time, statuses []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": statuses},
		"$expr": bson.M{
			"$and": bson.A{
				bson.M{"$lt": bson.A{"$scheduledAt", end}},
				bson.M{"$gt": bson.A{
					bson.M{"$add": bson.A{
						"$scheduledAt",
						bson.M{"$multiply": bson.A{"$duration", 60 * 1000}},
					}},
					start,
				}},
			},
		},
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping consultations: %w", err)
	}
	return count, nil
}

func (r *mongoConsultationRepo) ListBySeeker(ctx context.Context, seekerID, status string) ([]models.Consultation, error) {
	filter := bson.M{"seekerId": seekerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *mongoConsultationRepo) ListByProvider(ctx context.Context, providerID, status string) ([]models.Consultation, error) {
	filter := bson.M{"providerId": providerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *mongoConsultationRepo) list(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return consultations, nil
}
