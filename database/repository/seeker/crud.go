// File: database/repository/seeker/crud.go
package seekerRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoSeekerRepo) GetByID(ctx context.Context, id string) (*models.Seeker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var seeker models.Seeker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&seeker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seeker with id %s: %w", id, err)
	}
	return &seeker, nil
}
