// File: database/repository/consultation/crud.go
package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoConsultationRepo) Create(ctx context.Context, consultation *models.Consultation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if consultation.ID == "" {
		consultation.ID = uuid.New().String()
	}
	now := time.Now()
	consultation.CreatedAt = now
	consultation.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

func (r *mongoConsultationRepo) GetByID(ctx context.Context, id string) (*models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var consultation models.Consultation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch consultation %s: %w", id, err)
	}
	return &consultation, nil
}

func (r *mongoConsultationRepo) Update(ctx context.Context, consultation *models.Consultation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	consultation.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": consultation.ID}, bson.M{"$set": consultation})
	if err != nil {
		return fmt.Errorf("failed to update consultation %s: %w", consultation.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
