// File: services/consultation/rate.go
package consultation

import (
	"context"
	"errors"

	consultationRepo "consultly/database/repository/consultation"
	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// Rate records the one-time rating for a completed consultation and
// recomputes the provider's aggregate before returning. A second rating
// attempt conflicts; it never overwrites.
func (s *DefaultConsultationService) Rate(ctx context.Context, id, seekerID string, rating int, review string) (*models.Consultation, error) {
	if rating < 1 || rating > 5 {
		return nil, &utils.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "consultation", ID: id}
		}
		return nil, err
	}
	if c.SeekerID != seekerID {
		return nil, &utils.ForbiddenError{Message: "only the booking seeker may rate this consultation"}
	}
	if c.Status != models.StatusCompleted {
		return nil, &utils.ConflictError{Message: "only completed consultations can be rated"}
	}
	if c.Rating != nil {
		return nil, &utils.ConflictError{Message: "consultation already rated"}
	}

	c.Rating = &rating
	c.Review = review
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.RecomputeProviderRating(ctx, c.ProviderID); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("consultation rated",
		zap.String("consultationId", c.ID),
		zap.String("providerId", c.ProviderID),
		zap.Int("rating", rating))
	return c, nil
}

// RecomputeProviderRating rebuilds the provider's denormalized rating
// aggregate from the full set of rated consultations. Always a full
// recompute; the write is idempotent, so concurrent rating events converge.
func (s *DefaultConsultationService) RecomputeProviderRating(ctx context.Context, providerID string) error {
	average, count, err := s.Repo.RatingAggregate(ctx, providerID)
	if err != nil {
		return err
	}
	return s.Providers.UpdateRating(ctx, providerID, average, count)
}
