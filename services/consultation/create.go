// File: services/consultation/create.go
package consultation

import (
	"context"
	"fmt"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// Create books a pending consultation for the seeker. Preconditions run in
// order: the seeker must be active, the provider must be active, verified and
// offer the requested channel, and the provider's time window must be free.
// The provider lock is held across the conflict check and the insert.
func (s *DefaultConsultationService) Create(ctx context.Context, seekerID string, req models.CreateConsultationRequest) (*models.Consultation, error) {
	duration := req.Duration
	if duration == 0 {
		duration = models.DefaultDurationMinutes
	}
	if duration < models.MinDurationMinutes || duration > models.MaxDurationMinutes {
		return nil, &utils.ValidationError{
			Field:   "duration",
			Message: fmt.Sprintf("must be between %d and %d minutes", models.MinDurationMinutes, models.MaxDurationMinutes),
		}
	}
	if !models.ValidConsultationType(req.ConsultationType) {
		return nil, &utils.ValidationError{Field: "consultationType", Message: fmt.Sprintf("unknown type %q", req.ConsultationType)}
	}

	seeker, err := s.Seekers.GetByID(ctx, seekerID)
	if err != nil || seeker == nil || !seeker.IsActive {
		return nil, &utils.ValidationError{Field: "seekerId", Message: "seeker not found or inactive"}
	}

	provider, err := s.Providers.GetByID(ctx, req.ProviderID)
	if err != nil || provider == nil {
		return nil, &utils.ValidationError{Field: "providerId", Message: "provider not found"}
	}
	if !provider.IsActive || !provider.IsVerified {
		return nil, &utils.ValidationError{Field: "providerId", Message: "provider is not accepting consultations"}
	}
	if !provider.HasCapability(req.ConsultationType) {
		return nil, &utils.ValidationError{
			Field:   "consultationType",
			Message: fmt.Sprintf("provider does not offer %s consultations", req.ConsultationType),
		}
	}

	release, err := s.Locker.Acquire(ctx, "booking:"+req.ProviderID)
	if err != nil {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("could not reserve provider schedule: %v", err)}
	}
	defer release()

	free, err := s.IsTimeSlotFree(ctx, req.ProviderID, req.ScheduledAt, duration)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, &utils.ConflictError{Message: "provider already has a consultation in this time window"}
	}

	currency := provider.Currency
	if currency == "" {
		currency = "USD"
	}

	c := &models.Consultation{
		SeekerID:         seekerID,
		ProviderID:       req.ProviderID,
		CategoryID:       req.CategoryID,
		ConsultationType: req.ConsultationType,
		Status:           models.StatusPending,
		ScheduledAt:      req.ScheduledAt,
		Duration:         duration,
		Description:      req.Description,
		Price:            provider.BasePrice,
		Currency:         currency,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("consultation created",
		zap.String("consultationId", c.ID),
		zap.String("seekerId", seekerID),
		zap.String("providerId", req.ProviderID),
		zap.Time("scheduledAt", req.ScheduledAt))
	return c, nil
}
