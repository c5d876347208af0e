// File: services/consultation/crud.go
package consultation

import (
	"context"
	"errors"

	consultationRepo "consultly/database/repository/consultation"
	"consultly/models"
	"consultly/utils"
)

// GetByID loads a consultation for a party to the booking or an admin.
func (s *DefaultConsultationService) GetByID(ctx context.Context, id, callerID, callerRole string) (*models.Consultation, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "consultation", ID: id}
		}
		return nil, err
	}
	if callerRole != models.RoleAdmin && c.SeekerID != callerID && c.ProviderID != callerID {
		return nil, &utils.ForbiddenError{Message: "caller is not a party to this consultation"}
	}
	return c, nil
}

// ListBySeeker returns a seeker's consultations, newest first, optionally
// filtered by status.
func (s *DefaultConsultationService) ListBySeeker(ctx context.Context, seekerID, status string) ([]models.Consultation, error) {
	return s.Repo.ListBySeeker(ctx, seekerID, status)
}

// ListByProvider returns a provider's consultations, newest first,
// optionally filtered by status.
func (s *DefaultConsultationService) ListByProvider(ctx context.Context, providerID, status string) ([]models.Consultation, error) {
	return s.Repo.ListByProvider(ctx, providerID, status)
}
