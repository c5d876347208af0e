// File: services/consultation/conflict.go
package consultation

import (
	"context"
	"time"

	"consultly/models"
)

// IsTimeSlotFree reports whether the window [scheduledAt, scheduledAt+duration)
// is clear of the provider's pending, confirmed and in-progress
// consultations, under half-open interval overlap. The check is advisory and
// not capacity-aware: it guards the provider's time, not slot capacity.
func (s *DefaultConsultationService) IsTimeSlotFree(ctx context.Context, providerID string, scheduledAt time.Time, duration int) (bool, error) {
	end := scheduledAt.Add(time.Duration(duration) * time.Minute)
	count, err := s.Repo.CountOverlapping(ctx, providerID, scheduledAt, end, models.BlockingStatuses())
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
