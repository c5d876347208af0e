// File: services/availability/bulk.go
package availability

import (
	"context"
	"errors"
	"fmt"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// CreateSlotsBulk declares the same time window across several dates. Each
// date is validated and conflict-checked on its own; a failing date is
// reported without aborting the rest, and the errors preserve the input
// order of the failing dates. The provider lock is held for the whole batch,
// which serializes it against concurrent single-slot creation.
func (s *DefaultAvailabilityService) CreateSlotsBulk(ctx context.Context, providerID string, req models.BulkSlotsRequest) (*models.BulkSlotResult, error) {
	if len(req.Dates) == 0 {
		return nil, &utils.ValidationError{Field: "dates", Message: "at least one date is required"}
	}

	release, err := s.Locker.Acquire(ctx, lockKey(providerID))
	if err != nil {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("could not reserve provider schedule: %v", err)}
	}
	defer release()

	result := &models.BulkSlotResult{
		Created: []models.AvailabilitySlot{},
		Errors:  []string{},
	}

	for _, date := range req.Dates {
		slot, err := buildSlot(providerID, date, req.StartTime, req.EndTime, req.IsAvailable, req.MaxBookings, req.Price)
		if err != nil {
			var validationErr *utils.ValidationError
			if errors.As(err, &validationErr) && validationErr.Field == "date" {
				result.Errors = append(result.Errors, validationErr.Message)
				continue
			}
			// Malformed times apply to every date; fail the batch.
			return nil, err
		}
		if err := s.checkOverlap(ctx, slot); err != nil {
			var conflictErr *utils.ConflictError
			if errors.As(err, &conflictErr) {
				result.Errors = append(result.Errors, "overlapping slot: "+date)
				continue
			}
			return nil, err
		}
		if err := s.Repo.Create(ctx, slot); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to create slot for %s", date))
			continue
		}
		result.Created = append(result.Created, *slot)
	}

	utils.GetLogger().Debug("bulk slot creation finished",
		zap.String("providerId", providerID),
		zap.Int("created", len(result.Created)),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}
