// File: services/availability/slots.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	slotRepo "consultly/database/repository/slot"
	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// lockKey scopes the advisory lock to one provider's slots.
func lockKey(providerID string) string {
	return "slots:" + providerID
}

// CreateSlot validates and persists a single availability slot. The provider
// lock is held across the overlap check and the insert so concurrent writers
// cannot both commit overlapping windows.
func (s *DefaultAvailabilityService) CreateSlot(ctx context.Context, providerID string, req models.CreateSlotRequest) (*models.AvailabilitySlot, error) {
	slot, err := buildSlot(providerID, req.Date, req.StartTime, req.EndTime, req.IsAvailable, req.MaxBookings, req.Price)
	if err != nil {
		return nil, err
	}

	release, err := s.Locker.Acquire(ctx, lockKey(providerID))
	if err != nil {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("could not reserve provider schedule: %v", err)}
	}
	defer release()

	if err := s.checkOverlap(ctx, slot); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, slot); err != nil {
		return nil, err
	}

	utils.GetLogger().Debug("slot created",
		zap.String("providerId", providerID),
		zap.String("slotId", slot.ID),
		zap.String("date", slot.Date))
	return slot, nil
}

// UpdateSlot applies a patch to an existing slot. Only the owning provider
// may edit. Time-range edits re-validate start < end; sibling overlap is not
// re-checked on update.
func (s *DefaultAvailabilityService) UpdateSlot(ctx context.Context, slotID, callerID string, patch models.SlotPatch) (*models.AvailabilitySlot, error) {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "slot", ID: slotID}
		}
		return nil, err
	}
	if slot.ProviderID != callerID {
		return nil, &utils.ForbiddenError{Message: "only the owning provider may edit this slot"}
	}

	if patch.StartTime != nil {
		start, err := utils.ParseClock(*patch.StartTime)
		if err != nil {
			return nil, &utils.ValidationError{Field: "startTime", Message: err.Error()}
		}
		slot.Start = start
	}
	if patch.EndTime != nil {
		end, err := utils.ParseClock(*patch.EndTime)
		if err != nil {
			return nil, &utils.ValidationError{Field: "endTime", Message: err.Error()}
		}
		slot.End = end
	}
	if slot.End <= slot.Start {
		return nil, &utils.ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}
	if patch.IsAvailable != nil {
		slot.IsAvailable = *patch.IsAvailable
	}
	if patch.MaxBookings != nil {
		if *patch.MaxBookings < 1 {
			return nil, &utils.ValidationError{Field: "maxBookings", Message: "must be at least 1"}
		}
		slot.MaxBookings = *patch.MaxBookings
	}
	if patch.Price != nil {
		slot.Price = patch.Price
	}

	if err := s.Repo.Update(ctx, slot); err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "slot", ID: slotID}
		}
		return nil, err
	}
	return slot, nil
}

// DeleteSlot removes a slot owned by the caller.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, slotID, callerID string) error {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return &utils.NotFoundError{Resource: "slot", ID: slotID}
		}
		return err
	}
	if slot.ProviderID != callerID {
		return &utils.ForbiddenError{Message: "only the owning provider may delete this slot"}
	}
	if err := s.Repo.DeleteByID(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return &utils.NotFoundError{Resource: "slot", ID: slotID}
		}
		return err
	}
	return nil
}

// ListSlots returns a provider's slots for a single date or an inclusive
// date range, ordered by (date asc, start asc). Pagination belongs to the
// calling layer.
func (s *DefaultAvailabilityService) ListSlots(ctx context.Context, providerID, date, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	switch {
	case date != "":
		if _, err := utils.ParseDate(date); err != nil {
			return nil, &utils.ValidationError{Field: "date", Message: err.Error()}
		}
		return s.Repo.ListByProviderAndDate(ctx, providerID, date)
	case startDate != "" && endDate != "":
		if _, err := utils.ParseDate(startDate); err != nil {
			return nil, &utils.ValidationError{Field: "startDate", Message: err.Error()}
		}
		if _, err := utils.ParseDate(endDate); err != nil {
			return nil, &utils.ValidationError{Field: "endDate", Message: err.Error()}
		}
		return s.Repo.ListByProviderAndRange(ctx, providerID, startDate, endDate)
	default:
		return nil, &utils.ValidationError{Message: "either date or startDate and endDate are required"}
	}
}

// buildSlot parses and validates boundary input into a slot ready to insert.
func buildSlot(providerID, date, startTime, endTime string, isAvailable *bool, maxBookings int, price *float64) (*models.AvailabilitySlot, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, &utils.ValidationError{Field: "date", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	// Calendar-day comparison; ISO dates order lexicographically, and an
	// instant comparison would shift the cutoff by the server's timezone.
	if date < time.Now().Format(utils.DateLayout) {
		return nil, &utils.ValidationError{Field: "date", Message: "past date: " + date}
	}

	start, err := utils.ParseClock(startTime)
	if err != nil {
		return nil, &utils.ValidationError{Field: "startTime", Message: err.Error()}
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return nil, &utils.ValidationError{Field: "endTime", Message: err.Error()}
	}
	if end <= start {
		return nil, &utils.ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}

	if maxBookings == 0 {
		maxBookings = 1
	}
	if maxBookings < 1 {
		return nil, &utils.ValidationError{Field: "maxBookings", Message: "must be at least 1"}
	}

	available := true
	if isAvailable != nil {
		available = *isAvailable
	}

	return &models.AvailabilitySlot{
		ProviderID:  providerID,
		Date:        date,
		Start:       start,
		End:         end,
		IsAvailable: available,
		MaxBookings: maxBookings,
		Price:       price,
	}, nil
}

// checkOverlap rejects the slot if an existing available sibling on the same
// day intersects its half-open window. Unavailable slots never conflict.
func (s *DefaultAvailabilityService) checkOverlap(ctx context.Context, slot *models.AvailabilitySlot) error {
	if !slot.IsAvailable {
		return nil
	}
	siblings, err := s.Repo.ListAvailableByProviderAndDate(ctx, slot.ProviderID, slot.Date)
	if err != nil {
		return err
	}
	for i := range siblings {
		if siblings[i].ID == slot.ID {
			continue
		}
		if siblings[i].Overlaps(slot.Start, slot.End) {
			return &utils.ConflictError{
				Message: fmt.Sprintf("slot %s-%s on %s overlaps existing slot %s-%s",
					utils.FormatClock(slot.Start), utils.FormatClock(slot.End), slot.Date,
					utils.FormatClock(siblings[i].Start), utils.FormatClock(siblings[i].End)),
			}
		}
	}
	return nil
}
