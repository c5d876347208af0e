// File: services/availability/interface.go
package availability

import (
	"context"

	slotRepo "consultly/database/repository/slot"
	"consultly/models"
	"consultly/utils"
)

// AvailabilityService owns a provider's declared availability: slot CRUD,
// bulk declaration and the weekly read projection.
type AvailabilityService interface {
	CreateSlot(ctx context.Context, providerID string, req models.CreateSlotRequest) (*models.AvailabilitySlot, error)
	CreateSlotsBulk(ctx context.Context, providerID string, req models.BulkSlotsRequest) (*models.BulkSlotResult, error)
	UpdateSlot(ctx context.Context, slotID, callerID string, patch models.SlotPatch) (*models.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, slotID, callerID string) error
	ListSlots(ctx context.Context, providerID, date, startDate, endDate string) ([]models.AvailabilitySlot, error)
	WeeklyProjection(ctx context.Context, providerID, weekStart string) (*models.WeeklySchedule, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo   slotRepo.SlotRepository
	Locker utils.ProviderLocker
}
