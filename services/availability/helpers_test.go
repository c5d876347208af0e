package availability

import (
	"context"
	"sort"
	"time"

	slotRepo "consultly/database/repository/slot"
	"consultly/models"
	"consultly/utils"

	"github.com/google/uuid"
)

// fakeSlotRepo is an in-memory SlotRepository for service tests.
type fakeSlotRepo struct {
	slots map[string]*models.AvailabilitySlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*models.AvailabilitySlot)}
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *models.AvailabilitySlot) error {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	stored := *slot
	r.slots[slot.ID] = &stored
	return nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, slotID string) (*models.AvailabilitySlot, error) {
	stored, ok := r.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeSlotRepo) Update(_ context.Context, slot *models.AvailabilitySlot) error {
	if _, ok := r.slots[slot.ID]; !ok {
		return slotRepo.ErrNotFound
	}
	slot.UpdatedAt = time.Now()
	stored := *slot
	r.slots[slot.ID] = &stored
	return nil
}

func (r *fakeSlotRepo) DeleteByID(_ context.Context, slotID string) error {
	if _, ok := r.slots[slotID]; !ok {
		return slotRepo.ErrNotFound
	}
	delete(r.slots, slotID)
	return nil
}

func (r *fakeSlotRepo) ListByProviderAndDate(_ context.Context, providerID, date string) ([]models.AvailabilitySlot, error) {
	return r.filter(func(s *models.AvailabilitySlot) bool {
		return s.ProviderID == providerID && s.Date == date
	}), nil
}

func (r *fakeSlotRepo) ListByProviderAndRange(_ context.Context, providerID, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	return r.filter(func(s *models.AvailabilitySlot) bool {
		return s.ProviderID == providerID && s.Date >= startDate && s.Date <= endDate
	}), nil
}

func (r *fakeSlotRepo) ListAvailableByProviderAndDate(_ context.Context, providerID, date string) ([]models.AvailabilitySlot, error) {
	return r.filter(func(s *models.AvailabilitySlot) bool {
		return s.ProviderID == providerID && s.Date == date && s.IsAvailable
	}), nil
}

func (r *fakeSlotRepo) EnsureIndexes() error { return nil }

func (r *fakeSlotRepo) filter(keep func(*models.AvailabilitySlot) bool) []models.AvailabilitySlot {
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if keep(s) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out
}

func newTestService() (*DefaultAvailabilityService, *fakeSlotRepo) {
	repo := newFakeSlotRepo()
	return &DefaultAvailabilityService{
		Repo:   repo,
		Locker: utils.NewLocalLocker(),
	}, repo
}

// futureDate returns a date string n days from now; keeps tests clear of the
// past-date validation.
func futureDate(n int) string {
	return time.Now().AddDate(0, 0, n).Format(utils.DateLayout)
}
