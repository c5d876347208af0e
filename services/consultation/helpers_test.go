package consultation

import (
	"context"
	"sort"
	"time"

	consultationRepo "consultly/database/repository/consultation"
	providerRepo "consultly/database/repository/provider"
	seekerRepo "consultly/database/repository/seeker"
	"consultly/models"
	"consultly/utils"

	"github.com/google/uuid"
)

// fakeConsultationRepo is an in-memory ConsultationRepository for service tests.
type fakeConsultationRepo struct {
	items map[string]*models.Consultation
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{items: make(map[string]*models.Consultation)}
}

func (r *fakeConsultationRepo) Create(_ context.Context, c *models.Consultation) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := *c
	r.items[c.ID] = &stored
	return nil
}

func (r *fakeConsultationRepo) GetByID(_ context.Context, id string) (*models.Consultation, error) {
	stored, ok := r.items[id]
	if !ok {
		return nil, consultationRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeConsultationRepo) Update(_ context.Context, c *models.Consultation) error {
	if _, ok := r.items[c.ID]; !ok {
		return consultationRepo.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	stored := *c
	r.items[c.ID] = &stored
	return nil
}

func (r *fakeConsultationRepo) CountOverlapping(_ context.Context, providerID string, start, end time.Time, statuses []string) (int64, error) {
	blocking := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		blocking[s] = true
	}
	var count int64
	for _, c := range r.items {
		if c.ProviderID != providerID || !blocking[c.Status] {
			continue
		}
		if c.ScheduledAt.Before(end) && c.EndsAt().After(start) {
			count++
		}
	}
	return count, nil
}

func (r *fakeConsultationRepo) ListBySeeker(_ context.Context, seekerID, status string) ([]models.Consultation, error) {
	return r.filter(func(c *models.Consultation) bool {
		return c.SeekerID == seekerID && (status == "" || c.Status == status)
	}), nil
}

func (r *fakeConsultationRepo) ListByProvider(_ context.Context, providerID, status string) ([]models.Consultation, error) {
	return r.filter(func(c *models.Consultation) bool {
		return c.ProviderID == providerID && (status == "" || c.Status == status)
	}), nil
}

func (r *fakeConsultationRepo) RatingAggregate(_ context.Context, providerID string) (float64, int, error) {
	var sum, count int
	for _, c := range r.items {
		if c.ProviderID == providerID && c.Rating != nil {
			sum += *c.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *fakeConsultationRepo) EnsureIndexes() error { return nil }

func (r *fakeConsultationRepo) filter(keep func(*models.Consultation) bool) []models.Consultation {
	var out []models.Consultation
	for _, c := range r.items {
		if keep(c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.After(out[j].ScheduledAt)
	})
	return out
}

// fakeProviderRepo is an in-memory ProviderRepository.
type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	stored, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeProviderRepo) Update(_ context.Context, p *models.Provider) error {
	if _, ok := r.providers[p.ID]; !ok {
		return providerRepo.ErrNotFound
	}
	stored := *p
	r.providers[p.ID] = &stored
	return nil
}

func (r *fakeProviderRepo) UpdateRating(_ context.Context, id string, rating float64, totalReviews int) error {
	stored, ok := r.providers[id]
	if !ok {
		return providerRepo.ErrNotFound
	}
	stored.Rating = rating
	stored.TotalReviews = totalReviews
	return nil
}

func (r *fakeProviderRepo) EnsureIndexes() error { return nil }

// fakeSeekerRepo is an in-memory SeekerRepository.
type fakeSeekerRepo struct {
	seekers map[string]*models.Seeker
}

func newFakeSeekerRepo() *fakeSeekerRepo {
	return &fakeSeekerRepo{seekers: make(map[string]*models.Seeker)}
}

func (r *fakeSeekerRepo) GetByID(_ context.Context, id string) (*models.Seeker, error) {
	stored, ok := r.seekers[id]
	if !ok {
		return nil, seekerRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

type testFixture struct {
	svc       *DefaultConsultationService
	repo      *fakeConsultationRepo
	providers *fakeProviderRepo
	seekers   *fakeSeekerRepo
}

func newTestFixture() *testFixture {
	repo := newFakeConsultationRepo()
	providers := newFakeProviderRepo()
	seekers := newFakeSeekerRepo()

	providers.providers["prov-1"] = &models.Provider{
		ID:        "prov-1",
		Name:      "Dana Advisor",
		BasePrice: 40,
		Currency:  "USD",
		Capabilities: models.ConsultationCapabilities{
			Chat: true, Call: true, Video: true,
		},
		IsActive:   true,
		IsVerified: true,
	}
	seekers.seekers["seek-1"] = &models.Seeker{ID: "seek-1", Name: "Sam", IsActive: true}

	return &testFixture{
		svc: &DefaultConsultationService{
			Repo:      repo,
			Providers: providers,
			Seekers:   seekers,
			Locker:    utils.NewLocalLocker(),
		},
		repo:      repo,
		providers: providers,
		seekers:   seekers,
	}
}

// seedConsultation stores a consultation directly, bypassing creation checks.
func (f *testFixture) seedConsultation(id, status string) *models.Consultation {
	c := &models.Consultation{
		ID:               id,
		SeekerID:         "seek-1",
		ProviderID:       "prov-1",
		CategoryID:       "cat-1",
		ConsultationType: models.ConsultationTypeCall,
		Status:           status,
		ScheduledAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Duration:         60,
		Price:            40,
		Currency:         "USD",
	}
	stored := *c
	f.repo.items[id] = &stored
	return c
}
