// File: services/consultation/interface.go
package consultation

import (
	"context"
	"time"

	consultationRepo "consultly/database/repository/consultation"
	providerRepo "consultly/database/repository/provider"
	seekerRepo "consultly/database/repository/seeker"
	"consultly/models"
	"consultly/services/tasks"
	"consultly/utils"
)

// ConsultationService owns the booking lifecycle: creation against the
// conflict checker, status transitions, rating and the read models.
type ConsultationService interface {
	Create(ctx context.Context, seekerID string, req models.CreateConsultationRequest) (*models.Consultation, error)
	Transition(ctx context.Context, id, callerID, callerRole, targetStatus, reason string) (*models.Consultation, error)
	Rate(ctx context.Context, id, seekerID string, rating int, review string) (*models.Consultation, error)
	IsTimeSlotFree(ctx context.Context, providerID string, scheduledAt time.Time, duration int) (bool, error)
	GetByID(ctx context.Context, id, callerID, callerRole string) (*models.Consultation, error)
	ListBySeeker(ctx context.Context, seekerID, status string) ([]models.Consultation, error)
	ListByProvider(ctx context.Context, providerID, status string) ([]models.Consultation, error)
}

// DefaultConsultationService is the production implementation.
type DefaultConsultationService struct {
	Repo      consultationRepo.ConsultationRepository
	Providers providerRepo.ProviderRepository
	Seekers   seekerRepo.SeekerRepository
	Locker    utils.ProviderLocker
	// Reminders is optional; when set, confirming a consultation schedules
	// a reminder task.
	Reminders tasks.ReminderScheduler
}
