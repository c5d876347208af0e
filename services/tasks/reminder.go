package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"consultly/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderScheduler schedules a reminder for a confirmed consultation.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, consultation *models.Consultation) error
}

// AsynqReminderScheduler enqueues reminder tasks processed by the worker in
// cron/. The task fires Lead before the consultation starts; consultations
// already inside the lead window get an immediate reminder.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, consultation *models.Consultation) error {
	payload := models.ReminderPayload{
		ConsultationID: consultation.ID,
		SeekerID:       consultation.SeekerID,
		ProviderID:     consultation.ProviderID,
		ScheduledAt:    consultation.ScheduledAt,
		Title:          "Upcoming consultation",
		Body:           fmt.Sprintf("Your %s consultation starts at %s.", consultation.ConsultationType, consultation.ScheduledAt.Format("2 January, 3:04 PM")),
	}
	task, opts, err := NewReminderTask(payload, consultation.ScheduledAt.Add(-s.Lead))
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for consultation %s: %w", consultation.ID, err)
	}
	return nil
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
