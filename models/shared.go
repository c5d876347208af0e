package models

import "time"

// ReminderPayload is the queued reminder for an upcoming consultation.
type ReminderPayload struct {
	ConsultationID string    `json:"consultationId"`
	SeekerID       string    `json:"seekerId"`
	ProviderID     string    `json:"providerId"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
}
