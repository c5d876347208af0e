package models

import "time"

// CreateSlotRequest is the boundary payload for declaring a slot. Clock
// values arrive as 24-hour "HH:MM" strings.
type CreateSlotRequest struct {
	Date        string   `json:"date" binding:"required"`
	StartTime   string   `json:"startTime" binding:"required"`
	EndTime     string   `json:"endTime" binding:"required"`
	IsAvailable *bool    `json:"isAvailable,omitempty"` // defaults to true
	MaxBookings int      `json:"maxBookings,omitempty"` // defaults to 1
	Price       *float64 `json:"price,omitempty"`
}

// BulkSlotsRequest declares the same time window across several dates.
// Each date is validated and conflict-checked independently.
type BulkSlotsRequest struct {
	Dates       []string `json:"dates" binding:"required"`
	StartTime   string   `json:"startTime" binding:"required"`
	EndTime     string   `json:"endTime" binding:"required"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	MaxBookings int      `json:"maxBookings,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// CreateConsultationRequest is the boundary payload for a booking request.
type CreateConsultationRequest struct {
	ProviderID       string    `json:"providerId" binding:"required"`
	CategoryID       string    `json:"categoryId" binding:"required"`
	ConsultationType string    `json:"consultationType" binding:"required"`
	ScheduledAt      time.Time `json:"scheduledAt" binding:"required"`
	Duration         int       `json:"duration,omitempty"` // minutes, defaults to 60
	Description      string    `json:"description,omitempty"`
}

// TransitionRequest drives a consultation to a target status.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

// RateRequest submits the one-time rating for a completed consultation.
type RateRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review,omitempty"`
}
