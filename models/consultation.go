package models

import "time"

// Consultation statuses. Completed, rejected and cancelled are terminal.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusRejected   = "rejected"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Consultation types. Must match a capability the provider has enabled.
const (
	ConsultationTypeChat  = "chat"
	ConsultationTypeCall  = "call"
	ConsultationTypeVideo = "video"
)

// Caller roles as attached by the authentication layer.
const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// Consultation duration bounds, in minutes.
const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 480
	DefaultDurationMinutes = 60
)

// Consultation is a seeker-provider booking with a scheduled time window and
// a constrained status lifecycle.
type Consultation struct {
	ID                 string    `bson:"id" json:"id"`
	SeekerID           string    `bson:"seekerId" json:"seekerId"`
	ProviderID         string    `bson:"providerId" json:"providerId"`
	CategoryID         string    `bson:"categoryId" json:"categoryId"`
	ConsultationType   string    `bson:"consultationType" json:"consultationType"`
	Status             string    `bson:"status" json:"status"`
	ScheduledAt        time.Time `bson:"scheduledAt" json:"scheduledAt"`
	Duration           int       `bson:"duration" json:"duration"` // minutes
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	Price              float64   `bson:"price" json:"price"`
	Currency           string    `bson:"currency" json:"currency"`
	Rating             *int      `bson:"rating,omitempty" json:"rating,omitempty"` // [1,5], set at most once
	Review             string    `bson:"review,omitempty" json:"review,omitempty"`
	CancellationReason string    `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancelledBy        string    `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"` // seeker | provider | admin
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EndsAt returns the exclusive end of the consultation's time window.
func (c *Consultation) EndsAt() time.Time {
	return c.ScheduledAt.Add(time.Duration(c.Duration) * time.Minute)
}

// IsTerminal reports whether no further status transition is legal.
func (c *Consultation) IsTerminal() bool {
	switch c.Status {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// BlockingStatuses are the statuses that occupy a provider's time for the
// purpose of double-booking checks.
func BlockingStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusInProgress}
}

// ValidConsultationType reports whether t is a known consultation channel.
func ValidConsultationType(t string) bool {
	switch t {
	case ConsultationTypeChat, ConsultationTypeCall, ConsultationTypeVideo:
		return true
	}
	return false
}
