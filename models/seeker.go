package models

import "time"

// Seeker is the booking-side view of a marketplace user. Owned by the
// identity subsystem; the core only checks existence and active status.
type Seeker struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email,omitempty"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
