package models

import "time"

// AvailabilitySlot is a provider-declared interval of bookable time on a
// single calendar day. Start and End are minutes from midnight (e.g. 420 for
// 7:00 AM); the HTTP boundary converts from/to "HH:MM" strings.
type AvailabilitySlot struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	Start       int       `bson:"start" json:"start"`
	End         int       `bson:"end" json:"end"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	MaxBookings int       `bson:"maxBookings" json:"maxBookings"`
	Price       *float64  `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether the slot's [Start,End) window intersects the
// given half-open window on the same day.
func (s *AvailabilitySlot) Overlaps(start, end int) bool {
	return start < s.End && end > s.Start
}

// SlotPatch carries the mutable slot fields an update may set. Nil fields
// are left untouched.
type SlotPatch struct {
	StartTime   *string  `json:"startTime,omitempty"` // "HH:MM"
	EndTime     *string  `json:"endTime,omitempty"`   // "HH:MM"
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	MaxBookings *int     `json:"maxBookings,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// BulkSlotResult is the mixed success/error report for bulk slot creation.
// Errors preserve the input order of the dates that failed.
type BulkSlotResult struct {
	Created []AvailabilitySlot `json:"created"`
	Errors  []string           `json:"errors"`
}

// WeeklySchedule is the read-only 7-day projection of a provider's slots.
// Schedule always holds exactly seven date keys, Monday through Sunday.
type WeeklySchedule struct {
	ProviderID string                        `json:"providerId"`
	WeekStart  string                        `json:"weekStart"`
	WeekEnd    string                        `json:"weekEnd"`
	Schedule   map[string][]AvailabilitySlot `json:"schedule"`
}
