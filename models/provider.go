package models

import "time"

// ConsultationCapabilities lists the consultation channels a provider has
// enabled. Booking requests for a disabled channel are rejected.
type ConsultationCapabilities struct {
	Chat  bool `bson:"chat" json:"chat"`
	Call  bool `bson:"call" json:"call"`
	Video bool `bson:"video" json:"video"`
}

// Provider is the marketplace-facing provider document. The booking core only
// reads it and writes back the denormalized rating aggregate; everything else
// is owned by the identity subsystem.
type Provider struct {
	ID           string                   `bson:"id" json:"id"`
	Name         string                   `bson:"name" json:"name,omitempty"`
	Email        string                   `bson:"email" json:"email,omitempty"`
	CategoryIDs  []string                 `bson:"categoryIds" json:"categoryIds,omitempty"`
	Capabilities ConsultationCapabilities `bson:"capabilities" json:"capabilities"`
	BasePrice    float64                  `bson:"basePrice" json:"basePrice"`
	Currency     string                   `bson:"currency" json:"currency"` // e.g. "USD"
	Rating       float64                  `bson:"rating" json:"rating"`     // mean over rated consultations, [0,5]
	TotalReviews int                      `bson:"totalReviews" json:"totalReviews"`
	IsActive     bool                     `bson:"isActive" json:"isActive"`
	IsVerified   bool                     `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time                `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time                `bson:"updatedAt" json:"updatedAt"`
}

// HasCapability reports whether the given consultation type is enabled.
func (p *Provider) HasCapability(consultationType string) bool {
	switch consultationType {
	case ConsultationTypeChat:
		return p.Capabilities.Chat
	case ConsultationTypeCall:
		return p.Capabilities.Call
	case ConsultationTypeVideo:
		return p.Capabilities.Video
	default:
		return false
	}
}

// ProviderPatch carries the mutable provider fields an update may set.
// IsActive and IsVerified are admin-only; the service enforces that.
type ProviderPatch struct {
	Name         *string                   `json:"name,omitempty"`
	Capabilities *ConsultationCapabilities `json:"capabilities,omitempty"`
	BasePrice    *float64                  `json:"basePrice,omitempty"`
	IsActive     *bool                     `json:"isActive,omitempty"`
	IsVerified   *bool                     `json:"isVerified,omitempty"`
}
