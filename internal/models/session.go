package models

import "time"

// SessionState is the onboarding conversation state for a phone number
type SessionState string

const (
	SessionAwaitingName SessionState = "awaiting_name"
	SessionRegistered   SessionState = "registered"
)

// Session tracks an SMS onboarding conversation. Documents expire at ExpiresAt.
type Session struct {
	PhoneNumber string       `bson:"phoneNumber" json:"phoneNumber"`
	State       SessionState `bson:"state" json:"state"`
	ExpiresAt   time.Time    `bson:"expiresAt" json:"expiresAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}
