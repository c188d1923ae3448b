package domain

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// REGISTRATION DOMAIN TYPES
// =============================================================================

// NotProvided is recorded for optional fields left empty.
const NotProvided = "Not provided"

// SubmissionStatus is the state of the submission state machine.
type SubmissionStatus string

const (
	SubmissionIdle       SubmissionStatus = "idle"
	SubmissionValidating SubmissionStatus = "validating"
	SubmissionRejected   SubmissionStatus = "rejected"
	SubmissionAccepted   SubmissionStatus = "accepted"
)

// Registration is the normalized record handed to the submission sink.
// Passwords and terms acceptance are never part of it.
type Registration struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Age       string    `json:"age"`
	Gender    string    `json:"gender"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	State     string    `json:"state"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"timestamp"`
}
