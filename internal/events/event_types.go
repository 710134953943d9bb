package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/adoptafacil/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventAdopterRegistered EventType = "adopter_registered"
	EventDonationReceived  EventType = "donation_received"
)

// Event represents a domain event emitted by services after a successful save.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EntityID   int64       `json:"entity_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, entityID int64, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// UserRegisteredPayload payload. Credentials never leave the service.
type UserRegisteredPayload struct {
	Email    string            `json:"email"`
	FullName string            `json:"full_name"`
	Status   domain.UserStatus `json:"status"`
}

// AdopterRegisteredPayload payload.
type AdopterRegisteredPayload struct {
	UserID       int64               `json:"user_id"`
	DocumentType domain.DocumentType `json:"document_type"`
}

// DonationReceivedPayload payload.
type DonationReceivedPayload struct {
	DonorID      int64               `json:"donor_id"`
	ShelterID    int64               `json:"shelter_id"`
	Amount       string              `json:"amount"`
	DonationType domain.DonationType `json:"donation_type"`
}
