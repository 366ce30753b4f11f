package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
)

// CreateEventInput describes a new event. Points is the whole budget.
type CreateEventInput struct {
	Name        string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    *int
	Points      int64
}

// UpdateEventInput holds the optional fields of an event update.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Capacity    *int
	Points      *int64
	Published   *bool
}

// ListEventsInput filters an event listing. Published is only honoured for managers.
type ListEventsInput struct {
	Name      string
	Location  string
	Started   *bool
	Ended     *bool
	ShowFull  bool
	Published *bool
	PageInput
}

// AwardPointsInput awards Amount points to Utorid, or to every guest when Utorid is empty.
type AwardPointsInput struct {
	Amount int64
	Utorid string
}

// EventDetail is an event as seen by the actor. Privileged viewers (managers
// and organizers) see the budget and the guest list.
type EventDetail struct {
	Event      *entity.Event
	Privileged bool
}

// EventUsecase defines roster and budget operations on events.
type EventUsecase interface {
	CreateEvent(ctx context.Context, actor Actor, input CreateEventInput) (*entity.Event, error)
	ListEvents(ctx context.Context, actor Actor, input ListEventsInput) (*ListResult[*entity.Event], error)
	GetEvent(ctx context.Context, actor Actor, eventID int64) (*EventDetail, error)
	UpdateEvent(ctx context.Context, actor Actor, eventID int64, input UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, eventID int64) error

	AddOrganizer(ctx context.Context, eventID int64, utorid string) (*entity.Event, error)
	RemoveOrganizer(ctx context.Context, eventID, userID int64) error

	// AddGuest is open to managers and to organizers of the event.
	AddGuest(ctx context.Context, actor Actor, eventID int64, utorid string) (*entity.Event, error)
	RemoveGuest(ctx context.Context, eventID, userID int64) error

	// RSVP adds the actor to the guest list of a published event.
	RSVP(ctx context.Context, actor Actor, eventID int64) (*entity.Event, error)
	CancelRSVP(ctx context.Context, actor Actor, eventID int64) error

	// AwardPoints pays event points out of the event budget, one transaction per recipient.
	AwardPoints(ctx context.Context, actor Actor, eventID int64, input AwardPointsInput) ([]*entity.Transaction, error)
}
