package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
)

// EventFilter narrows an event listing.
type EventFilter struct {
	Name      string
	Location  string
	Started   *bool
	Ended     *bool
	ShowFull  bool
	Published *bool
	Now       time.Time
	Pagination
}

// EventRepository persists events and their rosters.
type EventRepository interface {
	// Create inserts the event, filling ID and CreatedAt.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves an event with its organizers and guests.
	FindByID(ctx context.Context, id int64) (*entity.Event, error)

	// LockByID retrieves an event with its rosters and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id int64) (*entity.Event, error)

	// List returns one page of events, with rosters, and the total number of matches.
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, int64, error)

	// Update writes every scalar column of the event. Rosters are not touched.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event and its rosters.
	Delete(ctx context.Context, id int64) error

	AddGuest(ctx context.Context, eventID, userID int64) error
	RemoveGuest(ctx context.Context, eventID, userID int64) error
	AddOrganizer(ctx context.Context, eventID, userID int64) error
	RemoveOrganizer(ctx context.Context, eventID, userID int64) error
}
