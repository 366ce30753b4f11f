package entity

import (
	"slices"
	"time"
)

// Event is an in-person event with a roster and its own point budget.
type Event struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Capacity      *int      `json:"capacity"`
	PointsRemain  int64     `json:"pointsRemain"`
	PointsAwarded int64     `json:"pointsAwarded"`
	Published     bool      `json:"published"`
	Full          bool      `json:"full"`
	Organizers    []UserRef `json:"organizers"`
	Guests        []UserRef `json:"guests"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Budget is the total point pool of the event.
func (e *Event) Budget() int64 {
	return e.PointsRemain + e.PointsAwarded
}

// HasStarted reports whether now is at or after the start of the event.
func (e *Event) HasStarted(now time.Time) bool {
	return !now.Before(e.StartTime)
}

// HasEnded reports whether now is at or after the end of the event.
func (e *Event) HasEnded(now time.Time) bool {
	return !now.Before(e.EndTime)
}

// IsGuest reports whether the user is on the guest list.
func (e *Event) IsGuest(userID int64) bool {
	return slices.ContainsFunc(e.Guests, func(g UserRef) bool { return g.ID == userID })
}

// IsOrganizer reports whether the user organizes the event.
func (e *Event) IsOrganizer(userID int64) bool {
	return slices.ContainsFunc(e.Organizers, func(o UserRef) bool { return o.ID == userID })
}

// NumGuests returns the size of the guest list.
func (e *Event) NumGuests() int {
	return len(e.Guests)
}

// FindGuest returns the guest with the given utorid.
func (e *Event) FindGuest(utorid string) (UserRef, bool) {
	idx := slices.IndexFunc(e.Guests, func(g UserRef) bool { return g.Utorid == utorid })
	if idx < 0 {
		return UserRef{}, false
	}

	return e.Guests[idx], true
}
