package ledger

import (
	"slices"
	"strings"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
)

// ValidateNewEvent checks a freshly submitted event. PointsRemain holds the budget.
func ValidateNewEvent(event *entity.Event, now time.Time) error {
	if strings.TrimSpace(event.Name) == "" || strings.TrimSpace(event.Description) == "" || strings.TrimSpace(event.Location) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name, description and location are required")
	}
	if event.StartTime.Before(now) || !event.StartTime.Before(event.EndTime) {
		return domainerrors.ErrInvalidTimeWindow
	}
	if event.PointsRemain <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("points must be a positive integer")
	}
	if event.Capacity != nil && *event.Capacity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("capacity must be positive")
	}

	return nil
}

// CanDeleteEvent rejects deletion of published events.
func CanDeleteEvent(event *entity.Event) error {
	if event.Published {
		return domainerrors.ErrEventPublished
	}

	return nil
}

// AddGuest puts user on the guest list and recomputes the full flag.
func AddGuest(event *entity.Event, user *entity.User, now time.Time) error {
	if event.HasEnded(now) {
		return domainerrors.ErrEventEnded
	}
	if event.Full || (event.Capacity != nil && event.NumGuests() >= *event.Capacity) {
		return domainerrors.ErrEventFull
	}
	if event.IsGuest(user.ID) {
		return domainerrors.ErrAlreadyGuest
	}
	if event.IsOrganizer(user.ID) {
		return domainerrors.ErrOrganizerGuestConflict
	}

	event.Guests = append(event.Guests, user.Ref())
	event.Full = event.Capacity != nil && event.NumGuests() == *event.Capacity

	return nil
}

// RemoveGuest takes the user off the guest list. A removal always frees a seat.
func RemoveGuest(event *entity.Event, userID int64, now time.Time) error {
	if !event.IsGuest(userID) {
		return domainerrors.ErrNotFound.WithDetails("user is not a guest of the event")
	}
	if event.HasEnded(now) {
		return domainerrors.ErrEventEnded
	}

	event.Guests = slices.DeleteFunc(event.Guests, func(g entity.UserRef) bool { return g.ID == userID })
	event.Full = false

	return nil
}

// AddOrganizer makes user an organizer. It reports false when the user already was one.
func AddOrganizer(event *entity.Event, user *entity.User, now time.Time) (bool, error) {
	if event.IsGuest(user.ID) {
		return false, domainerrors.ErrOrganizerGuestConflict
	}
	if event.HasEnded(now) {
		return false, domainerrors.ErrEventEnded
	}
	if event.IsOrganizer(user.ID) {
		return false, nil
	}

	event.Organizers = append(event.Organizers, user.Ref())

	return true, nil
}

// RemoveOrganizer drops the user from the organizers.
func RemoveOrganizer(event *entity.Event, userID int64) error {
	if !event.IsOrganizer(userID) {
		return domainerrors.ErrNotFound.WithDetails("user is not an organizer of the event")
	}

	event.Organizers = slices.DeleteFunc(event.Organizers, func(o entity.UserRef) bool { return o.ID == userID })

	return nil
}

// AwardPlan lists who receives event points and how much the budget shrinks.
type AwardPlan struct {
	Amount     int64
	Recipients []entity.UserRef
	Total      int64
}

// PlanAward validates an award against the event budget. An empty target
// utorid awards every guest.
func PlanAward(event *entity.Event, amount int64, targetUtorid string) (AwardPlan, error) {
	if amount <= 0 {
		return AwardPlan{}, domainerrors.ErrValidationFailed.WithDetails("amount must be a positive integer")
	}
	if amount > MaxTransactionPoints {
		return AwardPlan{}, errTooManyPoints("award")
	}

	plan := AwardPlan{Amount: amount}
	if targetUtorid != "" {
		guest, ok := event.FindGuest(targetUtorid)
		if !ok {
			return AwardPlan{}, domainerrors.ErrNotAGuest
		}
		plan.Recipients = []entity.UserRef{guest}
	} else {
		plan.Recipients = slices.Clone(event.Guests)
	}

	// Compare per recipient first; amount × recipients may not fit in int64.
	if n := int64(len(plan.Recipients)); n > 0 && amount > event.PointsRemain/n {
		return AwardPlan{}, domainerrors.ErrEventBudgetExceeded
	}
	plan.Total = amount * int64(len(plan.Recipients))

	return plan, nil
}

// ApplyAward moves the planned total from the remaining budget to the awarded pool.
func ApplyAward(event *entity.Event, plan AwardPlan) {
	event.PointsRemain -= plan.Total
	event.PointsAwarded += plan.Total
}

// EventPatch holds the optional fields of an event update.
type EventPatch struct {
	Name        *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Capacity    *int
	Points      *int64
	Published   *bool
}

// ApplyEventPatch validates patch against the event timeline and applies it.
// canManageBudget gates the points and published fields.
func ApplyEventPatch(event *entity.Event, patch EventPatch, canManageBudget bool, now time.Time) error {
	startedFieldSet := patch.Name != nil || patch.Description != nil || patch.Location != nil ||
		patch.StartTime != nil || patch.Capacity != nil
	if startedFieldSet && event.HasStarted(now) {
		return domainerrors.ErrEventStarted
	}
	if patch.EndTime != nil && event.HasEnded(now) {
		return domainerrors.ErrEventEndedEdit
	}
	if (patch.Points != nil || patch.Published != nil) && !canManageBudget {
		return domainerrors.ErrForbidden.WithDetails("only managers may change points or publish events")
	}

	start, end := event.StartTime, event.EndTime
	if patch.StartTime != nil {
		if patch.StartTime.Before(now) {
			return domainerrors.ErrInvalidTimeWindow
		}
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		if patch.EndTime.Before(now) {
			return domainerrors.ErrInvalidTimeWindow
		}
		end = *patch.EndTime
	}
	if !start.Before(end) {
		return domainerrors.ErrInvalidTimeWindow
	}

	for _, field := range []*string{patch.Name, patch.Description, patch.Location} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("name, description and location cannot be empty")
		}
	}
	if patch.Capacity != nil && (*patch.Capacity <= 0 || *patch.Capacity < event.NumGuests()) {
		return domainerrors.ErrValidationFailed.WithDetails("capacity must be positive and not below the current guest count")
	}
	if patch.Points != nil && *patch.Points < event.PointsAwarded {
		return domainerrors.ErrValidationFailed.WithDetails("points cannot be lower than the points already awarded")
	}
	if patch.Published != nil && !*patch.Published {
		return domainerrors.ErrValidationFailed.WithDetails("published can only be set to true")
	}

	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	event.StartTime, event.EndTime = start, end
	if patch.Capacity != nil {
		capacity := *patch.Capacity
		event.Capacity = &capacity
		event.Full = capacity == event.NumGuests()
	}
	if patch.Points != nil {
		event.PointsRemain = *patch.Points - event.PointsAwarded
	}
	if patch.Published != nil {
		event.Published = true
	}

	return nil
}
