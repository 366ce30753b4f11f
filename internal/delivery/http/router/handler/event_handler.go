package handler

import (
	"log/slog"
	"net/http"
	"time"

	"loyalty/internal/delivery/http/response"
	"loyalty/internal/domain/authz"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler serves events, their rosters and point awards.
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	Capacity    *int      `json:"capacity" validate:"omitnil,gt=0"`
	Points      int64     `json:"points" validate:"required,gt=0"`
}

// UpdateEventRequest is the body of PATCH /events/:eventId.
type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Capacity    *int       `json:"capacity" validate:"omitnil,gt=0"`
	Points      *int64     `json:"points" validate:"omitnil,gt=0"`
	Published   *bool      `json:"published"`
}

// UtoridRequest names a user by utorid, for organizer and guest additions.
type UtoridRequest struct {
	Utorid string `json:"utorid" validate:"required"`
}

// AwardPointsRequest is the body of POST /events/:eventId/transactions.
// Without utorid every guest is awarded.
type AwardPointsRequest struct {
	Type   string `json:"type" validate:"required,eq=event"`
	Utorid string `json:"utorid"`
	Amount int64  `json:"amount" validate:"required,gt=0,max=1000000000"`
}

type listEventsQuery struct {
	Name     string `query:"name"`
	Location string `query:"location"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// EventView is the full event as seen by managers and organizers.
type EventView struct {
	*entity.Event
	NumGuests int `json:"numGuests"`
}

// EventSummary is the public view of an event: no budget, no guest list.
type EventSummary struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     time.Time        `json:"endTime"`
	Capacity    *int             `json:"capacity"`
	NumGuests   int              `json:"numGuests"`
	Organizers  []entity.UserRef `json:"organizers"`
}

func renderEvent(event *entity.Event, privileged bool) any {
	if privileged {
		return EventView{Event: event, NumGuests: event.NumGuests()}
	}

	return EventSummary{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Capacity:    event.Capacity,
		NumGuests:   event.NumGuests(),
		Organizers:  event.Organizers,
	}
}

// CreateEvent creates an unpublished event.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), actor, usecase.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Points:      req.Points,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderEvent(event, true), "Event created")
}

// ListEvents lists the events visible to the caller.
func (h *EventHandler) ListEvents(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var query listEventsQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ListEventsInput{
		Name:      query.Name,
		Location:  query.Location,
		PageInput: usecase.PageInput{Page: query.Page, Limit: query.Limit},
	}
	if input.Started, err = optionalBool(c, "started"); err != nil {
		return err
	}
	if input.Ended, err = optionalBool(c, "ended"); err != nil {
		return err
	}
	if input.Published, err = optionalBool(c, "published"); err != nil {
		return err
	}
	showFull, err := optionalBool(c, "showFull")
	if err != nil {
		return err
	}
	input.ShowFull = showFull != nil && *showFull

	result, err := h.eventUC.ListEvents(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	privileged := authz.Allowed(actor.Role, authz.OpViewUnpublished)
	views := make([]any, 0, len(result.Results))
	for _, event := range result.Results {
		views = append(views, renderEvent(event, privileged))
	}

	return response.Success(c, http.StatusOK, usecase.ListResult[any]{Count: result.Count, Results: views}, "")
}

// GetEvent returns one event, with the budget and guests for managers and organizers.
func (h *EventHandler) GetEvent(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	detail, err := h.eventUC.GetEvent(c.Request().Context(), actor, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderEvent(detail.Event, detail.Privileged), "")
}

// UpdateEvent edits an event; managers and organizers only.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	var req UpdateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), actor, eventID, usecase.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Points:      req.Points,
		Published:   req.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderEvent(event, true), "Event updated")
}

// DeleteEvent removes an unpublished event.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), eventID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddOrganizer adds an organizer by utorid.
func (h *EventHandler) AddOrganizer(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	var req UtoridRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.AddOrganizer(c.Request().Context(), eventID, req.Utorid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderEvent(event, true), "Organizer added")
}

// RemoveOrganizer removes an organizer.
func (h *EventHandler) RemoveOrganizer(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.eventUC.RemoveOrganizer(c.Request().Context(), eventID, userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddGuest puts a user on the guest list.
func (h *EventHandler) AddGuest(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	var req UtoridRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.AddGuest(c.Request().Context(), actor, eventID, req.Utorid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderEvent(event, true), "Guest added")
}

// RemoveGuest takes a user off the guest list.
func (h *EventHandler) RemoveGuest(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.eventUC.RemoveGuest(c.Request().Context(), eventID, userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RSVP adds the caller to the guest list.
func (h *EventHandler) RSVP(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	event, err := h.eventUC.RSVP(c.Request().Context(), actor, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderEvent(event, false), "RSVP confirmed")
}

// CancelRSVP takes the caller off the guest list.
func (h *EventHandler) CancelRSVP(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	if err := h.eventUC.CancelRSVP(c.Request().Context(), actor, eventID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AwardPoints pays points from the event budget to one guest or all of them.
func (h *EventHandler) AwardPoints(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}

	var req AwardPointsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	txs, err := h.eventUC.AwardPoints(c.Request().Context(), actor, eventID, usecase.AwardPointsInput{
		Amount: req.Amount,
		Utorid: req.Utorid,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if req.Utorid != "" && len(txs) == 1 {
		return response.Success(c, http.StatusCreated, txs[0], "Points awarded")
	}
	if txs == nil {
		txs = []*entity.Transaction{}
	}

	return response.Success(c, http.StatusCreated, txs, "Points awarded")
}
