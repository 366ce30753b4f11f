package impl

import (
	"context"
	"log/slog"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/authz"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/ledger"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager    repository.TransactionManager
	eventRepo    repository.EventRepository
	clock        service.Clock
	effects      *ledgerEffects
	defaultLimit int
	logger       *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	Clock     service.Clock
	Cache     service.BalanceCache
	Publisher service.EventPublisher
	Metrics   service.LedgerMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	srv := &eventService{
		txManager: params.TxManager,
		eventRepo: params.EventRepo,
		clock:     params.Clock,
		effects: &ledgerEffects{
			cache:     params.Cache,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			clock:     params.Clock,
			logger:    params.Logger,
		},
		defaultLimit: fallbackPageLimit,
		logger:       params.Logger,
	}
	if params.Config != nil {
		srv.defaultLimit = params.Config.Ledger.DefaultPageLimit
	}

	return srv
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent validates and stores a new unpublished event.
func (srv *eventService) CreateEvent(ctx context.Context, actor usecase.Actor, input usecase.CreateEventInput) (*entity.Event, error) {
	event := &entity.Event{
		Name:         input.Name,
		Description:  input.Description,
		Location:     input.Location,
		StartTime:    input.StartTime.UTC(),
		EndTime:      input.EndTime.UTC(),
		Capacity:     input.Capacity,
		PointsRemain: input.Points,
		Organizers:   []entity.UserRef{},
		Guests:       []entity.UserRef{},
	}
	if err := ledger.ValidateNewEvent(event, srv.clock.Now()); err != nil {
		return nil, err
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created",
		slog.Int64("eventID", event.ID),
		slog.String("by", actor.Utorid),
		slog.Int64("budget", event.Budget()))

	return event, nil
}

// ListEvents returns one page of events. Only managers see unpublished events.
func (srv *eventService) ListEvents(ctx context.Context, actor usecase.Actor, input usecase.ListEventsInput) (*usecase.ListResult[*entity.Event], error) {
	page, err := toPagination(input.PageInput, srv.defaultLimit)
	if err != nil {
		return nil, err
	}
	if input.Started != nil && input.Ended != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("started and ended cannot be used together")
	}

	published := input.Published
	if !authz.Allowed(actor.Role, authz.OpViewUnpublished) {
		onlyPublished := true
		published = &onlyPublished
	}

	events, count, err := srv.eventRepo.List(ctx, repository.EventFilter{
		Name:       input.Name,
		Location:   input.Location,
		Started:    input.Started,
		Ended:      input.Ended,
		ShowFull:   input.ShowFull,
		Published:  published,
		Now:        srv.clock.Now(),
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return &usecase.ListResult[*entity.Event]{Count: count, Results: events}, nil
}

// GetEvent returns the event as the actor may see it. Unpublished events are
// hidden from everyone but managers and organizers.
func (srv *eventService) GetEvent(ctx context.Context, actor usecase.Actor, eventID int64) (*usecase.EventDetail, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	privileged := authz.CanManageEvent(actor.ID, actor.Role, event)
	if !event.Published && !privileged {
		return nil, domainerrors.ErrEventNotFound
	}

	return &usecase.EventDetail{Event: event, Privileged: privileged}, nil
}

// UpdateEvent applies a partial update under the event timeline rules.
func (srv *eventService) UpdateEvent(ctx context.Context, actor usecase.Actor, eventID int64, input usecase.UpdateEventInput) (*entity.Event, error) {
	now := srv.clock.Now()
	patch := ledger.EventPatch{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   utcPtr(input.StartTime),
		EndTime:     utcPtr(input.EndTime),
		Capacity:    input.Capacity,
		Points:      input.Points,
		Published:   input.Published,
	}

	var updated *entity.Event
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		if !authz.CanManageEvent(actor.ID, actor.Role, event) {
			return domainerrors.ErrForbidden
		}

		canManageBudget := authz.Allowed(actor.Role, authz.OpManageEventBudget)
		if err := ledger.ApplyEventPatch(event, patch, canManageBudget, now); err != nil {
			return err
		}
		if err := eventRepo.Update(ctx, event); err != nil {
			return translateRepoError(err)
		}

		updated = event

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to update event")
	}

	return updated, nil
}

// DeleteEvent removes an unpublished event.
func (srv *eventService) DeleteEvent(ctx context.Context, eventID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := ledger.CanDeleteEvent(event); err != nil {
			return err
		}

		return translateRepoError(eventRepo.Delete(ctx, eventID))
	})

	return finishTx(err, "failed to delete event")
}

// AddOrganizer makes the user with utorid an organizer. Adding an existing organizer is a no-op.
func (srv *eventService) AddOrganizer(ctx context.Context, eventID int64, utorid string) (*entity.Event, error) {
	now := srv.clock.Now()

	var updated *entity.Event
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		user, err := repoFactory.NewUserRepository().FindByUtorid(ctx, utorid)
		if err != nil {
			return translateRepoError(err)
		}

		added, err := ledger.AddOrganizer(event, user, now)
		if err != nil {
			return err
		}
		if added {
			if err := eventRepo.AddOrganizer(ctx, event.ID, user.ID); err != nil {
				return translateRepoError(err)
			}
		}

		updated = event

		return nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to add organizer")
	}

	return updated, nil
}

// RemoveOrganizer drops an organizer from the event.
func (srv *eventService) RemoveOrganizer(ctx context.Context, eventID, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := ledger.RemoveOrganizer(event, userID); err != nil {
			return err
		}

		return translateRepoError(eventRepo.RemoveOrganizer(ctx, eventID, userID))
	})

	return finishTx(err, "failed to remove organizer")
}

// AddGuest puts the user with utorid on the guest list.
func (srv *eventService) AddGuest(ctx context.Context, actor usecase.Actor, eventID int64, utorid string) (*entity.Event, error) {
	event, err := srv.addGuest(ctx, eventID, func(event *entity.Event, userRepo repository.UserRepository) (*entity.User, error) {
		if !authz.CanManageEvent(actor.ID, actor.Role, event) {
			return nil, domainerrors.ErrForbidden
		}

		user, err := userRepo.FindByUtorid(ctx, utorid)
		if err != nil {
			return nil, translateRepoError(err)
		}

		return user, nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to add guest")
	}

	return event, nil
}

// RSVP puts the actor on the guest list of a published event.
func (srv *eventService) RSVP(ctx context.Context, actor usecase.Actor, eventID int64) (*entity.Event, error) {
	event, err := srv.addGuest(ctx, eventID, func(event *entity.Event, userRepo repository.UserRepository) (*entity.User, error) {
		if !event.Published {
			return nil, domainerrors.ErrEventNotFound
		}

		user, err := userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			return nil, translateRepoError(err)
		}

		return user, nil
	})
	if err != nil {
		return nil, finishTx(err, "failed to join event")
	}

	return event, nil
}

// addGuest locks the event, lets pick choose the guest and enforces capacity.
func (srv *eventService) addGuest(
	ctx context.Context,
	eventID int64,
	pick func(event *entity.Event, userRepo repository.UserRepository) (*entity.User, error),
) (*entity.Event, error) {
	now := srv.clock.Now()

	var updated *entity.Event
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		user, err := pick(event, repoFactory.NewUserRepository())
		if err != nil {
			return err
		}

		if err := ledger.AddGuest(event, user, now); err != nil {
			return err
		}
		if err := eventRepo.AddGuest(ctx, event.ID, user.ID); err != nil {
			return translateRepoError(err)
		}
		if err := eventRepo.Update(ctx, event); err != nil {
			return translateRepoError(err)
		}

		updated = event

		return nil
	})

	return updated, err
}

// RemoveGuest takes a user off the guest list.
func (srv *eventService) RemoveGuest(ctx context.Context, eventID, userID int64) error {
	return finishTx(srv.removeGuest(ctx, eventID, userID), "failed to remove guest")
}

// CancelRSVP takes the actor off the guest list.
func (srv *eventService) CancelRSVP(ctx context.Context, actor usecase.Actor, eventID int64) error {
	return finishTx(srv.removeGuest(ctx, eventID, actor.ID), "failed to leave event")
}

func (srv *eventService) removeGuest(ctx context.Context, eventID, userID int64) error {
	now := srv.clock.Now()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := ledger.RemoveGuest(event, userID, now); err != nil {
			return err
		}
		if err := eventRepo.RemoveGuest(ctx, event.ID, userID); err != nil {
			return translateRepoError(err)
		}

		return translateRepoError(eventRepo.Update(ctx, event))
	})
}

// AwardPoints pays points out of the event budget. Awarding every guest is all or nothing.
func (srv *eventService) AwardPoints(ctx context.Context, actor usecase.Actor, eventID int64, input usecase.AwardPointsInput) ([]*entity.Transaction, error) {
	var (
		awarded      []*entity.Transaction
		recipientIDs []int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()
		txRepo := repoFactory.NewTransactionRepository()

		event, err := eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return translateRepoError(err)
		}
		if !authz.CanManageEvent(actor.ID, actor.Role, event) {
			return domainerrors.ErrForbidden
		}

		plan, err := ledger.PlanAward(event, input.Amount, input.Utorid)
		if err != nil {
			return err
		}

		awarded = make([]*entity.Transaction, 0, len(plan.Recipients))
		recipientIDs = make([]int64, 0, len(plan.Recipients))
		for _, recipient := range plan.Recipients {
			relatedID := event.ID
			tx := &entity.Transaction{
				Utorid:    recipient.Utorid,
				Type:      entity.TransactionEvent,
				Amount:    plan.Amount,
				RelatedID: &relatedID,
				Remark:    event.Description,
				CreatedBy: actor.Utorid,
			}
			if err := txRepo.Create(ctx, tx); err != nil {
				return err
			}
			awarded = append(awarded, tx)
			recipientIDs = append(recipientIDs, recipient.ID)
		}

		if err := repoFactory.NewUserRepository().AddPointsToMany(ctx, recipientIDs, plan.Amount); err != nil {
			return translateRepoError(err)
		}

		ledger.ApplyAward(event, plan)

		return translateRepoError(eventRepo.Update(ctx, event))
	})
	if err != nil {
		return nil, finishTx(err, "failed to award event points")
	}

	srv.effects.recorded(awarded...)
	if len(recipientIDs) > 0 {
		srv.effects.committed(ctx, service.LedgerEventEventPointsAwarded, nil, recipientIDs...)
	}

	srv.log(ctx).Info("Event points awarded",
		slog.Int64("eventID", eventID),
		slog.Int("recipients", len(awarded)),
		slog.Int64("amount", input.Amount))

	return awarded, nil
}
