package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements repository.EventRepository using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create inserts a new event without rosters.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindByID retrieves an event with its rosters.
func (repo *eventRepository) FindByID(ctx context.Context, id int64) (*entity.Event, error) {
	return repo.first(repo.db.WithContext(ctx), id)
}

// LockByID retrieves an event with its rosters and locks the event row.
func (repo *eventRepository) LockByID(ctx context.Context, id int64) (*entity.Event, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)), id)
}

func (repo *eventRepository) first(db *gorm.DB, id int64) (*entity.Event, error) {
	var eventM model.EventModel
	err := withRosters(db).Where("id = ?", id).First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

func withRosters(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Organizers", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Organizers.User").
		Preload("Guests", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Guests.User")
}

// List returns one page of events ordered by start time.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EventModel{})
	if filter.Name != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(filter.Name))
	}
	if filter.Location != "" {
		query = query.Where(`LOWER(location) LIKE ? ESCAPE '\'`, containsPattern(filter.Location))
	}
	if filter.Started != nil {
		if *filter.Started {
			query = query.Where("start_time <= ?", filter.Now)
		} else {
			query = query.Where("start_time > ?", filter.Now)
		}
	}
	if filter.Ended != nil {
		if *filter.Ended {
			query = query.Where("end_time <= ?", filter.Now)
		} else {
			query = query.Where("end_time > ?", filter.Now)
		}
	}
	if !filter.ShowFull {
		query = query.Where("is_full = ?", false)
	}
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count events")
	}

	var eventMs []model.EventModel
	if err := withRosters(paginate(query, filter.Pagination)).Order("start_time ASC, id ASC").Find(&eventMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for i := range eventMs {
		events = append(events, toEventDomain(&eventMs[i]))
	}

	return events, count, nil
}

// Update writes every scalar column of the event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	updates := map[string]any{
		"name":           event.Name,
		"description":    event.Description,
		"location":       event.Location,
		"start_time":     event.StartTime,
		"end_time":       event.EndTime,
		"capacity":       event.Capacity,
		"points_remain":  event.PointsRemain,
		"points_awarded": event.PointsAwarded,
		"published":      event.Published,
		"is_full":        event.Full,
	}

	result := repo.db.WithContext(ctx).Model(&model.EventModel{}).Where("id = ?", event.ID).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event and its rosters.
func (repo *eventRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("event_id = ?", id).Delete(&model.EventGuestModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete event guests")
	}
	if err := db.Where("event_id = ?", id).Delete(&model.EventOrganizerModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete event organizers")
	}

	result := db.Where("id = ?", id).Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// AddGuest inserts a guest row.
func (repo *eventRepository) AddGuest(ctx context.Context, eventID, userID int64) error {
	guest := &model.EventGuestModel{EventID: eventID, UserID: userID}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(guest).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGuest
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add guest")
	}

	return nil
}

// RemoveGuest deletes a guest row.
func (repo *eventRepository) RemoveGuest(ctx context.Context, eventID, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventGuestModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove guest")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddOrganizer inserts an organizer row.
func (repo *eventRepository) AddOrganizer(ctx context.Context, eventID, userID int64) error {
	organizer := &model.EventOrganizerModel{EventID: eventID, UserID: userID}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(organizer).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrganizer
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add organizer")
	}

	return nil
}

// RemoveOrganizer deletes an organizer row.
func (repo *eventRepository) RemoveOrganizer(ctx context.Context, eventID, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventOrganizerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove organizer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	organizers := make([]entity.UserRef, 0, len(data.Organizers))
	for _, o := range data.Organizers {
		organizers = append(organizers, entity.UserRef{ID: o.UserID, Utorid: o.User.Utorid, Name: o.User.Name})
	}
	guests := make([]entity.UserRef, 0, len(data.Guests))
	for _, g := range data.Guests {
		guests = append(guests, entity.UserRef{ID: g.UserID, Utorid: g.User.Utorid, Name: g.User.Name})
	}

	return &entity.Event{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Location:      data.Location,
		StartTime:     data.StartTime,
		EndTime:       data.EndTime,
		Capacity:      data.Capacity,
		PointsRemain:  data.PointsRemain,
		PointsAwarded: data.PointsAwarded,
		Published:     data.Published,
		Full:          data.Full,
		Organizers:    organizers,
		Guests:        guests,
		CreatedAt:     data.CreatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Location:      data.Location,
		StartTime:     data.StartTime,
		EndTime:       data.EndTime,
		Capacity:      data.Capacity,
		PointsRemain:  data.PointsRemain,
		PointsAwarded: data.PointsAwarded,
		Published:     data.Published,
		Full:          data.Full,
	}
}
