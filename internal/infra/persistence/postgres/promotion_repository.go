package postgres

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements repository.PromotionRepository using GORM.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

// Create inserts a new promotion.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Create(promotionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promotionM.ID
	promotion.CreatedAt = promotionM.CreatedAt

	return nil
}

// FindByID retrieves a single promotion.
func (repo *promotionRepository) FindByID(ctx context.Context, id int64) (*entity.Promotion, error) {
	var promotionM model.PromotionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&promotionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion")
	}

	return toPromotionDomain(&promotionM), nil
}

// FindByIDs returns the promotions that exist among ids.
func (repo *promotionRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Promotion, error) {
	if len(ids) == 0 {
		return []*entity.Promotion{}, nil
	}

	var promotionMs []model.PromotionModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&promotionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find promotions")
	}

	return toPromotionsDomain(promotionMs), nil
}

// FindActive returns promotions of the given type whose window contains now.
func (repo *promotionRepository) FindActive(ctx context.Context, now time.Time, promotionType entity.PromotionType) ([]*entity.Promotion, error) {
	var promotionMs []model.PromotionModel
	err := repo.db.WithContext(ctx).
		Where("type = ? AND start_time <= ? AND end_time > ?", string(promotionType), now, now).
		Order("id ASC").
		Find(&promotionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active promotions")
	}

	return toPromotionsDomain(promotionMs), nil
}

// List returns one page of promotions ordered by start time.
func (repo *promotionRepository) List(ctx context.Context, filter repository.PromotionFilter) ([]*entity.Promotion, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PromotionModel{})
	if filter.Name != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(filter.Name))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.ActiveOnly {
		query = query.Where("start_time <= ? AND end_time > ?", filter.Now, filter.Now)
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

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count promotions")
	}

	var promotionMs []model.PromotionModel
	if err := paginate(query, filter.Pagination).Order("start_time ASC, id ASC").Find(&promotionMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list promotions")
	}

	return toPromotionsDomain(promotionMs), count, nil
}

// Update writes every column of the promotion.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	updates := map[string]any{
		"name":         promotion.Name,
		"description":  promotion.Description,
		"type":         string(promotion.Type),
		"start_time":   promotion.StartTime,
		"end_time":     promotion.EndTime,
		"min_spending": promotion.MinSpending,
		"rate":         promotion.Rate,
		"points":       promotion.Points,
	}

	result := repo.db.WithContext(ctx).Model(&model.PromotionModel{}).Where("id = ?", promotion.ID).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// Delete removes a promotion.
func (repo *promotionRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PromotionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

func toPromotionsDomain(data []model.PromotionModel) []*entity.Promotion {
	promotions := make([]*entity.Promotion, 0, len(data))
	for i := range data {
		promotions = append(promotions, toPromotionDomain(&data[i]))
	}

	return promotions
}

func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	return &entity.Promotion{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Type:        entity.PromotionType(data.Type),
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		MinSpending: data.MinSpending,
		Rate:        data.Rate,
		Points:      data.Points,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	return &model.PromotionModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Type:        string(data.Type),
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		MinSpending: data.MinSpending,
		Rate:        data.Rate,
		Points:      data.Points,
	}
}
