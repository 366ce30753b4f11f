// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID, preloading consumed promotions.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByUtorid retrieves a single user by utorid.
func (repo *userRepository) FindByUtorid(ctx context.Context, utorid string) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx), "utorid = ?", utorid)
}

// LockByID retrieves a user with a row lock held until the transaction ends.
func (repo *userRepository) LockByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)), "id = ?", id)
}

// LockByUtorid retrieves a user by utorid with a row lock held until the transaction ends.
func (repo *userRepository) LockByUtorid(ctx context.Context, utorid string) (*entity.User, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)), "utorid = ?", utorid)
}

func (repo *userRepository) first(db *gorm.DB, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := db.Preload("PromotionUsages").Where(query, arg).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// List returns one page of users ordered by id.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Name != "" {
		pattern := containsPattern(filter.Name)
		query = query.Where(`(LOWER(utorid) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}
	if filter.Activated != nil {
		if *filter.Activated {
			query = query.Where("last_login IS NOT NULL")
		} else {
			query = query.Where("last_login IS NULL")
		}
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userMs []model.UserModel
	if err := paginate(query, filter.Pagination).Order("id ASC").Find(&userMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, count, nil
}

// Update modifies the mutable columns of a user and stores user.UpdatedAt,
// which the caller stamps. The balance is only changed through AddPoints.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"name":       user.Name,
		"email":      user.Email,
		"birthday":   user.Birthday,
		"role":       user.Role.String(),
		"verified":   user.Verified,
		"suspicious": user.Suspicious,
		"last_login": user.LastLogin,
		"updated_at": user.UpdatedAt.UTC(),
	}

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddPoints adds delta to the balance in a single UPDATE.
func (repo *userRepository) AddPoints(ctx context.Context, id int64, delta int64) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddPointsToMany adds delta to the balance of every listed user.
func (repo *userRepository) AddPointsToMany(ctx context.Context, ids []int64, delta int64) error {
	if len(ids) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id IN ?", ids).
		Update("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update points")
	}
	if result.RowsAffected != int64(len(ids)) {
		return repository.ErrUserNotFound
	}

	return nil
}

// MarkPromotionsUsed inserts usage rows; the primary key rejects a second use.
func (repo *userRepository) MarkPromotionsUsed(ctx context.Context, userID int64, promotionIDs []int64) error {
	if len(promotionIDs) == 0 {
		return nil
	}

	usages := make([]model.UserPromotionUsageModel, 0, len(promotionIDs))
	for _, id := range promotionIDs {
		usages = append(usages, model.UserPromotionUsageModel{UserID: userID, PromotionID: id})
	}

	if err := repo.db.WithContext(ctx).Create(&usages).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPromotionAlreadyUsed
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record promotion usage")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	used := make([]int64, 0, len(data.PromotionUsages))
	for _, usage := range data.PromotionUsages {
		used = append(used, usage.PromotionID)
	}

	return &entity.User{
		ID:         data.ID,
		Utorid:     data.Utorid,
		Name:       data.Name,
		Email:      data.Email,
		Birthday:   data.Birthday,
		Role:       entity.Role(data.Role),
		Points:     data.Points,
		Verified:   data.Verified,
		Suspicious: data.Suspicious,
		Used:       used,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		LastLogin:  data.LastLogin,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		Utorid:     data.Utorid,
		Name:       data.Name,
		Email:      data.Email,
		Birthday:   data.Birthday,
		Role:       data.Role.String(),
		Points:     data.Points,
		Verified:   data.Verified,
		Suspicious: data.Suspicious,
		LastLogin:  data.LastLogin,
	}
}
