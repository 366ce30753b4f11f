package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements repository.TransactionRepository using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts the transaction together with its applied promotions.
func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidPromotion.WrapMessage("applied promotion does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

// FindByID retrieves a single transaction.
func (repo *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	return repo.first(repo.db.WithContext(ctx), id)
}

// LockByID retrieves a transaction with a row lock held until the transaction ends.
func (repo *transactionRepository) LockByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)), id)
}

func (repo *transactionRepository) first(db *gorm.DB, id int64) (*entity.Transaction, error) {
	var txM model.TransactionModel
	if err := db.Preload("Promotions").Where("id = ?", id).First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

// List returns one page of transactions, newest first.
func (repo *transactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TransactionModel{})
	if filter.Utorid != "" {
		query = query.Where("transactions.utorid = ?", filter.Utorid)
	}
	if filter.Name != "" {
		pattern := containsPattern(filter.Name)
		owners := repo.db.Model(&model.UserModel{}).Select("utorid").
			Where(`LOWER(utorid) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\'`, pattern, pattern)
		query = query.Where("transactions.utorid IN (?)", owners)
	}
	if filter.CreatedBy != "" {
		query = query.Where("transactions.created_by = ?", filter.CreatedBy)
	}
	if filter.Suspicious != nil {
		query = query.Where("transactions.suspicious = ?", *filter.Suspicious)
	}
	if filter.PromotionID != nil {
		applied := repo.db.Model(&model.TransactionPromotionModel{}).Select("transaction_id").
			Where("promotion_id = ?", *filter.PromotionID)
		query = query.Where("transactions.id IN (?)", applied)
	}
	if filter.Type != nil {
		query = query.Where("transactions.type = ?", string(*filter.Type))
	}
	if filter.RelatedID != nil {
		query = query.Where("transactions.related_id = ?", *filter.RelatedID)
	}
	if filter.Amount != nil {
		switch filter.Operator {
		case repository.OperatorLTE:
			query = query.Where("transactions.amount <= ?", *filter.Amount)
		default:
			query = query.Where("transactions.amount >= ?", *filter.Amount)
		}
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}

	var txMs []model.TransactionModel
	if err := paginate(query, filter.Pagination).Preload("Promotions").Order("transactions.id DESC").Find(&txMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	txs := make([]*entity.Transaction, 0, len(txMs))
	for i := range txMs {
		txs = append(txs, toTransactionDomain(&txMs[i]))
	}

	return txs, count, nil
}

// UpdateSuspicious sets the suspicious flag.
func (repo *transactionRepository) UpdateSuspicious(ctx context.Context, id int64, suspicious bool) error {
	result := repo.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("suspicious", suspicious)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// MarkProcessed records the processor. The processed_by IS NULL guard keeps it set-once.
func (repo *transactionRepository) MarkProcessed(ctx context.Context, id int64, processedBy string) error {
	result := repo.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("id = ? AND processed_by IS NULL", id).
		Update("processed_by", processedBy)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to process redemption")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRedemptionAlreadyProcessed
	}

	return nil
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	promotionIDs := make([]int64, 0, len(data.Promotions))
	for _, p := range data.Promotions {
		promotionIDs = append(promotionIDs, p.PromotionID)
	}

	return &entity.Transaction{
		ID:           data.ID,
		Utorid:       data.Utorid,
		Type:         entity.TransactionType(data.Type),
		Amount:       data.Amount,
		Spent:        data.Spent,
		Redeemed:     data.Redeemed,
		RelatedID:    data.RelatedID,
		PromotionIDs: promotionIDs,
		Suspicious:   data.Suspicious,
		ProcessedBy:  data.ProcessedBy,
		Remark:       data.Remark,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	promotions := make([]model.TransactionPromotionModel, 0, len(data.PromotionIDs))
	for _, id := range data.PromotionIDs {
		promotions = append(promotions, model.TransactionPromotionModel{PromotionID: id})
	}

	return &model.TransactionModel{
		ID:          data.ID,
		Utorid:      data.Utorid,
		Type:        string(data.Type),
		Amount:      data.Amount,
		Spent:       data.Spent,
		Redeemed:    data.Redeemed,
		RelatedID:   data.RelatedID,
		Suspicious:  data.Suspicious,
		ProcessedBy: data.ProcessedBy,
		Remark:      data.Remark,
		CreatedBy:   data.CreatedBy,
		Promotions:  promotions,
	}
}
