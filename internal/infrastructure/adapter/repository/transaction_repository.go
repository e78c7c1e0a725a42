package repository

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the append-only payment log using GORM.
// No update or delete queries exist on purpose.
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func modelToTransaction(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                    transactionModel.ID,
		Reference:             transactionModel.Reference,
		UserID:                transactionModel.UserID,
		SlotID:                transactionModel.SlotID,
		AmountInCents:         transactionModel.Amount,
		ApplicationFeeInCents: transactionModel.ApplicationFee,
		OwnerCreditInCents:    transactionModel.OwnerCredit,
		CreatedAt:             transactionModel.CreatedAt,
	}
}

// Append stores a new transaction and assigns its ID
func (r *TransactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := &model.Transaction{
		Reference:      transaction.Reference,
		UserID:         transaction.UserID,
		SlotID:         transaction.SlotID,
		Amount:         transaction.AmountInCents,
		ApplicationFee: transaction.ApplicationFeeInCents,
		OwnerCredit:    transaction.OwnerCreditInCents,
		CreatedAt:      transaction.CreatedAt,
	}

	if result := r.db.WithContext(ctx).Create(transactionModel); result.Error != nil {
		return mapError(result.Error, errs.ErrNotFound)
	}

	transaction.ID = transactionModel.ID
	return nil
}

// ListAll returns every transaction in creation order
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	if result := r.db.WithContext(ctx).Order("id").Find(&transactionModels); result.Error != nil {
		return nil, mapError(result.Error, errs.ErrNotFound)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, modelToTransaction(&transactionModels[i]))
	}

	return transactions, nil
}
