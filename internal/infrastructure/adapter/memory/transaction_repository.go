package memory

import (
	"context"
	"sync"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// TransactionRepository is an in-memory, append-only payment log. Records are
// never updated or deleted; the log length is monotonically non-decreasing.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []*entity.Transaction
	nextID       uint64
}

// NewTransactionRepository creates an empty in-memory transaction log
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Append stores a new transaction and assigns a monotonically increasing ID
func (r *TransactionRepository) Append(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	transaction.ID = r.nextID

	clone := *transaction
	r.transactions = append(r.transactions, &clone)

	return nil
}

// ListAll returns every transaction in creation order
func (r *TransactionRepository) ListAll(_ context.Context) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*entity.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		clone := *transaction
		snapshot = append(snapshot, &clone)
	}

	return snapshot, nil
}
