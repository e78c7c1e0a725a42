package persistence

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// TransactionRepository defines the operations of the append-only payment log.
// There is intentionally no update or delete operation.
type TransactionRepository interface {
	// Append stores a new transaction and assigns a monotonically increasing ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the store is unreachable
	Append(ctx context.Context, transaction *entity.Transaction) error

	// ListAll returns every transaction in creation order
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the store is unreachable
	ListAll(ctx context.Context) ([]*entity.Transaction, error)
}
