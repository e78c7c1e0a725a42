package persistence

import (
	"context"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
)

// SlotRepository defines the operations of the slot registry store
type SlotRepository interface {
	// Create persists a new slot and assigns its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the store is unreachable
	Create(ctx context.Context, slot *entity.Slot) error

	// GetByID retrieves a slot by ID
	//
	// Possible errors:
	// - ErrSlotNotFound: if no slot with the given ID exists
	// - ErrDatabaseConnection: if the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Slot, error)

	// List returns a snapshot of all slots. Callers may iterate and filter
	// without holding any store lock.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the store is unreachable
	List(ctx context.Context) ([]*entity.Slot, error)

	// TryReserve atomically transitions a slot from available to reserved.
	// The check-and-set is a single atomic step so two concurrent reserve
	// attempts on the same slot cannot both succeed.
	//
	// Possible errors:
	// - ErrSlotNotFound: if no slot with the given ID exists
	// - ErrSlotAlreadyReserved: if the slot is not available
	// - ErrDatabaseConnection: if the store is unreachable
	TryReserve(ctx context.Context, id uint64) (*entity.Slot, error)

	// Release transitions a slot back to available. Idempotent when the slot
	// is already available.
	//
	// Possible errors:
	// - ErrSlotNotFound: if no slot with the given ID exists
	// - ErrDatabaseConnection: if the store is unreachable
	Release(ctx context.Context, id uint64) error
}
