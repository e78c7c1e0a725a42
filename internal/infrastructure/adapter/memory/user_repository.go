package memory

import (
	"context"
	"sync"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// UserRepository is an in-memory, mutex-guarded account ledger. IDs come from
// a monotonic counter and are never reused. All balance mutations happen under
// the repository mutex, so debits and credits on the same account cannot lose
// updates.
type UserRepository struct {
	mu           sync.RWMutex
	users        map[uint64]*entity.User
	byIdentifier map[string]uint64
	nextID       uint64
	timeProvider coreport.TimeProvider
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository(timeProvider coreport.TimeProvider) *UserRepository {
	return &UserRepository{
		users:        make(map[uint64]*entity.User),
		byIdentifier: make(map[string]uint64),
		timeProvider: timeProvider,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

// GetByIdentifier retrieves a user by their unique identifier
func (r *UserRepository) GetByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byIdentifier[identifier]
	if !ok {
		return nil, errs.ErrUserNotFound
	}

	clone := *r.users[id]
	return &clone, nil
}

// Create persists a new user and assigns its ID
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byIdentifier[user.Identifier]; exists {
		return errs.ErrDuplicateUser
	}

	r.nextID++
	user.ID = r.nextID

	clone := *user
	r.users[user.ID] = &clone
	r.byIdentifier[user.Identifier] = user.ID

	return nil
}

// AdjustBalance atomically applies a balance change in cents
func (r *UserRepository) AdjustBalance(_ context.Context, id uint64, deltaInCents int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}

	if deltaInCents < 0 {
		if err := user.ApplyDebit(-deltaInCents, r.timeProvider); err != nil {
			return nil, err
		}
	} else {
		user.ApplyCredit(deltaInCents, r.timeProvider)
	}

	clone := *user
	return &clone, nil
}
