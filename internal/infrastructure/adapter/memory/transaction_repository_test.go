package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"github.com/parkspot-io/parkspot-api/mocks/port/core"
)

func newTestTransaction(t *testing.T, tp *core.MockTimeProvider, reference string) *entity.Transaction {
	t.Helper()

	tx, err := entity.NewTransaction(reference, 1, 1, 200, 100, 100, tp)
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_Append(t *testing.T) {
	ctx := context.Background()
	tp := testTimeProvider()
	repo := NewTransactionRepository()

	first := newTestTransaction(t, tp, "ref-1")
	second := newTestTransaction(t, tp, "ref-2")

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
}

func TestTransactionRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	tp := testTimeProvider()
	repo := NewTransactionRepository()

	t.Run("empty log", func(t *testing.T) {
		transactions, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("creation order", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, newTestTransaction(t, tp, "ref-1")))
		require.NoError(t, repo.Append(ctx, newTestTransaction(t, tp, "ref-2")))
		require.NoError(t, repo.Append(ctx, newTestTransaction(t, tp, "ref-3")))

		transactions, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 3)
		assert.Equal(t, "ref-1", transactions[0].Reference)
		assert.Equal(t, "ref-2", transactions[1].Reference)
		assert.Equal(t, "ref-3", transactions[2].Reference)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		transactions, err := repo.ListAll(ctx)
		require.NoError(t, err)

		transactions[0].AmountInCents = 999999

		again, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(200), again[0].AmountInCents)
	})
}

func TestTransactionRepository_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	tp := testTimeProvider()
	repo := NewTransactionRepository()

	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx := newTestTransaction(t, tp, uuidLike(i))
			assert.NoError(t, repo.Append(ctx, tx))
		}(i)
	}
	wg.Wait()

	transactions, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, writers)

	// IDs are unique and dense
	seen := make(map[uint64]bool, writers)
	for _, tx := range transactions {
		assert.False(t, seen[tx.ID])
		seen[tx.ID] = true
	}
}

func uuidLike(i int) string {
	return "ref-" + string(rune('0'+i/10)) + string(rune('0'+i%10))
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()
	tp := testTimeProvider()
	repo := NewReservationRepository()

	reservation, err := entity.NewReservation(1, 2, tp)
	require.NoError(t, err)

	t.Run("create assigns an ID", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, reservation))
		assert.Equal(t, uint64(1), reservation.ID)
	})

	t.Run("get by ID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got.UserID)
		assert.Equal(t, uint64(2), got.SlotID)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, reservation.ID))

		_, err := repo.GetByID(ctx, reservation.ID)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, reservation.ID), errs.ErrReservationNotFound)
	})

	t.Run("IDs are never reused after deletion", func(t *testing.T) {
		next, err := entity.NewReservation(1, 3, tp)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, next))
		assert.Equal(t, uint64(2), next.ID)
	})
}
