package entity

import (
	"testing"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	tp := fixedTimeProvider()

	t.Run("creates transaction with valid fee split", func(t *testing.T) {
		tx, err := NewTransaction("ref-1", 1, 2, 200, 100, 100, tp)

		assert.NoError(t, err)
		assert.Equal(t, "ref-1", tx.Reference)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, uint64(2), tx.SlotID)
		assert.Equal(t, "2.00", tx.Amount())
		assert.Equal(t, "1.00", tx.ApplicationFee())
		assert.Equal(t, "1.00", tx.OwnerCredit())
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := NewTransaction("", 1, 2, 200, 100, 100, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("rejects zero user ID", func(t *testing.T) {
		_, err := NewTransaction("ref-1", 0, 2, 200, 100, 100, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewTransaction("ref-1", 1, 2, -200, 100, 100, tp)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("rejects a fee split that does not add up", func(t *testing.T) {
		_, err := NewTransaction("ref-1", 1, 2, 200, 100, 50, tp)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
