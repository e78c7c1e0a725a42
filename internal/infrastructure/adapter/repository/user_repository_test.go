package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/model"
)

func TestLockForUpdate(t *testing.T) {
	t.Run("balance read holds a row lock for the transaction", func(t *testing.T) {
		db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
		require.NoError(t, err)

		var userModel model.User
		stmt := lockForUpdate(db).Limit(1).Find(&userModel, 1).Statement

		assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
	})
}
