package postgres

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	categories := NewCategoryRepository(db)

	t.Run("commits on success", func(t *testing.T) {
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.NewCategoryRepository().Create(ctx, &entity.Category{Name: "Commit", IsActive: true})
		})
		require.NoError(t, err)

		exists, err := categories.ExistsByName(ctx, "commit", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewCategoryRepository().Create(ctx, &entity.Category{Name: "Rollback", IsActive: true}); err != nil {
				return err
			}

			return boom
		})
		require.ErrorIs(t, err, boom)

		exists, err := categories.ExistsByName(ctx, "rollback", uuid.Nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
