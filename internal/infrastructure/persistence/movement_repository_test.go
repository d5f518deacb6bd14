package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStockMovementRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockMovementRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	otherID := uuid.New()

	appendMovement := func(t *testing.T, pid uuid.UUID, mt inventory.MovementType, occurredAt time.Time) *inventory.StockMovement {
		t.Helper()
		m, err := inventory.NewStockMovement(pid, mt, decimal.NewFromInt(3), "test", "")
		require.NoError(t, err)
		m.OccurredAt = occurredAt
		require.NoError(t, repo.Append(ctx, m))
		return m
	}

	now := time.Now()
	appendMovement(t, productID, inventory.MovementIn, now.Add(-2*time.Hour))
	latest := appendMovement(t, productID, inventory.MovementOut, now)
	appendMovement(t, otherID, inventory.MovementAdjustment, now.Add(-time.Hour))

	t.Run("lists newest first", func(t *testing.T) {
		movements, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, movements, 3)
		assert.Equal(t, latest.ID, movements[0].ID)
	})

	t.Run("filters by product", func(t *testing.T) {
		movements, err := repo.FindByProduct(ctx, productID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, movements, 2)
		for _, m := range movements {
			assert.Equal(t, productID, m.ProductID)
		}
	})

	t.Run("filters by movement type", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["movement_type"] = inventory.MovementAdjustment.String()
		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
