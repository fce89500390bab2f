package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotion(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("creates an active promotion", func(t *testing.T) {
		promo, err := NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, start, end)

		require.NoError(t, err)
		assert.True(t, promo.Active)
		assert.Nil(t, promo.ProductID)
	})

	t.Run("validates the discount range", func(t *testing.T) {
		_, err := NewPromotion("Summer Sale", "", decimal.Zero, nil, start, end)
		assert.Error(t, err)

		_, err = NewPromotion("Summer Sale", "", decimal.NewFromInt(101), nil, start, end)
		assert.Error(t, err)

		_, err = NewPromotion("Summer Sale", "", decimal.NewFromInt(100), nil, start, end)
		assert.NoError(t, err)
	})

	t.Run("rejects an inverted period", func(t *testing.T) {
		_, err := NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, end, start)
		assert.Error(t, err)

		_, err = NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, start, start)
		assert.Error(t, err)
	})
}

func TestPromotionIsCurrent(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	promo, err := NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, start, end)
	require.NoError(t, err)

	assert.True(t, promo.IsCurrent(start))
	assert.True(t, promo.IsCurrent(end))
	assert.True(t, promo.IsCurrent(start.AddDate(0, 0, 15)))
	assert.False(t, promo.IsCurrent(start.AddDate(0, 0, -1)))
	assert.False(t, promo.IsCurrent(end.AddDate(0, 0, 1)))

	promo.Deactivate()
	assert.False(t, promo.IsCurrent(start.AddDate(0, 0, 15)))
}

func TestPromotionAppliesTo(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	during := start.AddDate(0, 0, 10)
	productID := uuid.New()

	t.Run("storewide promotions cover every product", func(t *testing.T) {
		promo, err := NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, start, end)
		require.NoError(t, err)

		assert.True(t, promo.AppliesTo(productID, during))
		assert.True(t, promo.AppliesTo(uuid.New(), during))
	})

	t.Run("scoped promotions cover only their product", func(t *testing.T) {
		promo, err := NewPromotion("X1 Launch", "", decimal.NewFromInt(15), &productID, start, end)
		require.NoError(t, err)

		assert.True(t, promo.AppliesTo(productID, during))
		assert.False(t, promo.AppliesTo(uuid.New(), during))
	})

	t.Run("nothing applies outside the period", func(t *testing.T) {
		promo, err := NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, start, end)
		require.NoError(t, err)

		assert.False(t, promo.AppliesTo(productID, end.AddDate(0, 1, 0)))
	})
}

func TestPromotionApply(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	promo, err := NewPromotion("Summer Sale", "", decimal.NewFromInt(10), nil, start, end)
	require.NoError(t, err)

	assert.True(t, promo.Apply(decimal.NewFromInt(1500)).Equal(decimal.NewFromInt(1350)))

	third, err := NewPromotion("Odd", "", decimal.NewFromFloat(33.33), nil, start, end)
	require.NoError(t, err)
	assert.True(t, third.Apply(decimal.NewFromInt(999)).Equal(decimal.NewFromFloat(666.03)))
}
