package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	product, err := NewProduct("P001", "ThinkPad X1 Carbon", "Lenovo", "X1C Gen 11", 24)
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	t.Run("creates an active product", func(t *testing.T) {
		product := newTestProduct(t)

		assert.Equal(t, "P001", product.Code)
		assert.Equal(t, 24, product.WarrantyMonths)
		assert.True(t, product.Active)
		assert.Empty(t, product.Configurations)
	})

	t.Run("rejects empty code and name", func(t *testing.T) {
		_, err := NewProduct("", "ThinkPad", "Lenovo", "", 12)
		assert.Error(t, err)

		_, err = NewProduct("P001", "", "Lenovo", "", 12)
		assert.Error(t, err)
	})

	t.Run("defaults the warranty period when zero", func(t *testing.T) {
		product, err := NewProduct("P001", "ThinkPad", "Lenovo", "", 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultWarrantyMonths, product.WarrantyMonths)
	})
}

func TestProductAddConfiguration(t *testing.T) {
	price := decimal.NewFromInt(1500)

	t.Run("assigns sequences starting at one", func(t *testing.T) {
		product := newTestProduct(t)

		first, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), price)
		require.NoError(t, err)
		second, err := product.AddConfiguration(ParseSpecification("Intel i7 / 32GB / 1TB / RTX 3050"), price)
		require.NoError(t, err)

		assert.Equal(t, 1, first.Seq)
		assert.Equal(t, 2, second.Seq)
		assert.Len(t, product.Configurations, 2)
		assert.Equal(t, 0, first.Quantity)
	})

	t.Run("rejects a duplicate specification", func(t *testing.T) {
		product := newTestProduct(t)
		_, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), price)
		require.NoError(t, err)

		_, err = product.AddConfiguration(ParseSpecification("CPU: Intel i5, RAM: 16GB, ROM: 512GB, Card: Iris Xe"), price)
		assert.Error(t, err)
	})

	t.Run("rejects an empty specification", func(t *testing.T) {
		product := newTestProduct(t)
		_, err := product.AddConfiguration(Specification{}, price)
		assert.Error(t, err)
	})

	t.Run("sequence continues past removed configurations", func(t *testing.T) {
		product := newTestProduct(t)
		_, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), price)
		require.NoError(t, err)
		_, err = product.AddConfiguration(ParseSpecification("Intel i7 / 32GB / 1TB / RTX 3050"), price)
		require.NoError(t, err)

		product.Configurations = product.Configurations[1:]

		third, err := product.AddConfiguration(ParseSpecification("Ryzen 7 / 16GB / 512GB / Radeon"), price)
		require.NoError(t, err)
		assert.Equal(t, 3, third.Seq)
	})
}

func TestProductSerialPrefix(t *testing.T) {
	product := newTestProduct(t)
	cfg, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), decimal.NewFromInt(1500))
	require.NoError(t, err)

	assert.Equal(t, "SRP0011", product.SerialPrefix(cfg))
}

func TestProductFindConfigurationBySpec(t *testing.T) {
	product := newTestProduct(t)
	_, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), decimal.NewFromInt(1200))
	require.NoError(t, err)
	cfg, err := product.AddConfiguration(ParseSpecification("Intel i7 / 32GB / 1TB / RTX 3050"), decimal.NewFromInt(1800))
	require.NoError(t, err)

	t.Run("matches on a full specification", func(t *testing.T) {
		found := product.FindConfigurationBySpec(ParseSpecification("Intel i7 / 32GB / 1TB / RTX 3050"))
		require.NotNil(t, found)
		assert.Equal(t, cfg.ID, found.ID)
	})

	t.Run("matches on a partial specification", func(t *testing.T) {
		found := product.FindConfigurationBySpec(ParseSpecification("RAM: 32GB"))
		require.NotNil(t, found)
		assert.Equal(t, cfg.ID, found.ID)
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		assert.Nil(t, product.FindConfigurationBySpec(ParseSpecification("RAM: 64GB")))
	})

	t.Run("an empty specification matches nothing", func(t *testing.T) {
		assert.Nil(t, product.FindConfigurationBySpec(Specification{}))
	})
}

func TestConfigurationAdjustQuantity(t *testing.T) {
	newConfig := func(t *testing.T) *ProductConfiguration {
		product := newTestProduct(t)
		cfg, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), decimal.NewFromInt(1500))
		require.NoError(t, err)
		return cfg
	}

	t.Run("credits and debits", func(t *testing.T) {
		cfg := newConfig(t)

		require.NoError(t, cfg.AdjustQuantity(5))
		assert.Equal(t, 5, cfg.Quantity)

		require.NoError(t, cfg.AdjustQuantity(-3))
		assert.Equal(t, 2, cfg.Quantity)
	})

	t.Run("rejects a debit below zero and leaves the quantity untouched", func(t *testing.T) {
		cfg := newConfig(t)
		require.NoError(t, cfg.AdjustQuantity(2))

		err := cfg.AdjustQuantity(-3)

		assert.Error(t, err)
		assert.Equal(t, 2, cfg.Quantity)
	})

	t.Run("debit to exactly zero is allowed", func(t *testing.T) {
		cfg := newConfig(t)
		require.NoError(t, cfg.AdjustQuantity(2))
		require.NoError(t, cfg.AdjustQuantity(-2))
		assert.Equal(t, 0, cfg.Quantity)
	})
}

func TestProductActivation(t *testing.T) {
	t.Run("deactivate then reactivate", func(t *testing.T) {
		product := newTestProduct(t)

		require.NoError(t, product.Deactivate())
		assert.False(t, product.Active)

		product.Activate()
		assert.True(t, product.Active)
	})

	t.Run("deactivating twice fails", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.Deactivate())
		assert.Error(t, product.Deactivate())
	})
}

func TestProductTotalQuantity(t *testing.T) {
	product := newTestProduct(t)
	cfg1, err := product.AddConfiguration(ParseSpecification("Intel i5 / 16GB / 512GB / Iris Xe"), decimal.NewFromInt(1200))
	require.NoError(t, err)
	cfg2, err := product.AddConfiguration(ParseSpecification("Intel i7 / 32GB / 1TB / RTX 3050"), decimal.NewFromInt(1800))
	require.NoError(t, err)

	require.NoError(t, product.GetConfiguration(cfg1.ID).AdjustQuantity(3))
	require.NoError(t, product.GetConfiguration(cfg2.ID).AdjustQuantity(4))

	assert.Equal(t, 7, product.TotalQuantity())
}
