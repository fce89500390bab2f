package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/laptechvn/backend/internal/domain/partner"
	"github.com/laptechvn/backend/internal/domain/shared"
)

func setupSupplierTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&partner.Supplier{}))
	return db
}

func seedSupplier(t *testing.T, repo *GormSupplierRepository, name, email string) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier(name, "Contact", "0901234567", email, "Hanoi", "0312345678")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), supplier))
	return supplier
}

func TestGormSupplierRepository_SaveAndFindByID(t *testing.T) {
	db := setupSupplierTestDB(t)
	repo := NewGormSupplierRepository(db)
	ctx := context.Background()

	t.Run("round-trips a supplier", func(t *testing.T) {
		supplier := seedSupplier(t, repo, "FPT Trading", "sales@fpt.example.com")

		found, err := repo.FindByID(ctx, supplier.ID)

		require.NoError(t, err)
		assert.Equal(t, supplier.ID, found.ID)
		assert.Equal(t, "FPT Trading", found.Name)
		assert.Equal(t, "sales@fpt.example.com", found.Email)
		assert.True(t, found.Active)
	})

	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("save persists updates", func(t *testing.T) {
		supplier := seedSupplier(t, repo, "Digiworld", "dw@example.com")
		require.NoError(t, supplier.Update("Digiworld Corp", "Contact", "0901234567", "dw@example.com", "HCMC", "0312345678"))
		require.NoError(t, repo.Save(ctx, supplier))

		found, err := repo.FindByID(ctx, supplier.ID)

		require.NoError(t, err)
		assert.Equal(t, "Digiworld Corp", found.Name)
		assert.Equal(t, "HCMC", found.Address)
	})
}

func TestGormSupplierRepository_FindAll(t *testing.T) {
	// Search filtering uses ILIKE and is exercised against Postgres through
	// the sqlmock suites; only the filter map and pagination run here.
	db := setupSupplierTestDB(t)
	repo := NewGormSupplierRepository(db)
	ctx := context.Background()

	seedSupplier(t, repo, "Supplier A", "a@suppliers.example.com")
	seedSupplier(t, repo, "Supplier B", "b@suppliers.example.com")
	inactive := seedSupplier(t, repo, "Supplier C", "c@suppliers.example.com")
	require.NoError(t, inactive.Deactivate())
	require.NoError(t, repo.Save(ctx, inactive))

	t.Run("lists every supplier", func(t *testing.T) {
		suppliers, err := repo.FindAll(ctx, shared.Filter{})

		require.NoError(t, err)
		assert.Len(t, suppliers, 3)
	})

	t.Run("filters on the active flag", func(t *testing.T) {
		suppliers, err := repo.FindAll(ctx, shared.Filter{Filters: map[string]any{"active": true}})

		require.NoError(t, err)
		assert.Len(t, suppliers, 2)
	})

	t.Run("paginates", func(t *testing.T) {
		page, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := repo.FindAll(ctx, shared.Filter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}

func TestGormSupplierRepository_Count(t *testing.T) {
	db := setupSupplierTestDB(t)
	repo := NewGormSupplierRepository(db)
	ctx := context.Background()

	seedSupplier(t, repo, "Supplier A", "a@suppliers.example.com")
	seedSupplier(t, repo, "Supplier B", "b@suppliers.example.com")

	count, err := repo.Count(ctx, shared.Filter{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormSupplierRepository_ExistsByEmail(t *testing.T) {
	db := setupSupplierTestDB(t)
	repo := NewGormSupplierRepository(db)
	ctx := context.Background()

	seedSupplier(t, repo, "Supplier A", "a@suppliers.example.com")

	t.Run("reports a taken email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "a@suppliers.example.com")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("empty email never exists", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}
