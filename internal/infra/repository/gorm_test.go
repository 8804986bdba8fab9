package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

// setupTestDB opens a private in-memory SQLite database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func TestTableGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTableGormRepository(setupTestDB(t))

	minOrder := 300
	require.NoError(t, repo.PutTable(ctx, &models.Table{ID: 2, Number: 20, Places: 2}))
	require.NoError(t, repo.PutTable(ctx, &models.Table{ID: 1, Number: 10, Places: 4, IsVip: true, MinOrder: &minOrder}))

	got, err := repo.GetTable(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Number)
	assert.True(t, got.IsVip)
	require.NotNil(t, got.MinOrder)
	assert.Equal(t, 300, *got.MinOrder)

	plain, err := repo.GetTable(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, plain.MinOrder)

	_, err = repo.GetTable(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tables, err := repo.ListTables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, 2)
}

func TestTableGormRepositoryPutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewTableGormRepository(setupTestDB(t))

	minOrder := 10
	require.NoError(t, repo.PutTable(ctx, &models.Table{ID: 1, Number: 10, Places: 4, MinOrder: &minOrder}))
	require.NoError(t, repo.PutTable(ctx, &models.Table{ID: 1, Number: 15, Places: 6}))

	got, err := repo.GetTable(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Number)
	assert.Equal(t, 6, got.Places)
	assert.Nil(t, got.MinOrder)
}

func TestReservationGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationGormRepository(setupTestDB(t))

	res := &models.Reservation{
		ID:            "9b2f7c1e-0000-4000-8000-000000000001",
		TableNumber:   10,
		ClientName:    "Ann",
		PhoneNumber:   "+100",
		Date:          "2024-05-01",
		SlotTimeStart: "18:00",
		SlotTimeEnd:   "19:30",
	}
	require.NoError(t, repo.PutReservation(ctx, res))

	err := repo.PutReservation(ctx, res)
	assert.True(t, httperr.IsUpstream(err))

	got, err := repo.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *res, got[0])
}

func TestUserGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(setupTestDB(t))

	u := &models.User{Email: "ann@example.com", FirstName: "Ann", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)

	err := repo.CreateUser(ctx, &models.User{Email: "ann@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, identity.ErrUserExists)

	got, err := repo.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)

	_, err = repo.FindUserByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}
