package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/infra/repository"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

func setupLocal(t *testing.T) *Local {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewLocal(repository.NewUserGormRepository(db), "test-secret", time.Hour)
}

var ann = identity.SignUpInput{
	Email:     "Ann@Example.com",
	FirstName: "Ann",
	LastName:  "Lee",
	Password:  "longenough123!",
}

func TestLocalSignUpSignInVerify(t *testing.T) {
	ctx := context.Background()
	l := setupLocal(t)

	require.NoError(t, l.SignUp(ctx, ann))

	token, err := l.SignIn(ctx, "ann@example.com", ann.Password)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := l.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.NotEmpty(t, claims.Subject)
}

func TestLocalSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	l := setupLocal(t)

	require.NoError(t, l.SignUp(ctx, ann))
	assert.ErrorIs(t, l.SignUp(ctx, ann), identity.ErrUserExists)
}

func TestLocalSignInWrongPasswordOrUser(t *testing.T) {
	ctx := context.Background()
	l := setupLocal(t)
	require.NoError(t, l.SignUp(ctx, ann))

	_, err := l.SignIn(ctx, "ann@example.com", "wrongpass123!")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = l.SignIn(ctx, "bob@example.com", ann.Password)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestLocalVerifyRejectsExpiredAndForeignTokens(t *testing.T) {
	ctx := context.Background()
	l := setupLocal(t)
	require.NoError(t, l.SignUp(ctx, ann))

	token, err := l.SignIn(ctx, ann.Email, ann.Password)
	require.NoError(t, err)

	l.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = l.Verify(ctx, token)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	other := NewLocal(l.users, "another-secret", time.Hour)
	_, err = other.Verify(ctx, token)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = l.Verify(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestLocalWithMemoryUsers(t *testing.T) {
	ctx := context.Background()
	l := NewLocal(repository.NewUserMemoryRepository(), "test-secret", time.Hour)

	require.NoError(t, l.SignUp(ctx, ann))
	assert.ErrorIs(t, l.SignUp(ctx, ann), identity.ErrUserExists)

	token, err := l.SignIn(ctx, "ANN@example.com", ann.Password)
	require.NoError(t, err)

	claims, err := l.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
}
