package identity

import (
	"context"

	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

var (
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
	ErrUserExists         = httperr.ErrBusiness("user_exists")
)

type SignUpInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Provider is the external identity service: it owns users and issues
// bearer tokens on password login.
type Provider interface {
	SignUp(ctx context.Context, in SignUpInput) error
	SignIn(ctx context.Context, email, password string) (token string, err error)
}

type Claims struct {
	Subject string
	Email   string
}

// TokenVerifier is implemented by providers that can check their own tokens
// in-process.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// UserRepository stores accounts for the built-in provider.
type UserRepository interface {
	// CreateUser fails with ErrUserExists when the email is taken.
	CreateUser(ctx context.Context, u *models.User) error
	// FindUserByEmail fails with ErrInvalidCredentials for an unknown email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}
