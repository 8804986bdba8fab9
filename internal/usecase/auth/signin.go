package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
)

type SignIn struct {
	provider identity.Provider
}

func NewSignIn(provider identity.Provider) *SignIn {
	return &SignIn{provider: provider}
}

// Execute exchanges credentials for an access token. Passwords are held to
// the sign-up rules so malformed attempts never reach the provider.
func (uc *SignIn) Execute(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if err := checkCredentials(email, password); err != nil {
		return "", err
	}
	return uc.provider.SignIn(ctx, email, password)
}
