package auth

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/validators"
)

type SignUp struct {
	provider identity.Provider
	log      logrus.FieldLogger
}

func NewSignUp(provider identity.Provider, log logrus.FieldLogger) *SignUp {
	return &SignUp{provider: provider, log: log}
}

// Execute registers a confirmed user. Nothing reaches the provider unless
// the input is well formed.
func (uc *SignUp) Execute(ctx context.Context, in identity.SignUpInput) error {
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.FirstName == "" {
		return httperr.Validation("firstName", "required")
	}
	if in.LastName == "" {
		return httperr.Validation("lastName", "required")
	}
	if err := checkCredentials(in.Email, in.Password); err != nil {
		return err
	}

	if err := uc.provider.SignUp(ctx, in); err != nil {
		return err
	}

	uc.log.WithField("email", in.Email).Info("user signed up")
	return nil
}

func checkCredentials(email, password string) error {
	if !validators.IsEmailValid(email) {
		return httperr.Validation("email", "invalid format")
	}
	if !validators.IsPasswordStrong(password) {
		return httperr.Validation("password", "too weak")
	}
	return nil
}
