package auth

import (
	"context"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

type fakeProvider struct {
	signUps []identity.SignUpInput
	signIns int
}

func (f *fakeProvider) SignUp(_ context.Context, in identity.SignUpInput) error {
	for _, u := range f.signUps {
		if u.Email == in.Email {
			return identity.ErrUserExists
		}
	}
	f.signUps = append(f.signUps, in)
	return nil
}

func (f *fakeProvider) SignIn(_ context.Context, email, password string) (string, error) {
	f.signIns++
	for _, u := range f.signUps {
		if u.Email == email && u.Password == password {
			return "token-for-" + email, nil
		}
	}
	return "", identity.ErrInvalidCredentials
}

func TestSignUpValidation(t *testing.T) {
	valid := identity.SignUpInput{
		Email:     "ann@example.com",
		FirstName: "Ann",
		LastName:  "Lee",
		Password:  "longenough123!",
	}

	tests := []struct {
		name   string
		mutate func(in *identity.SignUpInput)
		field  string
	}{
		{"short password", func(in *identity.SignUpInput) { in.Password = "short1!" }, "password"},
		{"no symbol", func(in *identity.SignUpInput) { in.Password = "longenough1234" }, "password"},
		{"no digit", func(in *identity.SignUpInput) { in.Password = "longenough!!!!" }, "password"},
		{"bad email", func(in *identity.SignUpInput) { in.Email = "ann@example" }, "email"},
		{"blank first name", func(in *identity.SignUpInput) { in.FirstName = "  " }, "firstName"},
		{"missing last name", func(in *identity.SignUpInput) { in.LastName = "" }, "lastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := logtest.NewNullLogger()
			p := &fakeProvider{}
			in := valid
			tt.mutate(&in)

			err := NewSignUp(p, log).Execute(context.Background(), in)

			var ve httperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, p.signUps)
		})
	}
}

func TestSignUpThenSignIn(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	p := &fakeProvider{}
	ctx := context.Background()

	err := NewSignUp(p, log).Execute(ctx, identity.SignUpInput{
		Email:     " ann@example.com ",
		FirstName: "Ann",
		LastName:  "Lee",
		Password:  "longenough123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", p.signUps[0].Email)

	token, err := NewSignIn(p).Execute(ctx, "ann@example.com", "longenough123!")
	require.NoError(t, err)
	assert.Equal(t, "token-for-ann@example.com", token)

	_, err = NewSignIn(p).Execute(ctx, "ann@example.com", "wrongenough123!")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestSignUpDuplicateSurfacesProviderError(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	p := &fakeProvider{}
	in := identity.SignUpInput{Email: "ann@example.com", FirstName: "Ann", LastName: "Lee", Password: "longenough123!"}

	require.NoError(t, NewSignUp(p, log).Execute(context.Background(), in))
	assert.ErrorIs(t, NewSignUp(p, log).Execute(context.Background(), in), identity.ErrUserExists)
}

func TestSignInRejectsWeakPasswordWithoutCallingProvider(t *testing.T) {
	p := &fakeProvider{}

	_, err := NewSignIn(p).Execute(context.Background(), "ann@example.com", "short1!")

	assert.True(t, httperr.IsValidation(err))
	assert.Zero(t, p.signIns)
}
