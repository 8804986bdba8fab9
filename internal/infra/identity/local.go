package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

const localIssuer = "table-booking"

// Local keeps its own users and issues HS256 tokens. It stands in for
// Cognito when running outside AWS.
type Local struct {
	users  identity.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewLocal(users identity.UserRepository, secret string, ttl time.Duration) *Local {
	return &Local{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}
}

type localClaims struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	jwt.RegisteredClaims
}

func (l *Local) SignUp(ctx context.Context, in identity.SignUpInput) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        strings.ToLower(in.Email),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hashed),
	}
	return l.users.CreateUser(ctx, &user)
}

func (l *Local) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := l.users.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", identity.ErrInvalidCredentials
	}

	now := l.now()
	claims := localClaims{
		Email:      user.Email,
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    localIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(l.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(l.secret)
}

// Verify checks signature, issuer and expiry of a token from SignIn.
func (l *Local) Verify(_ context.Context, raw string) (*identity.Claims, error) {
	var claims localClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return l.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(l.now),
	)
	if err != nil {
		return nil, identity.ErrInvalidCredentials
	}

	return &identity.Claims{Subject: claims.Subject, Email: claims.Email}, nil
}

var (
	_ identity.Provider      = (*Local)(nil)
	_ identity.TokenVerifier = (*Local)(nil)
)
