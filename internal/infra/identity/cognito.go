package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

type CognitoAPI interface {
	cip.ListUserPoolsAPIClient
	cip.ListUserPoolClientsAPIClient
	AdminCreateUser(ctx context.Context, params *cip.AdminCreateUserInput, optFns ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cip.AdminSetUserPasswordInput, optFns ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
}

type CognitoConfig struct {
	PoolName   string
	ClientName string
	// Known ids skip the name lookups.
	PoolID   string
	ClientID string
}

// Cognito signs users up as already confirmed and signs them in with the
// USER_PASSWORD_AUTH flow. Pool and client ids are resolved once by name.
type Cognito struct {
	api CognitoAPI
	cfg CognitoConfig
	log logrus.FieldLogger

	mu       sync.Mutex
	poolID   string
	clientID string
}

func NewCognito(api CognitoAPI, cfg CognitoConfig, log logrus.FieldLogger) *Cognito {
	return &Cognito{
		api:      api,
		cfg:      cfg,
		log:      log,
		poolID:   cfg.PoolID,
		clientID: cfg.ClientID,
	}
}

func (c *Cognito) SignUp(ctx context.Context, in identity.SignUpInput) error {
	poolID, err := c.userPoolID(ctx)
	if err != nil {
		return err
	}

	_, err = c.api.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId: aws.String(poolID),
		Username:   aws.String(in.Email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("given_name"), Value: aws.String(in.FirstName)},
			{Name: aws.String("family_name"), Value: aws.String(in.LastName)},
			{Name: aws.String("email"), Value: aws.String(in.Email)},
		},
		TemporaryPassword: aws.String(in.Password),
		MessageAction:     types.MessageActionTypeSuppress,
	})
	if err != nil {
		return mapCognitoError(err)
	}

	// Without a permanent password the user would be stuck in
	// FORCE_CHANGE_PASSWORD and could not sign in.
	_, err = c.api.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(poolID),
		Username:   aws.String(in.Email),
		Password:   aws.String(in.Password),
		Permanent:  true,
	})
	if err != nil {
		return mapCognitoError(err)
	}

	c.log.WithField("email", in.Email).Debug("cognito user created")
	return nil
}

// SignIn returns the IdToken of the authentication result.
func (c *Cognito) SignIn(ctx context.Context, email, password string) (string, error) {
	clientID, err := c.userPoolClientID(ctx)
	if err != nil {
		return "", err
	}

	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		ClientId: aws.String(clientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return "", mapCognitoError(err)
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		// A challenge instead of tokens; this flow cannot answer it.
		return "", identity.ErrInvalidCredentials
	}
	return aws.ToString(out.AuthenticationResult.IdToken), nil
}

func (c *Cognito) userPoolID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poolID != "" {
		return c.poolID, nil
	}

	p := cip.NewListUserPoolsPaginator(c.api, &cip.ListUserPoolsInput{}, func(o *cip.ListUserPoolsPaginatorOptions) {
		o.Limit = 60
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return "", httperr.Upstream("cognito", err)
		}
		for _, pool := range page.UserPools {
			if aws.ToString(pool.Name) == c.cfg.PoolName {
				c.poolID = aws.ToString(pool.Id)
				return c.poolID, nil
			}
		}
	}
	return "", httperr.Upstream("cognito", fmt.Errorf("user pool %q not found", c.cfg.PoolName))
}

func (c *Cognito) userPoolClientID(ctx context.Context) (string, error) {
	poolID, err := c.userPoolID(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clientID != "" {
		return c.clientID, nil
	}

	p := cip.NewListUserPoolClientsPaginator(c.api, &cip.ListUserPoolClientsInput{
		UserPoolId: aws.String(poolID),
	}, func(o *cip.ListUserPoolClientsPaginatorOptions) {
		o.Limit = 60
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return "", httperr.Upstream("cognito", err)
		}
		for _, client := range page.UserPoolClients {
			if c.cfg.ClientName == "" || aws.ToString(client.ClientName) == c.cfg.ClientName {
				c.clientID = aws.ToString(client.ClientId)
				return c.clientID, nil
			}
		}
	}
	return "", httperr.Upstream("cognito", fmt.Errorf("app client %q not found in pool %s", c.cfg.ClientName, poolID))
}

func mapCognitoError(err error) error {
	var (
		notAuthorized *types.NotAuthorizedException
		userNotFound  *types.UserNotFoundException
		userExists    *types.UsernameExistsException
		badPassword   *types.InvalidPasswordException
	)
	switch {
	case errors.As(err, &notAuthorized), errors.As(err, &userNotFound):
		return identity.ErrInvalidCredentials
	case errors.As(err, &userExists):
		return identity.ErrUserExists
	case errors.As(err, &badPassword):
		return httperr.Validation("password", "rejected by identity provider")
	default:
		return httperr.Upstream("cognito", err)
	}
}

var _ identity.Provider = (*Cognito)(nil)
