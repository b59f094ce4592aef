package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/yukikurage/todolist-api/internal/auth"
)

// FailureKind classifies why the identity provider refused a request.
type FailureKind string

const (
	FailureInvalidCredentials FailureKind = "invalid_credentials"
	FailureUserNotConfirmed   FailureKind = "user_not_confirmed"
	FailureUserNotFound       FailureKind = "user_not_found"
	FailureUsernameExists     FailureKind = "username_exists"
	FailureCodeMismatch       FailureKind = "code_mismatch"
	FailureExpiredCode        FailureKind = "expired_code"
	FailureInvalidParameter   FailureKind = "invalid_parameter"
	FailureUnknown            FailureKind = "unknown"
)

// AuthError is returned by every AuthService method on failure. Message is
// safe to show to the client; Err keeps the provider error for logs.
type AuthError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Rejected reports whether the provider answered and refused the request,
// as opposed to the request never completing.
func (e *AuthError) Rejected() bool {
	if e.Kind != FailureUnknown {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(e.Err, &apiErr)
}

// AuthResult holds the tokens issued by a successful login or refresh.
// RefreshToken is empty after a refresh.
type AuthResult struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
	ExpiresIn    int32
}

// UserInfo is the provider-side profile of the caller.
type UserInfo struct {
	Username string
	Name     string
	Contact  string
	Subject  string
}

// RegisterInput represents the information needed to create an account.
// Contact is the phone number that receives the confirmation code.
type RegisterInput struct {
	Password   string
	Name       string
	Identifier string
	Contact    string
}

// CognitoSettings identifies the user pool app client.
type CognitoSettings struct {
	UserPoolID   string
	ClientID     string
	ClientSecret string
}

const (
	attrName        = "name"
	attrPhoneNumber = "phone_number"
)

// AuthService bridges credential and token operations to Cognito.
// It holds no state besides the client and settings.
type AuthService struct {
	provider IdentityProvider
	settings CognitoSettings
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(provider IdentityProvider, settings CognitoSettings, logger *slog.Logger) *AuthService {
	return &AuthService{
		provider: provider,
		settings: settings,
		logger:   logger,
	}
}

// ComputeSecretHash returns base64(HMAC-SHA256(clientSecret, message)), the
// SECRET_HASH Cognito expects from app clients that have a secret.
func ComputeSecretHash(clientSecret, message string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *AuthService) identifierHash(identifier string) string {
	return ComputeSecretHash(s.settings.ClientSecret, identifier+s.settings.ClientID)
}

// Login exchanges an identifier and password for tokens.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	out, err := s.provider.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(s.settings.UserPoolID),
		ClientId:   aws.String(s.settings.ClientID),
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME":    identifier,
			"PASSWORD":    password,
			"SECRET_HASH": s.identifierHash(identifier),
		},
	})
	if err != nil {
		authErr := newAuthError(err, map[FailureKind]string{
			FailureInvalidCredentials: "Invalid username or password",
			FailureUserNotConfirmed:   "User account is not confirmed",
			FailureUserNotFound:       "User not found",
		})
		s.logFailure("login failed", authErr, "identifier", identifier)
		return nil, authErr
	}

	result, authErr := tokensFrom(out.AuthenticationResult)
	if authErr != nil {
		s.logFailure("login returned no tokens", authErr, "identifier", identifier)
		return nil, authErr
	}

	s.logger.Info("login succeeded", "identifier", identifier)
	return result, nil
}

// Refresh exchanges a refresh token for new access and id tokens. Refresh
// requests carry no username, so the secret hash covers the client id only.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	out, err := s.provider.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId: aws.String(s.settings.ClientID),
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
			"SECRET_HASH":   ComputeSecretHash(s.settings.ClientSecret, s.settings.ClientID),
		},
	})
	if err != nil {
		authErr := newAuthError(err, map[FailureKind]string{
			FailureInvalidCredentials: "Refresh token is invalid or expired",
		})
		s.logFailure("token refresh failed", authErr)
		return nil, authErr
	}

	result, authErr := tokensFrom(out.AuthenticationResult)
	if authErr != nil {
		s.logFailure("token refresh returned no tokens", authErr)
		return nil, authErr
	}
	result.RefreshToken = ""

	return result, nil
}

// Register creates an unconfirmed account. Cognito sends a confirmation
// code to the contact phone number.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	out, err := s.provider.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(s.settings.ClientID),
		Username:   aws.String(input.Identifier),
		Password:   aws.String(input.Password),
		SecretHash: aws.String(s.identifierHash(input.Identifier)),
		UserAttributes: []types.AttributeType{
			{Name: aws.String(attrName), Value: aws.String(input.Name)},
			{Name: aws.String(attrPhoneNumber), Value: aws.String(input.Contact)},
		},
	})
	if err != nil {
		authErr := newAuthError(err, map[FailureKind]string{
			FailureUsernameExists: "An account with this identifier already exists",
		})
		s.logFailure("sign up failed", authErr, "identifier", input.Identifier)
		return authErr
	}

	s.logger.Info("sign up succeeded",
		"identifier", input.Identifier,
		"user_sub", aws.ToString(out.UserSub),
	)
	return nil
}

// Confirm completes registration with the code delivered to the contact.
func (s *AuthService) Confirm(ctx context.Context, identifier, code string) error {
	_, err := s.provider.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(s.settings.ClientID),
		Username:         aws.String(identifier),
		ConfirmationCode: aws.String(code),
		SecretHash:       aws.String(s.identifierHash(identifier)),
	})
	if err != nil {
		authErr := newAuthError(err, map[FailureKind]string{
			FailureCodeMismatch: "Invalid confirmation code",
			FailureExpiredCode:  "Confirmation code has expired",
			FailureUserNotFound: "User not found",
		})
		s.logFailure("confirmation failed", authErr, "identifier", identifier)
		return authErr
	}
	return nil
}

// GetProfile fetches the caller's attributes. The subject is read from the
// access token itself.
func (s *AuthService) GetProfile(ctx context.Context, accessToken string) (*UserInfo, error) {
	out, err := s.provider.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		authErr := newAuthError(err, map[FailureKind]string{
			FailureInvalidCredentials: "Access token is not valid",
			FailureUserNotFound:       "User not found",
		})
		s.logFailure("get user failed", authErr)
		return nil, authErr
	}

	info := &UserInfo{
		Username: aws.ToString(out.Username),
		Subject:  auth.SubjectFromToken(accessToken),
	}
	for _, attr := range out.UserAttributes {
		switch aws.ToString(attr.Name) {
		case attrName:
			info.Name = aws.ToString(attr.Value)
		case attrPhoneNumber:
			info.Contact = aws.ToString(attr.Value)
		}
	}
	return info, nil
}

func (s *AuthService) logFailure(msg string, authErr *AuthError, attrs ...any) {
	attrs = append(attrs, "kind", authErr.Kind, "error", authErr.Err)
	if authErr.Kind == FailureUnknown {
		s.logger.Error(msg, attrs...)
		return
	}
	s.logger.Warn(msg, attrs...)
}

func tokensFrom(res *types.AuthenticationResultType) (*AuthResult, *AuthError) {
	// A challenge response (e.g. NEW_PASSWORD_REQUIRED) has no tokens.
	if res == nil {
		return nil, &AuthError{
			Kind:    FailureUnknown,
			Message: "Additional authentication challenge required",
		}
	}
	return &AuthResult{
		AccessToken:  aws.ToString(res.AccessToken),
		IDToken:      aws.ToString(res.IdToken),
		RefreshToken: aws.ToString(res.RefreshToken),
		ExpiresIn:    res.ExpiresIn,
	}, nil
}

// newAuthError classifies err and picks the client message: the entry in
// messages for its kind, or the provider's own message.
func newAuthError(err error, messages map[FailureKind]string) *AuthError {
	kind := classifyProviderError(err)

	message, ok := messages[kind]
	if !ok {
		message = providerMessage(err)
	}

	return &AuthError{Kind: kind, Message: message, Err: err}
}

func classifyProviderError(err error) FailureKind {
	var (
		notAuthorized   *types.NotAuthorizedException
		notConfirmed    *types.UserNotConfirmedException
		notFound        *types.UserNotFoundException
		usernameExists  *types.UsernameExistsException
		codeMismatch    *types.CodeMismatchException
		expiredCode     *types.ExpiredCodeException
		invalidParam    *types.InvalidParameterException
		invalidPassword *types.InvalidPasswordException
	)

	switch {
	case errors.As(err, &notAuthorized):
		return FailureInvalidCredentials
	case errors.As(err, &notConfirmed):
		return FailureUserNotConfirmed
	case errors.As(err, &notFound):
		return FailureUserNotFound
	case errors.As(err, &usernameExists):
		return FailureUsernameExists
	case errors.As(err, &codeMismatch):
		return FailureCodeMismatch
	case errors.As(err, &expiredCode):
		return FailureExpiredCode
	case errors.As(err, &invalidParam), errors.As(err, &invalidPassword):
		return FailureInvalidParameter
	default:
		return FailureUnknown
	}
}

// providerMessage returns the provider's description of an API error.
// Transport failures get a fixed message so local details do not leak.
func providerMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}
	return "Authentication service request failed"
}
