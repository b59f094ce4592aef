package testutil

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

var errNotStubbed = errors.New("testutil: provider call not stubbed")

// FakeIdentityProvider stands in for the Cognito client. Each method calls
// the matching func field, or fails when it is nil. Calls counts every
// invocation.
type FakeIdentityProvider struct {
	AdminInitiateAuthFunc func(*cognitoidentityprovider.AdminInitiateAuthInput) (*cognitoidentityprovider.AdminInitiateAuthOutput, error)
	InitiateAuthFunc      func(*cognitoidentityprovider.InitiateAuthInput) (*cognitoidentityprovider.InitiateAuthOutput, error)
	SignUpFunc            func(*cognitoidentityprovider.SignUpInput) (*cognitoidentityprovider.SignUpOutput, error)
	ConfirmSignUpFunc     func(*cognitoidentityprovider.ConfirmSignUpInput) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	GetUserFunc           func(*cognitoidentityprovider.GetUserInput) (*cognitoidentityprovider.GetUserOutput, error)

	calls atomic.Int32
}

// Calls returns how many provider methods were invoked.
func (f *FakeIdentityProvider) Calls() int {
	return int(f.calls.Load())
}

func (f *FakeIdentityProvider) AdminInitiateAuth(_ context.Context, in *cognitoidentityprovider.AdminInitiateAuthInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error) {
	f.calls.Add(1)
	if f.AdminInitiateAuthFunc == nil {
		return nil, errNotStubbed
	}
	return f.AdminInitiateAuthFunc(in)
}

func (f *FakeIdentityProvider) InitiateAuth(_ context.Context, in *cognitoidentityprovider.InitiateAuthInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
	f.calls.Add(1)
	if f.InitiateAuthFunc == nil {
		return nil, errNotStubbed
	}
	return f.InitiateAuthFunc(in)
}

func (f *FakeIdentityProvider) SignUp(_ context.Context, in *cognitoidentityprovider.SignUpInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error) {
	f.calls.Add(1)
	if f.SignUpFunc == nil {
		return nil, errNotStubbed
	}
	return f.SignUpFunc(in)
}

func (f *FakeIdentityProvider) ConfirmSignUp(_ context.Context, in *cognitoidentityprovider.ConfirmSignUpInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error) {
	f.calls.Add(1)
	if f.ConfirmSignUpFunc == nil {
		return nil, errNotStubbed
	}
	return f.ConfirmSignUpFunc(in)
}

func (f *FakeIdentityProvider) GetUser(_ context.Context, in *cognitoidentityprovider.GetUserInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GetUserOutput, error) {
	f.calls.Add(1)
	if f.GetUserFunc == nil {
		return nil, errNotStubbed
	}
	return f.GetUserFunc(in)
}
