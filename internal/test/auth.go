package test

import (
	"context"
	"errors"
	"fmt"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// HasherStub implements auth.PasswordHasher with deterministic hashes.
type HasherStub struct {
	HashErr    error
	CompareErr error
}

// Hash prefixes the password so tests can assert on the stored value.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return "hash:" + password, nil
}

// Compare accepts only hashes produced by Hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareErr != nil {
		return h.CompareErr
	}
	if hash != "hash:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// StrategyStub implements auth.Strategy with reversible tokens.
type StrategyStub struct {
	IssueErr error
	ParseErr error
	UserID   int64
}

// IssueToken encodes the user id into the token.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return fmt.Sprintf("token-%d", userID), nil
}

// ParseToken returns the configured user id.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseErr != nil {
		return 0, s.ParseErr
	}
	var id int64
	if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
		return s.UserID, nil
	}
	return id, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string { return "stub" }

// TokenParserStub implements middleware.TokenParser.
type TokenParserStub struct {
	UserID int64
	Err    error
}

// ParseToken returns the configured id or error.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.UserID, nil
}

// UserProviderStub implements middleware.UserProvider.
type UserProviderStub struct {
	User *model.User
	Err  error
}

// UserByID returns the configured user or error.
func (s UserProviderStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: id, Role: model.RoleUser}, nil
}

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)
}

// Register delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return "token-1", nil
}

// Authenticate delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token-1", nil
}

// ParseToken delegates to provided function or accepts every token.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// UserByID delegates to provided function or returns a plain user.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleUser}, nil
}
