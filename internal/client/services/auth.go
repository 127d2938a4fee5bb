// Package services contains application services for the Game Deal Hunter
// client. This file defines the authentication service: registration,
// bounded-attempt login and security-question password reset over the local
// account store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
	"github.com/dmitrijs2005/dealhunter/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/dealhunter/internal/client/validation"
	"github.com/dmitrijs2005/dealhunter/internal/common"
	"github.com/dmitrijs2005/dealhunter/internal/errutil"
	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// MaxLoginAttempts bounds the credential tries of one login.
const MaxLoginAttempts = 5

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, hash string) bool
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account unless the email is already present.
//   - BeginLogin: load the store once and hand out a bounded LoginSession.
//   - BeginReset: start a security-question challenge for an email.
//   - AccountCount: number of registered accounts.
//
// Every operation reloads the store from disk; mutations rewrite it. When the
// store is only partly readable, reads continue over the accounts that were
// read and return a *PartialStoreError next to their result, while mutations
// fail with it and leave the file alone.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	BeginLogin(ctx context.Context) (*LoginSession, error)
	BeginReset(ctx context.Context, email string) (*ResetChallenge, error)
	AccountCount(ctx context.Context) (int, error)
}

// RegisterRequest carries the input collected by the registration prompts.
type RegisterRequest struct {
	Email    string
	Password []byte
	Question string
	Answer   string
}

// RemainingAttemptsError is returned by a failed login attempt.
type RemainingAttemptsError struct {
	Remaining int
}

func (e *RemainingAttemptsError) Error() string {
	return fmt.Sprintf("invalid email or password, %d attempts remaining", e.Remaining)
}

func (e *RemainingAttemptsError) Unwrap() []error {
	if e.Remaining <= 0 {
		return []error{common.ErrUnauthorized, common.ErrLoginAttemptsExhausted}
	}
	return []error{common.ErrUnauthorized}
}

// PartialStoreError reports an account store that could only be read up to
// a damaged record. It matches common.ErrStoreCorrupt.
type PartialStoreError struct {
	Err error
}

func (e *PartialStoreError) Error() string {
	return "account store only partly readable: " + e.Err.Error()
}

func (e *PartialStoreError) Unwrap() error {
	return e.Err
}

type authService struct {
	repo   accounts.Repository
	hasher PasswordHasher
	logger logging.Logger
}

// NewAuthService constructs an AuthService over the given store and hasher.
func NewAuthService(repo accounts.Repository, hasher PasswordHasher, logger logging.Logger) AuthService {
	return &authService{repo: repo, hasher: hasher, logger: logger}
}

// load reads the store. A partially parsed store comes back together with a
// *PartialStoreError; any other failure returns no accounts.
func (a *authService) load(ctx context.Context) (*models.Accounts, error) {
	accs, err := a.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStoreCorrupt) && accs != nil {
			errutil.LogWarn(ctx, a.logger, "account store partially read", err)
			return accs, &PartialStoreError{Err: err}
		}
		return nil, err
	}
	return accs, nil
}

// Register validates the request, refuses an email that is already present
// and otherwise stores a new account with a fresh hash. A partly readable
// store is never rewritten.
func (a *authService) Register(ctx context.Context, req RegisterRequest) error {
	if !validation.ValidateEmail(req.Email) {
		return fmt.Errorf("%w: invalid email %q", common.ErrValidation, req.Email)
	}
	if !validation.ValidatePassword(string(req.Password)) {
		return fmt.Errorf("%w: weak password", common.ErrValidation)
	}

	accs, err := a.load(ctx)
	if err != nil {
		return err
	}
	if accs.Has(req.Email) {
		return fmt.Errorf("%w: %s", common.ErrAlreadyRegistered, req.Email)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	accs.Put(models.Account{
		Email:        req.Email,
		PasswordHash: hash,
		Security:     models.PackSecurity(req.Question, req.Answer),
	})
	if err := a.repo.Save(ctx, accs); err != nil {
		return err
	}

	a.logger.Info(ctx, "account registered", "email", req.Email)
	return nil
}

// BeginLogin loads the store once for a sequence of at most
// MaxLoginAttempts credential checks. Over a partly readable store the
// session is returned together with the *PartialStoreError.
func (a *authService) BeginLogin(ctx context.Context) (*LoginSession, error) {
	accs, err := a.load(ctx)
	if accs == nil {
		return nil, err
	}
	return &LoginSession{accounts: accs, hasher: a.hasher, remaining: MaxLoginAttempts}, err
}

// BeginReset looks up email and returns its security challenge. A reset
// rewrites the store, so a partly readable store is refused.
func (a *authService) BeginReset(ctx context.Context, email string) (*ResetChallenge, error) {
	accs, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	acc, ok := accs.Get(email)
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, email)
	}

	question, answer, err := acc.SecurityChallenge()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrStoreCorrupt, email, err)
	}

	return &ResetChallenge{
		service:  a,
		accounts: accs,
		email:    email,
		question: question,
		answer:   answer,
	}, nil
}

// AccountCount returns the number of stored accounts. Over a partly
// readable store it counts what was read and returns the *PartialStoreError.
func (a *authService) AccountCount(ctx context.Context) (int, error) {
	accs, err := a.load(ctx)
	if accs == nil {
		return 0, err
	}
	return accs.Len(), err
}

// LoginSession is one login: a store snapshot and an attempt budget.
type LoginSession struct {
	accounts  *models.Accounts
	hasher    PasswordHasher
	remaining int
}

// Remaining returns the attempts left.
func (s *LoginSession) Remaining() int {
	return s.remaining
}

// Attempt checks one email/password pair. On success it returns the email.
// On failure it returns a *RemainingAttemptsError; once the budget is spent
// the error also matches common.ErrLoginAttemptsExhausted and every further
// call fails the same way.
func (s *LoginSession) Attempt(email string, password []byte) (string, error) {
	if s.remaining <= 0 {
		return "", &RemainingAttemptsError{Remaining: 0}
	}

	if acc, ok := s.accounts.Get(email); ok && s.hasher.Verify(password, acc.PasswordHash) {
		return email, nil
	}

	s.remaining--
	return "", &RemainingAttemptsError{Remaining: s.remaining}
}

// ResetChallenge is an in-progress password reset for one account.
type ResetChallenge struct {
	service  *authService
	accounts *models.Accounts
	email    string
	question string
	answer   string
	passed   bool
}

// Question returns the stored security question.
func (c *ResetChallenge) Question() string {
	return c.question
}

// Answer compares candidate with the stored answer ignoring case.
func (c *ResetChallenge) Answer(candidate string) error {
	if strings.ToLower(candidate) != strings.ToLower(c.answer) {
		return fmt.Errorf("%w: security answer does not match", common.ErrUnauthorized)
	}
	c.passed = true
	return nil
}

// Complete stores a hash of newPassword for the account. The challenge must
// have been answered first.
func (c *ResetChallenge) Complete(ctx context.Context, newPassword []byte) error {
	if !c.passed {
		return fmt.Errorf("%w: security question not answered", common.ErrUnauthorized)
	}
	if !validation.ValidatePassword(string(newPassword)) {
		return fmt.Errorf("%w: weak password", common.ErrValidation)
	}

	hash, err := c.service.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	acc, _ := c.accounts.Get(c.email)
	acc.PasswordHash = hash
	c.accounts.Put(acc)

	if err := c.service.repo.Save(ctx, c.accounts); err != nil {
		return err
	}

	c.service.logger.Info(ctx, "password reset", "email", c.email)
	return nil
}
