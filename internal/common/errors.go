// Package common defines shared sentinel errors and small helpers used across
// the Game Deal Hunter client layers. Callers should use errors.Is to match
// these values; infrastructure errors are wrapped around them.
package common

import "errors"

var (
	// Input errors. Recovered by re-prompting.
	ErrValidation = errors.New("validation error")

	// Account lookup errors.
	ErrNotFound          = errors.New("not found")
	ErrAlreadyRegistered = errors.New("already registered")

	// Credential errors.
	ErrUnauthorized           = errors.New("unauthorized")
	ErrLoginAttemptsExhausted = errors.New("login attempts exhausted")

	// Account store errors.
	ErrStorage      = errors.New("storage error")
	ErrStoreCorrupt = errors.New("account store corrupt")

	// Deals API errors.
	ErrExternalService = errors.New("external service error")
)
