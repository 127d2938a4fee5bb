package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/dealhunter/internal/client/services"
	"github.com/dmitrijs2005/dealhunter/internal/client/validation"
	"github.com/dmitrijs2005/dealhunter/internal/common"
	"github.com/dmitrijs2005/dealhunter/internal/errutil"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects an email, a strong password and a security question,
// re-prompting until the email and password are valid, then creates the
// account.
//
// An email that is already registered and a store that cannot be written are
// reported to the user and yield nil. Input errors are returned unchanged.
func (a *App) Register(ctx context.Context) error {
	a.println("\n🎮 Welcome to Game Deal Hunter! Let's get you registered. 🎮")

	email, err := getSimpleText(a.reader, "What's your email address?", a.out)
	if err != nil {
		return err
	}
	for !validation.ValidateEmail(email) {
		a.println("Hmm, that doesn't look like a valid email. Let's try again.")
		if email, err = getSimpleText(a.reader, "What's your email address?", a.out); err != nil {
			return err
		}
	}

	password, err := a.promptStrongPassword(
		"Choose a strong password (our little secret):",
		"Your password needs a bit more oomph! Make sure it's "+validation.PasswordRules+".",
		"Let's try another password:",
	)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	question, err := getSimpleText(a.reader, "Give us a security question (in case you forget your password):", a.out)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "And what's the answer to that question?", a.out)
	if err != nil {
		return err
	}

	err = a.authService.Register(ctx, services.RegisterRequest{
		Email:    email,
		Password: password,
		Question: question,
		Answer:   answer,
	})
	switch {
	case err == nil:
		a.println("Welcome aboard! You're all set to hunt for amazing game deals.")
	case errors.Is(err, common.ErrAlreadyRegistered):
		a.println("Looks like you're already part of the club! Try logging in instead.")
	case isPartialStore(err):
		a.reportStoreError(ctx, err)
		a.println("We left the user database untouched, so your account was not saved.")
	case errors.Is(err, common.ErrStorage), errors.Is(err, common.ErrStoreCorrupt):
		a.printf("Oh no! We couldn't save your information: %v\n", err)
		errutil.LogError(ctx, a.logger, "registration not saved", err)
	default:
		a.printf("Something went wrong: %v\n", err)
		errutil.LogError(ctx, a.logger, "registration failed", err)
	}
	return nil
}

// promptStrongPassword asks for a password until it satisfies the strength
// rules, printing hint after each weak attempt and using retry as the
// follow-up prompt.
func (a *App) promptStrongPassword(prompt, hint, retry string) ([]byte, error) {
	password, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	for !validation.ValidatePassword(string(password)) {
		common.WipeByteArray(password)
		a.println(hint)
		if password, err = getPassword(a.reader, retry, a.out); err != nil {
			return nil, err
		}
	}
	return password, nil
}
