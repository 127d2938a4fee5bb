package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/dealhunter/internal/client/validation"
	"github.com/dmitrijs2005/dealhunter/internal/common"
	"github.com/dmitrijs2005/dealhunter/internal/errutil"
)

// ResetPassword walks the user through the security-question reset. Every
// outcome other than an input error is reported to the user and yields nil.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "What's your email address?", a.out)
	if err != nil {
		return err
	}

	challenge, err := a.authService.BeginReset(ctx, email)
	switch {
	case err == nil:
	case isPartialStore(err):
		a.reportStoreError(ctx, err)
		a.println("We can't change passwords until the user database is fixed.")
		return nil
	case errors.Is(err, common.ErrNotFound):
		a.println("We couldn't find that email in our system. Want to register instead?")
		return nil
	case errors.Is(err, common.ErrStoreCorrupt):
		a.println("Hmm, the security question for that account looks damaged. We can't reset it.")
		errutil.LogError(ctx, a.logger, "security field unreadable", err)
		return nil
	default:
		a.reportStoreError(ctx, err)
		return nil
	}

	a.printf("Here's your security question: %s\n", challenge.Question())
	answer, err := getSimpleText(a.reader, "What's your answer?", a.out)
	if err != nil {
		return err
	}
	if err := challenge.Answer(answer); err != nil {
		a.println("That answer doesn't match our records. Give it another shot!")
		a.logger.Warn(ctx, "security answer mismatch", "email", email)
		return nil
	}

	password, err := a.promptStrongPassword(
		"Great! Choose a new password:",
		"Let's make that password a bit stronger. It should be "+validation.PasswordRules+".",
		"Try another password:",
	)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := challenge.Complete(ctx, password); err != nil {
		a.printf("Oh no! We couldn't save your information: %v\n", err)
		errutil.LogError(ctx, a.logger, "password reset not saved", err)
		return nil
	}

	a.println("Password updated! You're back in the game.")
	return nil
}
