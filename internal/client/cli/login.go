package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/dealhunter/internal/client/services"
	"github.com/dmitrijs2005/dealhunter/internal/common"
)

// Login asks for credentials until they match or the attempt budget is
// spent, then runs the deal search loop for the logged-in user.
//
// When every attempt fails the returned error matches
// common.ErrLoginAttemptsExhausted. A store that cannot be read is reported
// and yields nil; a partly read one is reported and used.
func (a *App) Login(ctx context.Context) error {
	session, err := a.authService.BeginLogin(ctx)
	if err != nil {
		a.reportStoreError(ctx, err)
		if !isPartialStore(err) {
			return nil
		}
	}

	for {
		email, err := getSimpleText(a.reader, "What's your email?", a.out)
		if err != nil {
			return err
		}
		password, err := getPassword(a.reader, "And your super-secret password?", a.out)
		if err != nil {
			return err
		}

		user, err := session.Attempt(email, password)
		common.WipeByteArray(password)
		if err == nil {
			a.println("Welcome back, game hunter!")
			a.userEmail = user
			a.logger.Info(ctx, "login succeeded", "email", user)
			return a.Hunt(ctx)
		}

		var attemptErr *services.RemainingAttemptsError
		if !errors.As(err, &attemptErr) {
			return err
		}
		a.printf("Oops! That didn't work. You have %d more tries.\n", attemptErr.Remaining)
		a.logger.Warn(ctx, "login failed", "remaining", attemptErr.Remaining)

		if errors.Is(err, common.ErrLoginAttemptsExhausted) {
			a.println("Sorry, we couldn't log you in. Maybe try again later?")
			return err
		}
	}
}

// Hunt runs the search loop until the user types quit, which logs them out.
func (a *App) Hunt(ctx context.Context) error {
	a.println("Time to find some game deals!")
	for {
		title, err := getSimpleText(a.reader, "\nWhat game are you looking for? (or type 'quit' to log out):", a.out)
		if err != nil {
			return err
		}
		if strings.ToLower(title) == "quit" {
			a.println("Thanks for hunting with us. Come back soon!")
			a.logger.Info(ctx, "logged out", "email", a.userEmail)
			a.userEmail = ""
			return nil
		}

		deals, err := a.searchDeals(ctx, title)
		if err != nil {
			return err
		}
		a.displayDeals(deals)
	}
}
