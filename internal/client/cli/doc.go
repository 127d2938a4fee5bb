// Package cli provides the interactive Game Deal Hunter console session.
//
// It wires configuration, the account store, the deals API client and the
// services, then runs a numbered menu on stdin/stdout:
//
//	1. Log in and start hunting    bounded login, then a search loop until "quit"
//	2. Join the hunt (Register)    create an account with a security question
//	3. Forgot your password?       answer the security question, set a new password
//	4. Call it a day (Exit)
//
// Invalid choices re-prompt; EOF on stdin ends the session like choice 4.
// Running out of login attempts ends the session with
// common.ErrLoginAttemptsExhausted, which the entry point turns into a
// non-zero exit status.
//
// The session is started via App.Run(ctx), which blocks until the user exits.
package cli
