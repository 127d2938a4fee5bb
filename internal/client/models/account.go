// Package models defines the account records kept in the local store and the
// game and deal records returned by the deals API.
package models

import (
	"errors"
	"strings"
)

// SecuritySeparator joins the security question and answer in the stored
// field. It is not escaped: a question containing it splits early on read.
const SecuritySeparator = ":"

var ErrIncorrectSecurity = errors.New("security field must be question:answer")

// Account is a registered user keyed by Email.
type Account struct {
	Email        string
	PasswordHash string
	// Security is question and answer packed with SecuritySeparator.
	Security string
}

// PackSecurity joins a question and its answer into the stored form.
func PackSecurity(question, answer string) string {
	return question + SecuritySeparator + answer
}

// SecurityChallenge splits the stored security field on the first separator.
func (a Account) SecurityChallenge() (question, answer string, err error) {
	question, answer, ok := strings.Cut(a.Security, SecuritySeparator)
	if !ok {
		return "", "", ErrIncorrectSecurity
	}
	return question, answer, nil
}

// Accounts is the in-memory account store: a mapping from email to Account
// that remembers the order emails were first seen in.
type Accounts struct {
	byEmail map[string]Account
	order   []string
}

// NewAccounts returns an empty store.
func NewAccounts() *Accounts {
	return &Accounts{byEmail: make(map[string]Account)}
}

// Len returns the number of accounts.
func (s *Accounts) Len() int {
	return len(s.order)
}

// Get returns the account for email.
func (s *Accounts) Get(email string) (Account, bool) {
	a, ok := s.byEmail[email]
	return a, ok
}

// Has reports whether email is registered.
func (s *Accounts) Has(email string) bool {
	_, ok := s.byEmail[email]
	return ok
}

// Put inserts a or replaces the account with the same email in place.
func (s *Accounts) Put(a Account) {
	if _, ok := s.byEmail[a.Email]; !ok {
		s.order = append(s.order, a.Email)
	}
	s.byEmail[a.Email] = a
}

// All returns the accounts in store order.
func (s *Accounts) All() []Account {
	out := make([]Account, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, s.byEmail[email])
	}
	return out
}
