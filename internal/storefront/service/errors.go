package service

import "errors"

var (
	// ErrEmailExists reports a signup against an email already registered in
	// that namespace.
	ErrEmailExists = errors.New("service: email already exists")

	// ErrAuthFailed covers both an unknown email and a wrong password. The
	// two cases are deliberately indistinguishable so callers cannot probe
	// which emails have accounts.
	ErrAuthFailed = errors.New("service: authentication failed")

	// ErrAccountBanned reports a login against an administratively disabled
	// user account.
	ErrAccountBanned = errors.New("service: account banned")

	// ErrNotFound reports a lookup of a non-existent or soft-deleted record.
	ErrNotFound = errors.New("service: not found")
)
