// Package common defines shared sentinel errors used across the SIGA
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Caller errors (malformed or incomplete input).
	ErrorInvalidRequest = errors.New("invalid request")

	// Authentication failure. Deliberately generic: unknown username and
	// wrong password must be indistinguishable to the caller.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Infrastructure failure talking to the database or blob storage.
	// Never conflated with ErrorInvalidCredentials.
	ErrorStoreUnavailable = errors.New("store unavailable")
)
