package vault

import "errors"

var (
	// ErrVaultClosed is returned by every operation called after Close.
	ErrVaultClosed = errors.New("vault is closed")

	// ErrInvalidPassword is returned by Open when the supplied password does
	// not open the store's password validator entry, including when no
	// password was supplied for a password-protected store.
	ErrInvalidPassword = errors.New("invalid vault password")
)
