// Package repository implements the record-store contract on MySQL.
// Each repository wraps *sql.DB, speaks plain SQL and maps driver
// errors to the sentinel errors the engine understands.  Repositories
// are injected handles; nothing in this package holds global state.
package repository

import "errors"

// ErrEmailExists is returned when registering an admin with an email
// that is already taken.  Handlers should translate this into an HTTP
// 409 response.
var ErrEmailExists = errors.New("email already exists")
