package apperrors

import "errors"

// Sentinel errors shared by the repository and handler layers. Repositories
// wrap driver errors with one of these so handlers can translate them to HTTP
// status codes with errors.Is, without importing gorm or mongo themselves.
var (
	// ErrValidation marks a request with a missing or empty required field.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a mutation by an authenticated principal who is
	// neither the owner of the target entity nor an admin.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated marks a request carrying no valid session token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConflict marks an attempt to create an entity that already exists,
	// such as registering an email twice.
	ErrConflict = errors.New("already exists")
)
