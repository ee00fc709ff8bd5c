package usecase

import "errors"

// ErrForbidden is returned when the caller's role does not allow the
// operation. Scope mismatches (another dealership, another customer) are
// reported as the entity's not-found error instead.
var ErrForbidden = errors.New("operation not allowed for this role")
