package utils

import "github.com/google/uuid"

// ValidateUUID rejects malformed ids before they reach a query.
func ValidateUUID(value, label string) error {
	if _, err := uuid.Parse(value); err != nil {
		return NewValidationError("invalid %s", label)
	}
	return nil
}

// NewAnonymousToken mints the browser token used to dedupe university
// request votes.
func NewAnonymousToken() string {
	return uuid.NewString()
}
