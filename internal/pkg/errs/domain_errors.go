package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Dish errors
	ErrDishNotFound = errors.New("dish not found")

	// Suggestion errors
	ErrSuggestionNotFound = errors.New("suggestion not found")

	// Vote errors
	ErrAlreadyVoted = errors.New("already voted for this suggestion")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
