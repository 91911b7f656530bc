package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgUnknownBackend     = "unknown storage backend"
	ErrMsgStorageUnavailable = "storage unavailable"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"
	ErrMsgInvalidTiers   = "tier table does not cover levels 1-99"

	// Gacha errors
	ErrMsgEmptyPool = "gacha pool is empty"
)

// Common domain errors
// Core operations (collect, toggle, grant, claim) never fail; these errors
// come from the adapters around them.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrUnknownBackend     = errors.New(ErrMsgUnknownBackend)
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
	ErrInvalidTiers   = errors.New(ErrMsgInvalidTiers)

	ErrEmptyPool = errors.New(ErrMsgEmptyPool)
)
