package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCollection     = errors.New("collection name is required")
	ErrNoEntityIDs         = errors.New("entity IDs list cannot be empty")
	ErrEmptyEntityID       = errors.New("entity id cannot be empty")
	ErrBatchLengthMismatch = errors.New("batch length does not match IDs list")
	ErrEmptyClientID       = errors.New("client id is required")
	ErrEmptyClientSecret   = errors.New("client secret is required")
	ErrInvalidPayload      = errors.New("entity payload must be a JSON object")
	ErrNegativeVersion     = errors.New("version cannot be negative")
)
