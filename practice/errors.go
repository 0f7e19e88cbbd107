package practice

import "errors"

var (
	// ErrInvalidSelection rejects a proposal that differs from the canonical
	// choice. It is recoverable: the search state is untouched.
	ErrInvalidSelection = errors.New("practice: invalid selection")

	// ErrNotActive rejects proposals before Begin or after the search ended.
	ErrNotActive = errors.New("practice: no active exercise")

	// ErrNilTicker rejects New without a ticker.
	ErrNilTicker = errors.New("practice: ticker is nil")
)
