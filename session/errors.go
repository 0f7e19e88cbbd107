package session

import "errors"

var (
	// ErrNilTicker rejects New without a ticker.
	ErrNilTicker = errors.New("session: ticker is nil")

	// ErrNilParams rejects New without search params.
	ErrNilParams = errors.New("session: params are nil")

	// ErrUnknownOp rejects a command with an unrecognized Op.
	ErrUnknownOp = errors.New("session: unknown command")

	// ErrNoEndpoints means no component holds two distinct cells.
	ErrNoEndpoints = errors.New("session: no component with two cells")
)
