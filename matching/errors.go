package matching

import "errors"

var (
	// ErrOrderNotFound reports a cancel or execute for an unknown order id.
	ErrOrderNotFound = errors.New("matching: order not found")

	// ErrExceedsVolume reports an execution larger than the resting volume.
	ErrExceedsVolume = errors.New("matching: execute quantity exceeds resting volume")

	// ErrDuplicateOrder reports an add for an order id already in the book.
	ErrDuplicateOrder = errors.New("matching: duplicate order id")

	// ErrTradeNotFound reports a trade break for an unknown execution id.
	ErrTradeNotFound = errors.New("matching: trade not found")
)
