package bats

import "errors"

var (
	// ErrRecordTooShort reports a record shorter than its declared message type.
	ErrRecordTooShort = errors.New("bats: record too short")

	// ErrBadNumericField reports a non-digit character inside a numeric field.
	ErrBadNumericField = errors.New("bats: non-numeric character in numeric field")

	// ErrBadReferenceField reports an invalid character inside a base-36 field.
	ErrBadReferenceField = errors.New("bats: invalid character in reference field")

	// ErrUnknownMsgType reports an unrecognized or mismatched type discriminant.
	ErrUnknownMsgType = errors.New("bats: unrecognized message type")

	// ErrBadAuctionType reports an auction type outside the O/C/H/I set.
	ErrBadAuctionType = errors.New("bats: invalid auction type")
)
