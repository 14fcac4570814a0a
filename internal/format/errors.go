// Package format holds wire-layout constants and pure primitive codecs
// for the shell link binary format: fixed-width integers, FILETIME,
// GUID, bitflag/enum validation, and the three string encodings. Nothing
// here touches a stream; callers (internal/cursor, internal/reader) feed
// it already-read byte windows.
package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates fewer bytes were available than required.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBoundsCheck indicates an offset or size exceeded its enclosing extent.
	ErrBoundsCheck = errors.New("format: buffer bounds exceeded")
	// ErrSanityLimit indicates a declared size exceeded a sanity limit.
	ErrSanityLimit = errors.New("format: value exceeds sanity limit")
	// ErrIntegerOverflow indicates an arithmetic operation would overflow.
	ErrIntegerOverflow = errors.New("format: integer overflow")
	// ErrUnknownExtraDataSignature indicates a signature outside the eleven known kinds.
	ErrUnknownExtraDataSignature = errors.New("format: unknown extradata signature")
	// ErrInvalidEncoding indicates bytes were not valid in the declared encoding.
	ErrInvalidEncoding = errors.New("format: invalid encoding")
)
