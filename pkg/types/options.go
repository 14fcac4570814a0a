package types

import "golang.org/x/text/encoding"

// ReadOptions configures a decode pass.
type ReadOptions struct {
	// DefaultCodePage is used for any 8-bit string field when the header's
	// IS_UNICODE flag is clear. Windows-1252 is used when nil.
	DefaultCodePage encoding.Encoding

	// Lenient relaxes ExtraData handling: an unrecognized signature is
	// skipped instead of rejected. A block_size below 4 ends the ExtraData
	// stream whether or not Lenient is set. All other errors remain fatal.
	Lenient bool
}

// WriteOptions configures the limited emission path (header + the five
// StringData fields only; see SPEC_FULL.md §4.8).
type WriteOptions struct {
	// CodePage is used to encode 8-bit string fields when IS_UNICODE is
	// clear in the header flags being emitted. Windows-1252 when nil.
	CodePage encoding.Encoding
}
