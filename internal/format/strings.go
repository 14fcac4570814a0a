package format

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DefaultCodePage is used whenever a caller-supplied ReadOptions/
// WriteOptions leaves the code page unset, matching the teacher's
// Windows-1252 default for compressed registry key names.
var DefaultCodePage encoding.Encoding = charmap.Windows1252

// codePageOrDefault returns cp, or DefaultCodePage when cp is nil.
func codePageOrDefault(cp encoding.Encoding) encoding.Encoding {
	if cp == nil {
		return DefaultCodePage
	}
	return cp
}

// DecodeCodePageString decodes b as 8-bit text in cp (Windows-1252 when
// cp is nil).
func DecodeCodePageString(b []byte, cp encoding.Encoding) (string, error) {
	out, err := codePageOrDefault(cp).NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: code page decode: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}

// EncodeCodePageString encodes s as 8-bit text in cp.
func EncodeCodePageString(s string, cp encoding.Encoding) ([]byte, error) {
	out, err := codePageOrDefault(cp).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: code page encode: %v", ErrInvalidEncoding, err)
	}
	return out, nil
}

// DecodeUTF16LE decodes b (a whole number of 2-byte code units) as
// UTF-16LE text.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: utf16le buffer has odd length %d", ErrInvalidEncoding, len(b))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return string(utf16.Decode(units)), nil
}

// EncodeUTF16LE encodes s as UTF-16LE bytes.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		out[2*i] = byte(u)
		out[2*i+1] = byte(u >> 8)
	}
	return out
}

// TrimNUL returns s truncated at its first embedded NUL rune, if any.
func TrimNUL(s string) string {
	for i, r := range s {
		if r == 0 {
			return s[:i]
		}
	}
	return s
}

// DecodeFixedSizeString decodes exactly len(b) bytes under encoding
// cp/unicode, trimming at the first NUL. When unicode is true, b is
// interpreted as UTF-16LE; otherwise as 8-bit text in cp.
func DecodeFixedSizeString(b []byte, unicode bool, cp encoding.Encoding) (string, error) {
	var s string
	var err error
	if unicode {
		s, err = DecodeUTF16LE(b)
	} else {
		s, err = DecodeCodePageString(b, cp)
	}
	if err != nil {
		return "", err
	}
	return TrimNUL(s), nil
}

// DecodeNullTerminatedASCII finds the first 0x00 byte in b and decodes
// the bytes preceding it in cp. Returns the decoded string and the
// number of bytes consumed including the terminator.
func DecodeNullTerminatedASCII(b []byte, cp encoding.Encoding) (s string, consumed int, err error) {
	for i, c := range b {
		if c == 0 {
			s, err = DecodeCodePageString(b[:i], cp)
			return s, i + 1, err
		}
	}
	return "", 0, fmt.Errorf("%w: null-terminated string has no terminator", ErrTruncated)
}

// DecodeNullTerminatedUTF16 finds the first zero 16-bit code unit in b
// and decodes the units preceding it. Returns the decoded string and the
// number of bytes consumed including the 2-byte terminator.
func DecodeNullTerminatedUTF16(b []byte) (s string, consumed int, err error) {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			s, err = DecodeUTF16LE(b[:i])
			return s, i + 2, err
		}
	}
	return "", 0, fmt.Errorf("%w: null-terminated utf-16 string has no terminator", ErrTruncated)
}
