// Package integration exercises the full decode pipeline end-to-end
// against hand-built .lnk byte fixtures, covering the scenarios named in
// spec.md §8 that unit tests closer to each decoder don't reach on their
// own (a real IDList + LinkInfo + StringData combination, UNC link
// targets, and the header/string emission round trip).
package integration

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/jpare/shelllink/pkg/types"
)

var shellLinkCLSIDBytes = []byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// headerBuilder accumulates a .lnk byte stream field by field, in wire
// order, the same way a hand-rolled fixture in the teacher's
// internal/format/nk_test.go style is built up.
type headerBuilder struct {
	buf bytes.Buffer
}

func newFixture(flags types.LinkFlags, attrs types.FileAttributeFlags, created, accessed, written time.Time, showCmd types.ShowCommand) *headerBuilder {
	b := &headerBuilder{}
	b.putU32(0x4C)
	b.buf.Write(shellLinkCLSIDBytes)
	b.putU32(uint32(flags))
	b.putU32(uint32(attrs))
	b.putFileTime(created)
	b.putFileTime(accessed)
	b.putFileTime(written)
	b.putU32(0) // file_size
	b.putU32(0) // icon_index (as unsigned)
	b.putU32(uint32(showCmd))
	b.buf.WriteByte(0) // hotkey key
	b.buf.WriteByte(0) // hotkey modifiers
	b.buf.Write(make([]byte, 10)) // reserved
	return b
}

func (b *headerBuilder) putU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
}

func (b *headerBuilder) putU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
}

func (b *headerBuilder) putU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf.Write(tmp[:])
}

func (b *headerBuilder) putFileTime(t time.Time) {
	if t.IsZero() {
		b.putU64(0)
		return
	}
	b.putU64(uint64(types.FileTimeFromTime(t)))
}

// emptyIDList appends an empty-but-present IDList: a u16 length of 2 followed
// by a single size==0 terminator ItemID.
func (b *headerBuilder) emptyIDList() *headerBuilder {
	b.putU16(2)
	b.putU16(0)
	return b
}

// sizedStringUnicode appends a SizedString in UTF-16LE.
func (b *headerBuilder) sizedStringUnicode(s string) *headerBuilder {
	units := utf16Encode(s)
	b.putU16(uint16(len(units)))
	for _, u := range units {
		b.putU16(u)
	}
	return b
}

func utf16Encode(s string) []uint16 {
	var out []uint16
	for _, r := range s {
		if r < 0x10000 {
			out = append(out, uint16(r))
			continue
		}
		r -= 0x10000
		out = append(out, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
	}
	return out
}

// nullTerminatedASCII writes s followed by a single NUL byte; used for
// LinkInfo's non-Unicode string fields.
func nullTerminatedASCII(s string) []byte {
	return append([]byte(s), 0)
}

func nullTerminatedUTF16(s string) []byte {
	var buf bytes.Buffer
	for _, u := range utf16Encode(s) {
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], u)
		buf.Write(tmp[:])
	}
	buf.Write([]byte{0, 0})
	return buf.Bytes()
}

// extraDataTerminator appends the four-byte zero terminator that ends a
// (possibly empty) ExtraData section.
func (b *headerBuilder) extraDataTerminator() *headerBuilder {
	b.putU32(0)
	return b
}

func (b *headerBuilder) bytes() []byte { return b.buf.Bytes() }
