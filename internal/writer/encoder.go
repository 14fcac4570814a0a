// Package writer emits the limited subset of the .lnk format this
// module supports writing: the fixed header plus the five StringData
// fields. LinkInfo and ExtraData round-tripping are out of scope
// (spec.md §9 "Emission scope").
package writer

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// Encode serializes link's Header and StringData into a byte slice
// ready to be handed to a FileWriter or MemWriter. link.IDList,
// link.LinkInfo, and link.ExtraData are ignored.
func Encode(link *types.ShellLink, opts types.WriteOptions) ([]byte, error) {
	var buf bytes.Buffer

	if err := encodeHeader(&buf, link.Header); err != nil {
		return nil, err
	}
	if err := encodeStringData(&buf, link.Header.LinkFlags, link.StringData, opts); err != nil {
		return nil, err
	}

	// A minimal valid .lnk must still terminate its (empty) ExtraData
	// section.
	var term [4]byte
	buf.Write(term[:])

	return buf.Bytes(), nil
}

func encodeHeader(buf *bytes.Buffer, h types.Header) error {
	var b [format.HeaderSize]byte

	format.PutU32(b[format.HeaderSizeOffset:], format.HeaderSize)
	format.PutGUID(b[format.HeaderCLSIDOffset:], types.ShellLinkCLSID)
	format.PutU32(b[format.HeaderLinkFlagsOffset:], uint32(h.LinkFlags))
	format.PutU32(b[format.HeaderFileAttributesOffset:], uint32(h.FileAttributes))
	format.PutFILETIME(b[format.HeaderCreationTimeOffset:], h.CreationTime)
	format.PutFILETIME(b[format.HeaderAccessTimeOffset:], h.AccessTime)
	format.PutFILETIME(b[format.HeaderWriteTimeOffset:], h.WriteTime)
	format.PutU32(b[format.HeaderFileSizeOffset:], h.FileSize)
	format.PutU32(b[format.HeaderIconIndexOffset:], uint32(h.IconIndex))
	format.PutU32(b[format.HeaderShowCommandOffset:], uint32(h.ShowCommand))
	b[format.HeaderHotkeyOffset] = byte(h.Hotkey.Key)
	b[format.HeaderHotkeyOffset+1] = byte(h.Hotkey.Modifiers)
	copy(b[format.HeaderReservedOffset:format.HeaderReservedOffset+format.HeaderReservedSize], h.Reserved[:])

	_, err := buf.Write(b[:])
	if err != nil {
		return fmt.Errorf("writer: header: %w", err)
	}
	return nil
}

func encodeStringData(buf *bytes.Buffer, flags types.LinkFlags, sd types.StringData, opts types.WriteOptions) error {
	unicode := flags.Has(types.IsUnicode)

	write := func(present bool, s string) error {
		if !present {
			return nil
		}
		return encodeSizedString(buf, s, unicode, opts.CodePage)
	}

	if err := write(sd.HasName, sd.Name); err != nil {
		return err
	}
	if err := write(sd.HasRelativePath, sd.RelativePath); err != nil {
		return err
	}
	if err := write(sd.HasWorkingDir, sd.WorkingDir); err != nil {
		return err
	}
	if err := write(sd.HasArguments, sd.CommandLineArguments); err != nil {
		return err
	}
	if err := write(sd.HasIconLocation, sd.IconLocation); err != nil {
		return err
	}
	return nil
}

func encodeSizedString(buf *bytes.Buffer, s string, unicode bool, cp encoding.Encoding) error {
	var raw []byte
	var count int
	if unicode {
		raw = format.EncodeUTF16LE(s)
		count = len(raw) / 2
	} else {
		enc, err := format.EncodeCodePageString(s, cp)
		if err != nil {
			return fmt.Errorf("writer: string_data: %w", err)
		}
		raw = enc
		count = len(raw)
	}

	var countBuf [2]byte
	format.PutU16(countBuf[:], uint16(count))
	if _, err := buf.Write(countBuf[:]); err != nil {
		return fmt.Errorf("writer: string_data: count: %w", err)
	}
	if _, err := buf.Write(raw); err != nil {
		return fmt.Errorf("writer: string_data: chars: %w", err)
	}
	return nil
}
