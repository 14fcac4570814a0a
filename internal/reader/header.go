package reader

import (
	"fmt"

	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// decodeHeader reads the fixed 0x4C-byte ShellLinkHeader starting at the
// current stream position. Rejects with ErrKindNotAShellLink when the
// size or CLSID does not match (spec.md §4.2 step 1).
func (d *Decoder) decodeHeader() (types.Header, error) {
	var h types.Header

	start, err := d.c.Tell()
	if err != nil {
		return h, d.ioErr("header", err)
	}

	body, err := d.c.ReadN(format.HeaderSize, format.HeaderSize)
	if err != nil {
		return h, types.WrapError(types.ErrKindIo, "header", start, "read 0x4C-byte header", err)
	}

	headerSize := leU32(body, format.HeaderSizeOffset)
	if headerSize != format.HeaderSize {
		return h, types.NewError(types.ErrKindNotAShellLink, "header", start,
			fmt.Sprintf("header_size = 0x%X, want 0x4C", headerSize))
	}

	clsid := format.ReadGUID(body[format.HeaderCLSIDOffset:])
	if clsid != types.ShellLinkCLSID {
		return h, types.NewError(types.ErrKindNotAShellLink, "header", start,
			fmt.Sprintf("clsid = %s, want %s", clsid, types.ShellLinkCLSID))
	}
	h.ClsID = clsid

	linkFlags, err := format.ValidateLinkFlags(leU32(body, format.HeaderLinkFlagsOffset))
	if err != nil {
		return h, types.WrapError(types.ErrKindInvalidBitPattern, "header", start+format.HeaderLinkFlagsOffset, "link_flags", err)
	}
	h.LinkFlags = linkFlags

	fileAttrs, err := format.ValidateFileAttributeFlags(leU32(body, format.HeaderFileAttributesOffset))
	if err != nil {
		return h, types.WrapError(types.ErrKindInvalidBitPattern, "header", start+format.HeaderFileAttributesOffset, "file_attributes", err)
	}
	h.FileAttributes = fileAttrs

	h.CreationTime = format.ReadFileTime(body[format.HeaderCreationTimeOffset:])
	h.AccessTime = format.ReadFileTime(body[format.HeaderAccessTimeOffset:])
	h.WriteTime = format.ReadFileTime(body[format.HeaderWriteTimeOffset:])
	h.FileSize = leU32(body, format.HeaderFileSizeOffset)
	h.IconIndex = int32(leU32(body, format.HeaderIconIndexOffset))

	showCommand, err := format.ValidateShowCommand(leU32(body, format.HeaderShowCommandOffset))
	if err != nil {
		return h, types.WrapError(types.ErrKindUnknownEnumValue, "header", start+format.HeaderShowCommandOffset, "show_command", err)
	}
	h.ShowCommand = showCommand

	h.Hotkey = types.Hotkey{
		Key:       types.HotkeyKey(body[format.HeaderHotkeyOffset]),
		Modifiers: types.HotkeyModifiers(body[format.HeaderHotkeyOffset+1]),
	}
	copy(h.Reserved[:], body[format.HeaderReservedOffset:format.HeaderReservedOffset+format.HeaderReservedSize])

	return h, nil
}

// leU32 reads a little-endian uint32 from an already-bounds-checked window.
func leU32(b []byte, off int) uint32 {
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
}

func leU16(b []byte, off int) uint16 {
	return uint16(b[off]) | uint16(b[off+1])<<8
}
