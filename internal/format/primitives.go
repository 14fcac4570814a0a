package format

import (
	"encoding/binary"
	"fmt"

	"github.com/jpare/shelllink/pkg/types"
)

// ReadGUID interprets b[0:16] per the GUID "packet representation".
func ReadGUID(b []byte) types.GUID {
	var g types.GUID
	copy(g[:], b[:16])
	return g
}

// PutGUID writes g's packet representation into b[0:16].
func PutGUID(b []byte, g types.GUID) {
	copy(b[:16], g[:])
}

// ReadFileTime reads a little-endian u64 tick count.
func ReadFileTime(b []byte) types.FileTime {
	return types.FileTime(binary.LittleEndian.Uint64(b))
}

// PutFileTime writes a little-endian u64 tick count.
func PutFileTime(b []byte, f types.FileTime) {
	binary.LittleEndian.PutUint64(b, uint64(f))
}

// PutFILETIME is an alias kept for call sites that spell the field by its
// MS-SHLLINK wire name.
func PutFILETIME(b []byte, f types.FileTime) { PutFileTime(b, f) }

// PutU16 writes a little-endian uint16.
func PutU16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutU32 writes a little-endian uint32.
func PutU32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PutU64 writes a little-endian uint64.
func PutU64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// ValidateLinkFlags rejects any bit outside the 27 named bits.
func ValidateLinkFlags(raw uint32) (types.LinkFlags, error) {
	if raw&^uint32(types.AllLinkFlags) != 0 {
		return 0, fmt.Errorf("%w: link_flags has undefined bits set: 0x%08X",
			ErrBoundsCheck, raw&^uint32(types.AllLinkFlags))
	}
	return types.LinkFlags(raw), nil
}

// ValidateFileAttributeFlags rejects undefined bits and the two
// must-be-zero reserved bits.
func ValidateFileAttributeFlags(raw uint32) (types.FileAttributeFlags, error) {
	if raw&^uint32(types.AllFileAttributeFlags) != 0 {
		return 0, fmt.Errorf("%w: file_attributes has undefined bits set: 0x%08X",
			ErrBoundsCheck, raw&^uint32(types.AllFileAttributeFlags))
	}
	f := types.FileAttributeFlags(raw)
	if f&types.ReservedFileAttributeFlags != 0 {
		return 0, fmt.Errorf("%w: file_attributes reserved bits must be zero: 0x%08X",
			ErrBoundsCheck, raw)
	}
	return f, nil
}

// ValidateShowCommand accepts only the three defined values.
func ValidateShowCommand(raw uint32) (types.ShowCommand, error) {
	switch types.ShowCommand(raw) {
	case types.ShowNormal, types.ShowMaximized, types.ShowMinNoActive:
		return types.ShowCommand(raw), nil
	default:
		return 0, fmt.Errorf("%w: show_command: 0x%08X", ErrBoundsCheck, raw)
	}
}

// ValidateDriveType accepts only the seven defined values.
func ValidateDriveType(raw uint32) (types.DriveType, error) {
	if raw > uint32(types.DriveRamdisk) {
		return 0, fmt.Errorf("%w: drive_type: %d", ErrBoundsCheck, raw)
	}
	return types.DriveType(raw), nil
}

// ValidateCommonNetworkRelativeLinkFlags rejects undefined bits.
func ValidateCommonNetworkRelativeLinkFlags(raw uint32) (types.CommonNetworkRelativeLinkFlags, error) {
	if raw&^uint32(types.AllCommonNetworkRelativeLinkFlags) != 0 {
		return 0, fmt.Errorf("%w: common_network_relative_link flags has undefined bits set: 0x%08X",
			ErrBoundsCheck, raw)
	}
	return types.CommonNetworkRelativeLinkFlags(raw), nil
}

// ValidateLinkInfoFlags rejects undefined bits.
func ValidateLinkInfoFlags(raw uint32) (types.LinkInfoFlags, error) {
	if raw&^uint32(types.AllLinkInfoFlags) != 0 {
		return 0, fmt.Errorf("%w: link_info flags has undefined bits set: 0x%08X",
			ErrBoundsCheck, raw)
	}
	return types.LinkInfoFlags(raw), nil
}

// ValidateNetworkProviderType accepts only the 41 named values.
func ValidateNetworkProviderType(raw uint32) (types.NetworkProviderType, error) {
	t := types.NetworkProviderType(raw)
	if !t.Known() {
		return 0, fmt.Errorf("%w: network_provider_type: 0x%X", ErrBoundsCheck, raw)
	}
	return t, nil
}
