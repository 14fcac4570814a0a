package integration

import (
	"bytes"
	"encoding/binary"

	"github.com/jpare/shelllink/pkg/types"
)

// linkInfoFixture describes the substructures to embed in a hand-built
// LinkInfo block. Only the fields exercised by tests/integration's
// scenarios are supported; this is not a general-purpose encoder (that
// job belongs to internal/writer, which deliberately doesn't cover
// LinkInfo at all per spec.md §9 "Emission scope").
type linkInfoFixture struct {
	volumeLabel      string // "" omits VolumeID unless localBasePath is set (then the label is empty)
	localBasePath    string // "" omits the local base path offset
	netName          string // "" omits CommonNetworkRelativeLink
	deviceName       string
	commonPathSuffix string
}

// build lays out the fixed prefix (short form, no Unicode offsets) then
// the payload strings in the order VolumeID, local_base_path, CNRL,
// common_path_suffix, computing each offset relative to the start of
// the structure as spec.md §4.4 requires.
func (f linkInfoFixture) build() []byte {
	var flags uint32
	if f.volumeLabel != "" || f.localBasePath != "" {
		flags |= 0x1 // VolumeIDAndLocalBasePath
	}
	if f.netName != "" {
		flags |= 0x2 // CommonNetworkRelativeLinkAndPathSuffix
	}

	const prefixSize = 28
	var volumeID, cnrl []byte
	if flags&0x1 != 0 {
		// VolumeIDAndLocalBasePath gates both offsets together: a
		// conformant LinkInfo carries a VolumeID whenever it carries a
		// local base path, per the shared flag bit.
		volumeID = buildVolumeID(f.volumeLabel)
	}
	var localBasePathBytes []byte
	if f.localBasePath != "" {
		localBasePathBytes = nullTerminatedASCII(f.localBasePath)
	}
	if f.netName != "" {
		cnrl = buildCNRL(f.netName, f.deviceName)
	}
	suffixBytes := nullTerminatedASCII(f.commonPathSuffix)

	var volumeIDOffset, localBasePathOffset, cnrlOffset, suffixOffset uint32
	cursor := uint32(prefixSize)
	if len(volumeID) > 0 {
		volumeIDOffset = cursor
		cursor += uint32(len(volumeID))
	}
	if len(localBasePathBytes) > 0 {
		localBasePathOffset = cursor
		cursor += uint32(len(localBasePathBytes))
	}
	if len(cnrl) > 0 {
		cnrlOffset = cursor
		cursor += uint32(len(cnrl))
	}
	suffixOffset = cursor
	cursor += uint32(len(suffixBytes))

	var buf bytes.Buffer
	putU32 := func(v uint32) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf.Write(tmp[:])
	}
	putU32(cursor)      // link_info_size
	putU32(prefixSize)  // link_info_header_size (< 0x24: no unicode offsets)
	putU32(flags)
	putU32(volumeIDOffset)
	putU32(localBasePathOffset)
	putU32(cnrlOffset)
	putU32(suffixOffset)

	buf.Write(volumeID)
	buf.Write(localBasePathBytes)
	buf.Write(cnrl)
	buf.Write(suffixBytes)

	return buf.Bytes()
}

func buildVolumeID(label string) []byte {
	labelBytes := nullTerminatedASCII(label)
	const prefixSize = 16
	var buf bytes.Buffer
	putU32 := func(v uint32) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf.Write(tmp[:])
	}
	putU32(uint32(prefixSize + len(labelBytes)))
	putU32(uint32(types.DriveFixed))
	putU32(0xDEADBEEF) // drive_serial_number
	putU32(prefixSize) // volume_label_offset (ANSI, immediately after the prefix)
	buf.Write(labelBytes)
	return buf.Bytes()
}

func buildCNRL(netName, deviceName string) []byte {
	const prefixSize = 20
	netNameBytes := nullTerminatedASCII(netName)
	var deviceNameBytes []byte
	var flags uint32
	var deviceNameOffset uint32
	cursor := uint32(prefixSize)
	netNameOffset := cursor
	cursor += uint32(len(netNameBytes))
	if deviceName != "" {
		flags |= 0x1 // ValidDevice
		deviceNameBytes = nullTerminatedASCII(deviceName)
		deviceNameOffset = cursor
		cursor += uint32(len(deviceNameBytes))
	}

	var buf bytes.Buffer
	putU32 := func(v uint32) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf.Write(tmp[:])
	}
	putU32(cursor) // size
	putU32(flags)
	putU32(netNameOffset)
	putU32(deviceNameOffset)
	putU32(0) // network_provider_type (ValidNetType clear, ignored)
	buf.Write(netNameBytes)
	buf.Write(deviceNameBytes)
	return buf.Bytes()
}

// withLinkInfo appends a LinkInfo block built from f to b.
func (b *headerBuilder) withLinkInfo(f linkInfoFixture) *headerBuilder {
	b.buf.Write(f.build())
	return b
}
