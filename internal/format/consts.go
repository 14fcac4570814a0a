package format

// Header layout (MS-SHLLINK §2.1). Field widths, fixed offsets.
const (
	HeaderSize       = 0x4C
	HeaderSizeOffset = 0
	HeaderCLSIDOffset = 4
	HeaderLinkFlagsOffset = 20
	HeaderFileAttributesOffset = 24
	HeaderCreationTimeOffset = 28
	HeaderAccessTimeOffset = 36
	HeaderWriteTimeOffset = 44
	HeaderFileSizeOffset = 52
	HeaderIconIndexOffset = 56
	HeaderShowCommandOffset = 60
	HeaderHotkeyOffset = 64 // 2 bytes: key, modifiers
	HeaderReservedOffset = 66
	HeaderReservedSize = 10
)

// ItemID layout (MS-SHLLINK §2.2.2).
const (
	ItemIDSizeFieldSize = 2
	// ItemIDMinNonTerminalSize is the minimum size value a non-terminal
	// ItemID may declare: the size field itself plus at least one data byte.
	ItemIDMinNonTerminalSize = 3
)

// LinkInfo fixed-prefix layout (MS-SHLLINK §2.3).
const (
	LinkInfoSizeOffset             = 0
	LinkInfoHeaderSizeOffset       = 4
	LinkInfoFlagsOffset            = 8
	LinkInfoVolumeIDOffsetOffset   = 12
	LinkInfoLocalBasePathOffsetOffset = 16
	LinkInfoCommonNetworkRelativeLinkOffsetOffset = 20
	LinkInfoCommonPathSuffixOffsetOffset          = 24
	LinkInfoLocalBasePathOffsetUnicodeOffset      = 28
	LinkInfoCommonPathSuffixOffsetUnicodeOffset   = 32

	// LinkInfoHeaderSizeWithUnicode is the minimum LinkInfoHeaderSize at
	// which the two Unicode-variant offset fields are present.
	LinkInfoHeaderSizeWithUnicode = 0x24
	// LinkInfoFixedPrefixSizeShort is the byte length of the fixed prefix
	// when LinkInfoHeaderSize < 0x24 (no Unicode offsets).
	LinkInfoFixedPrefixSizeShort = 28
	// LinkInfoFixedPrefixSizeLong is the byte length when Unicode offsets
	// are present.
	LinkInfoFixedPrefixSizeLong = 36
)

// VolumeID layout (MS-SHLLINK §2.3.1).
const (
	VolumeIDSizeOffset              = 0
	VolumeIDDriveTypeOffset         = 4
	VolumeIDDriveSerialNumberOffset = 8
	VolumeIDVolumeLabelOffsetOffset = 12
	// VolumeIDUnicodeSentinelOffset is the sentinel value of
	// VolumeLabelOffset that indicates an additional Unicode label offset
	// field follows the 16-byte fixed prefix (at byte offset 0x10).
	VolumeIDUnicodeSentinelOffset  = 0x14
	VolumeIDMinSize                = 0x10
)

// CommonNetworkRelativeLink layout (MS-SHLLINK §2.3.2).
const (
	CNRLSizeOffset                = 0
	CNRLFlagsOffset               = 4
	CNRLNetNameOffsetOffset       = 8
	CNRLDeviceNameOffsetOffset    = 12
	CNRLNetworkProviderTypeOffset = 16
	CNRLNetNameOffsetUnicodeOffset    = 20
	CNRLDeviceNameOffsetUnicodeOffset = 24
	CNRLMinSize                   = 0x14
	// CNRLUnicodeThreshold: Unicode-variant offsets are present iff
	// net_name_offset exceeds this value.
	CNRLUnicodeThreshold = 0x14
)

// ExtraData block-header layout (MS-SHLLINK §2.5): every block starts
// with a u32 block_size then a u32 signature.
const (
	ExtraDataBlockHeaderSize = 8
	// ExtraDataMinTerminatorSize is the block_size value below which the
	// ExtraData stream is considered terminated, in strict and lenient
	// mode alike.
	ExtraDataMinTerminatorSize = 4
)

// Fixed total sizes (including the 8-byte block header) for the
// fixed-size ExtraData block kinds, pinned from original_source/src/
// extradata/*.rs (see SPEC_FULL.md §3).
const (
	EnvironmentVariableDataBlockSize = 0x314
	ConsoleDataBlockSize             = 0xCC
	TrackerDataBlockSize             = 0x60
	ConsoleFEDataBlockSize           = 0x0C
	SpecialFolderDataBlockSize       = 0x10
	DarwinDataBlockSize              = 0x314
	IconEnvironmentDataBlockSize     = 0x314
	KnownFolderDataBlockSize         = 0x1C
)

// Minimum total sizes for the variable-size ExtraData block kinds.
const (
	ShimDataBlockMinSize                = 0x88
	PropertyStoreDataBlockMinSize       = 0x0C
	VistaAndAboveIDListDataBlockMinSize = 0x0A
)

// ConsoleDataBlock body field offsets (relative to body start, i.e. 8
// bytes after the block start).
const (
	ConsoleFillAttributesOffset      = 0
	ConsolePopupFillAttributesOffset = 2
	ConsoleScreenBufferSizeXOffset   = 4
	ConsoleScreenBufferSizeYOffset   = 6
	ConsoleWindowSizeXOffset         = 8
	ConsoleWindowSizeYOffset         = 10
	ConsoleWindowOriginXOffset       = 12
	ConsoleWindowOriginYOffset       = 14
	ConsoleFontSizeOffset            = 24
	ConsoleFontFamilyOffset          = 28
	ConsoleFontWeightOffset          = 32
	ConsoleFaceNameOffset            = 36
	ConsoleFaceNameLen               = 32 // UTF-16 code units
	ConsoleCursorSizeOffset          = 100
	ConsoleFullScreenOffset          = 104
	ConsoleQuickEditOffset           = 108
	ConsoleInsertModeOffset          = 112
	ConsoleAutoPositionOffset        = 116
	ConsoleHistoryBufferSizeOffset   = 120
	ConsoleNumHistoryBuffersOffset   = 124
	ConsoleHistoryNoDupOffset        = 128
	ConsoleColorTableOffset          = 132
	ConsoleColorTableLen             = 16
)

// TrackerDataBlock body field offsets.
const (
	TrackerLengthOffset     = 0
	TrackerVersionOffset    = 4
	TrackerMachineIDOffset  = 8
	TrackerMachineIDLen     = 16
	TrackerDroidOffset      = 24
	TrackerDroidBirthOffset = 56
	TrackerExpectedLength   = 0x58
)

// ConsoleFEDataBlock / SpecialFolderDataBlock / KnownFolderDataBlock body
// field offsets.
const (
	ConsoleFECodePageOffset = 0

	SpecialFolderIDOffset     = 0
	SpecialFolderOffsetOffset = 4

	KnownFolderIDOffset     = 0
	KnownFolderOffsetOffset = 16
)

// EnvironmentVariable / Darwin / IconEnvironment share one layout: 260
// bytes of ANSI string followed by 260 UTF-16LE code units (520 bytes).
const (
	DualPathAnsiOffset     = 0
	DualPathAnsiLen        = 260
	DualPathUnicodeOffset  = 260
	DualPathUnicodeLenBytes = 520
)

// Sanity limits guarding allocation sizes against malformed/hostile
// input, mirroring the teacher's MaxNameLen/MaxSubkeyCount style guards.
const (
	MaxStringBytes   = 1 << 20 // 1 MiB: no legitimate .lnk string approaches this
	MaxIDListBytes   = 1 << 20
	MaxExtraDataSize = 1 << 24 // PropertyStore/Shim payloads can be large but bounded
)
