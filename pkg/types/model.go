package types

import (
	"fmt"
	"time"
)

// GUID is a 128-bit identifier in Windows "packet representation": the
// first three fields are little-endian, the remaining eight bytes are a
// raw sequence.
type GUID [16]byte

// String renders the canonical XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX form.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		uint32(g[0])|uint32(g[1])<<8|uint32(g[2])<<16|uint32(g[3])<<24,
		uint16(g[4])|uint16(g[5])<<8,
		uint16(g[6])|uint16(g[7])<<8,
		g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15])
}

// MarshalText renders the canonical string form, so encoders such as
// encoding/json emit a GUID as that string.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// ShellLinkCLSID is the fixed class identifier every valid header carries.
var ShellLinkCLSID = GUID{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// FileTime is a 64-bit count of 100-ns ticks since 1601-01-01T00:00:00Z.
// Zero denotes "unset".
type FileTime uint64

const (
	filetimeEpochOffset = 116444736000000000 // ticks between 1601 and 1970 epochs
	filetimeTicksPerSec = 10000000
)

// Time converts the raw tick count to a calendar time in UTC. The zero
// FileTime maps to the zero time.Time, matching "unset".
func (f FileTime) Time() time.Time {
	if f == 0 {
		return time.Time{}
	}
	unixTicks := int64(f) - filetimeEpochOffset
	sec := unixTicks / filetimeTicksPerSec
	nsec := (unixTicks % filetimeTicksPerSec) * 100
	return time.Unix(sec, nsec).UTC()
}

// FileTimeFromTime is the inverse of Time, rounding down to the nearest
// 100ns tick.
func FileTimeFromTime(t time.Time) FileTime {
	if t.IsZero() {
		return 0
	}
	u := t.UTC()
	ticks := u.Unix()*filetimeTicksPerSec + int64(u.Nanosecond())/100
	return FileTime(ticks + filetimeEpochOffset)
}

// LinkFlags is the 27-bit flag set gating which optional structures
// follow the header.
type LinkFlags uint32

const (
	HasLinkTargetIDList         LinkFlags = 1 << 0
	HasLinkInfo                 LinkFlags = 1 << 1
	HasName                     LinkFlags = 1 << 2
	HasRelativePath             LinkFlags = 1 << 3
	HasWorkingDir               LinkFlags = 1 << 4
	HasArguments                LinkFlags = 1 << 5
	HasIconLocation              LinkFlags = 1 << 6
	IsUnicode                   LinkFlags = 1 << 7
	ForceNoLinkInfo             LinkFlags = 1 << 8
	HasExpString                LinkFlags = 1 << 9
	RunInSeparateProcess        LinkFlags = 1 << 10
	linkFlagsUnused1            LinkFlags = 1 << 11
	HasDarwinID                 LinkFlags = 1 << 12
	RunAsUser                   LinkFlags = 1 << 13
	HasExpIcon                  LinkFlags = 1 << 14
	NoPidlAlias                 LinkFlags = 1 << 15
	linkFlagsUnused2            LinkFlags = 1 << 16
	RunWithShimLayer            LinkFlags = 1 << 17
	ForceNoLinkTrack            LinkFlags = 1 << 18
	EnableTargetMetadata        LinkFlags = 1 << 19
	DisableLinkPathTracking     LinkFlags = 1 << 20
	DisableKnownFolderTracking  LinkFlags = 1 << 21
	DisableKnownFolderAlias     LinkFlags = 1 << 22
	AllowLinkToLink             LinkFlags = 1 << 23
	UnaliasOnSave               LinkFlags = 1 << 24
	PreferEnvironmentPath       LinkFlags = 1 << 25
	KeepLocalIDListForUNCTarget LinkFlags = 1 << 26

	// AllLinkFlags is the union of every named bit (0..26), used to
	// reject undefined bits during strict decode.
	AllLinkFlags LinkFlags = 1<<27 - 1
)

// Has reports whether every bit in want is set in f.
func (f LinkFlags) Has(want LinkFlags) bool { return f&want == want }

var linkFlagNames = []struct {
	bit  LinkFlags
	name string
}{
	{HasLinkTargetIDList, "HasLinkTargetIDList"},
	{HasLinkInfo, "HasLinkInfo"},
	{HasName, "HasName"},
	{HasRelativePath, "HasRelativePath"},
	{HasWorkingDir, "HasWorkingDir"},
	{HasArguments, "HasArguments"},
	{HasIconLocation, "HasIconLocation"},
	{IsUnicode, "IsUnicode"},
	{ForceNoLinkInfo, "ForceNoLinkInfo"},
	{HasExpString, "HasExpString"},
	{RunInSeparateProcess, "RunInSeparateProcess"},
	{linkFlagsUnused1, "Unused1"},
	{HasDarwinID, "HasDarwinID"},
	{RunAsUser, "RunAsUser"},
	{HasExpIcon, "HasExpIcon"},
	{NoPidlAlias, "NoPidlAlias"},
	{linkFlagsUnused2, "Unused2"},
	{RunWithShimLayer, "RunWithShimLayer"},
	{ForceNoLinkTrack, "ForceNoLinkTrack"},
	{EnableTargetMetadata, "EnableTargetMetadata"},
	{DisableLinkPathTracking, "DisableLinkPathTracking"},
	{DisableKnownFolderTracking, "DisableKnownFolderTracking"},
	{DisableKnownFolderAlias, "DisableKnownFolderAlias"},
	{AllowLinkToLink, "AllowLinkToLink"},
	{UnaliasOnSave, "UnaliasOnSave"},
	{PreferEnvironmentPath, "PreferEnvironmentPath"},
	{KeepLocalIDListForUNCTarget, "KeepLocalIDListForUNCTarget"},
}

// Names returns the symbolic names of every set bit, in bit order.
func (f LinkFlags) Names() []string {
	var out []string
	for _, e := range linkFlagNames {
		if f&e.bit != 0 {
			out = append(out, e.name)
		}
	}
	return out
}

// FileAttributeFlags is the 15-bit flag set describing the link target's
// file-system attributes.
type FileAttributeFlags uint32

const (
	FileAttributeReadonly          FileAttributeFlags = 1 << 0
	FileAttributeHidden            FileAttributeFlags = 1 << 1
	FileAttributeSystem            FileAttributeFlags = 1 << 2
	fileAttributeReserved1         FileAttributeFlags = 1 << 3
	FileAttributeDirectory         FileAttributeFlags = 1 << 4
	FileAttributeArchive           FileAttributeFlags = 1 << 5
	fileAttributeReserved2         FileAttributeFlags = 1 << 6
	FileAttributeNormal            FileAttributeFlags = 1 << 7
	FileAttributeTemporary         FileAttributeFlags = 1 << 8
	FileAttributeSparseFile        FileAttributeFlags = 1 << 9
	FileAttributeReparsePoint      FileAttributeFlags = 1 << 10
	FileAttributeCompressed        FileAttributeFlags = 1 << 11
	FileAttributeOffline           FileAttributeFlags = 1 << 12
	FileAttributeNotContentIndexed FileAttributeFlags = 1 << 13
	FileAttributeEncrypted         FileAttributeFlags = 1 << 14

	// AllFileAttributeFlags is the union of every named bit, including the
	// two reserved-must-be-zero bits, used to reject undefined bits.
	AllFileAttributeFlags FileAttributeFlags = 1<<15 - 1
	// ReservedFileAttributeFlags is the subset that MUST be zero on input.
	ReservedFileAttributeFlags = fileAttributeReserved1 | fileAttributeReserved2
)

func (f FileAttributeFlags) Has(want FileAttributeFlags) bool { return f&want == want }

// ShowCommand is the expected initial window state of the link target.
type ShowCommand uint32

const (
	ShowNormal      ShowCommand = 0x01
	ShowMaximized   ShowCommand = 0x03
	ShowMinNoActive ShowCommand = 0x07
)

func (s ShowCommand) String() string {
	switch s {
	case ShowNormal:
		return "ShowNormal"
	case ShowMaximized:
		return "ShowMaximized"
	case ShowMinNoActive:
		return "ShowMinNoActive"
	default:
		return fmt.Sprintf("ShowCommand(0x%X)", uint32(s))
	}
}

// HotkeyKey is the virtual key code half of a shortcut hotkey. Unlike
// LinkFlags/FileAttributeFlags, an unrecognized value is not an error:
// hotkey assignment is advisory UI state, and the raw byte is preserved
// so emission can round-trip it (SPEC_FULL.md §11).
type HotkeyKey byte

const (
	NoKeyAssigned HotkeyKey = 0x00
	Key0          HotkeyKey = 0x30
	KeyA          HotkeyKey = 0x41
	F1            HotkeyKey = 0x70
	NumLock       HotkeyKey = 0x90
	ScrollLock    HotkeyKey = 0x91
)

func (k HotkeyKey) String() string {
	switch {
	case k == NoKeyAssigned:
		return "NoKeyAssigned"
	case k >= Key0 && k <= Key0+9:
		return fmt.Sprintf("Key%d", k-Key0)
	case k >= KeyA && k <= KeyA+25:
		return fmt.Sprintf("Key%c", 'A'+(k-KeyA))
	case k >= F1 && k <= F1+23:
		return fmt.Sprintf("F%d", k-F1+1)
	case k == NumLock:
		return "NumLock"
	case k == ScrollLock:
		return "ScrollLock"
	default:
		return fmt.Sprintf("0x%02X", byte(k))
	}
}

// HotkeyModifiers is the 8-bit modifier half of a shortcut hotkey.
type HotkeyModifiers byte

const (
	NoModifier    HotkeyModifiers = 0x00
	HotkeyShift   HotkeyModifiers = 0x01
	HotkeyControl HotkeyModifiers = 0x02
	HotkeyAlt     HotkeyModifiers = 0x04
)

// Hotkey is the HotkeyFlags structure: key code and modifiers kept as
// two distinct bytes (DESIGN.md, Open Question decision 3), not packed into
// one wider integer, to avoid an endianness round-trip on emission.
type Hotkey struct {
	Key       HotkeyKey
	Modifiers HotkeyModifiers
}

// Header is the fixed 0x4C-byte ShellLinkHeader structure.
type Header struct {
	ClsID           GUID
	LinkFlags       LinkFlags
	FileAttributes  FileAttributeFlags
	CreationTime    FileTime
	AccessTime      FileTime
	WriteTime       FileTime
	FileSize        uint32
	IconIndex       int32
	ShowCommand     ShowCommand
	Hotkey          Hotkey
	// Reserved holds the ten reserved trailing bytes verbatim, so a
	// round-trip emission can preserve unknown vendor data there.
	Reserved [10]byte
}

// ItemID is one element of an IDList: shell-namespace data opaque to
// this library.
type ItemID struct {
	Data []byte
}

// IdList is an ordered, possibly empty sequence of ItemID values.
type IdList struct {
	Items []ItemID
}

// DriveType identifies the kind of drive a link target's volume is on.
type DriveType uint32

const (
	DriveUnknown    DriveType = 0
	DriveNoRootDir  DriveType = 1
	DriveRemovable  DriveType = 2
	DriveFixed      DriveType = 3
	DriveRemote     DriveType = 4
	DriveCDRom      DriveType = 5
	DriveRamdisk    DriveType = 6
)

func (d DriveType) String() string {
	switch d {
	case DriveUnknown:
		return "DriveUnknown"
	case DriveNoRootDir:
		return "DriveNoRootDir"
	case DriveRemovable:
		return "DriveRemovable"
	case DriveFixed:
		return "DriveFixed"
	case DriveRemote:
		return "DriveRemote"
	case DriveCDRom:
		return "DriveCDRom"
	case DriveRamdisk:
		return "DriveRamdisk"
	default:
		return fmt.Sprintf("DriveType(%d)", uint32(d))
	}
}

// VolumeID describes the volume a link target was on when the link was
// created.
type VolumeID struct {
	DriveType          DriveType
	DriveSerialNumber  uint32
	VolumeLabel        string
}

// LinkInfoFlags gates which of VolumeID/LocalBasePath and
// CommonNetworkRelativeLink/CommonPathSuffix are meaningful.
type LinkInfoFlags uint32

const (
	VolumeIDAndLocalBasePath               LinkInfoFlags = 1 << 0
	CommonNetworkRelativeLinkAndPathSuffix LinkInfoFlags = 1 << 1

	AllLinkInfoFlags LinkInfoFlags = 1<<2 - 1
)

// Has reports whether all bits in want are set.
func (f LinkInfoFlags) Has(want LinkInfoFlags) bool {
	return f&want == want
}

// CommonNetworkRelativeLinkFlags gates DeviceName and NetworkProviderType
// presence.
type CommonNetworkRelativeLinkFlags uint32

const (
	ValidDevice  CommonNetworkRelativeLinkFlags = 1 << 0
	ValidNetType CommonNetworkRelativeLinkFlags = 1 << 1

	AllCommonNetworkRelativeLinkFlags CommonNetworkRelativeLinkFlags = 1<<2 - 1
)

func (f CommonNetworkRelativeLinkFlags) Has(want CommonNetworkRelativeLinkFlags) bool {
	return f&want == want
}

// NetworkProviderType is the 32-bit network-provider enumeration, valid
// only when ValidNetType is set.
type NetworkProviderType uint32

const (
	NetworkProviderAvid       NetworkProviderType = 0x1a0000
	NetworkProviderDocuspace  NetworkProviderType = 0x1b0000
	NetworkProviderMangosoft  NetworkProviderType = 0x1c0000
	NetworkProviderSernet     NetworkProviderType = 0x1d0000
	NetworkProviderRiverfront1 NetworkProviderType = 0x1e0000
	NetworkProviderRiverfront2 NetworkProviderType = 0x1f0000
	NetworkProviderDecorb     NetworkProviderType = 0x200000
	NetworkProviderProtstor   NetworkProviderType = 0x210000
	NetworkProviderFjRedir    NetworkProviderType = 0x220000
	NetworkProviderDistinct   NetworkProviderType = 0x230000
	NetworkProviderTwins      NetworkProviderType = 0x240000
	NetworkProviderRdr2Sample NetworkProviderType = 0x250000
	NetworkProviderCSC        NetworkProviderType = 0x260000
	NetworkProviderThreeInOne NetworkProviderType = 0x270000
	NetworkProviderExtendNet  NetworkProviderType = 0x290000
	NetworkProviderStac       NetworkProviderType = 0x2a0000
	NetworkProviderFoxbat     NetworkProviderType = 0x2b0000
	NetworkProviderYahoo      NetworkProviderType = 0x2c0000
	NetworkProviderExifs      NetworkProviderType = 0x2d0000
	NetworkProviderDav        NetworkProviderType = 0x2e0000
	NetworkProviderKnoware    NetworkProviderType = 0x2f0000
	NetworkProviderObjectDire NetworkProviderType = 0x300000
	NetworkProviderMasfax     NetworkProviderType = 0x310000
	NetworkProviderHobNfs     NetworkProviderType = 0x320000
	NetworkProviderShiva      NetworkProviderType = 0x330000
	NetworkProviderIbmal      NetworkProviderType = 0x340000
	NetworkProviderLock       NetworkProviderType = 0x350000
	NetworkProviderTermsrv    NetworkProviderType = 0x360000
	NetworkProviderSrt        NetworkProviderType = 0x370000
	NetworkProviderQuincy     NetworkProviderType = 0x380000
	NetworkProviderOpenafs    NetworkProviderType = 0x390000
	NetworkProviderAvid1      NetworkProviderType = 0x3a0000
	NetworkProviderDfs        NetworkProviderType = 0x3b0000
	NetworkProviderKwnp       NetworkProviderType = 0x3c0000
	NetworkProviderZenworks   NetworkProviderType = 0x3d0000
	NetworkProviderDriveonweb NetworkProviderType = 0x3e0000
	NetworkProviderVmware     NetworkProviderType = 0x3f0000
	NetworkProviderRsfx       NetworkProviderType = 0x400000
	NetworkProviderMfiles     NetworkProviderType = 0x410000
	NetworkProviderMsNfs      NetworkProviderType = 0x420000
	NetworkProviderGoogle     NetworkProviderType = 0x430000
)

var networkProviderNames = map[NetworkProviderType]string{
	NetworkProviderAvid: "Avid", NetworkProviderDocuspace: "Docuspace",
	NetworkProviderMangosoft: "Mangosoft", NetworkProviderSernet: "Sernet",
	NetworkProviderRiverfront1: "Riverfront1", NetworkProviderRiverfront2: "Riverfront2",
	NetworkProviderDecorb: "Decorb", NetworkProviderProtstor: "Protstor",
	NetworkProviderFjRedir: "FjRedir", NetworkProviderDistinct: "Distinct",
	NetworkProviderTwins: "Twins", NetworkProviderRdr2Sample: "Rdr2Sample",
	NetworkProviderCSC: "CSC", NetworkProviderThreeInOne: "3In1",
	NetworkProviderExtendNet: "ExtendNet", NetworkProviderStac: "Stac",
	NetworkProviderFoxbat: "Foxbat", NetworkProviderYahoo: "Yahoo",
	NetworkProviderExifs: "Exifs", NetworkProviderDav: "Dav",
	NetworkProviderKnoware: "Knoware", NetworkProviderObjectDire: "ObjectDire",
	NetworkProviderMasfax: "Masfax", NetworkProviderHobNfs: "HobNfs",
	NetworkProviderShiva: "Shiva", NetworkProviderIbmal: "Ibmal",
	NetworkProviderLock: "Lock", NetworkProviderTermsrv: "Termsrv",
	NetworkProviderSrt: "Srt", NetworkProviderQuincy: "Quincy",
	NetworkProviderOpenafs: "Openafs", NetworkProviderAvid1: "Avid1",
	NetworkProviderDfs: "Dfs", NetworkProviderKwnp: "Kwnp",
	NetworkProviderZenworks: "Zenworks", NetworkProviderDriveonweb: "Driveonweb",
	NetworkProviderVmware: "Vmware", NetworkProviderRsfx: "Rsfx",
	NetworkProviderMfiles: "Mfiles", NetworkProviderMsNfs: "MsNfs",
	NetworkProviderGoogle: "Google",
}

// Known reports whether t is one of the 41 named provider values.
func (t NetworkProviderType) Known() bool {
	_, ok := networkProviderNames[t]
	return ok
}

func (t NetworkProviderType) String() string {
	if name, ok := networkProviderNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NetworkProviderType(0x%X)", uint32(t))
}

// CommonNetworkRelativeLink describes the network location of a link
// target, per MS-SHLLINK §2.3.2.
type CommonNetworkRelativeLink struct {
	Flags               CommonNetworkRelativeLinkFlags
	NetworkProviderType *NetworkProviderType // nil unless ValidNetType is set
	NetName             string
	DeviceName          string
	NetNameUnicode      string // "" unless net_name_offset > 0x14
	DeviceNameUnicode   string
}

// LinkInfo describes how to resolve a link target when it is not found
// at its original location.
type LinkInfo struct {
	Flags                     LinkInfoFlags
	VolumeID                  *VolumeID
	LocalBasePath             string
	LocalBasePathUnicode      string
	CommonNetworkRelativeLink *CommonNetworkRelativeLink
	CommonPathSuffix          string
	CommonPathSuffixUnicode   string
}

// LinkTarget derives the resolved target path: prefer the network path
// when CommonNetworkRelativeLink is present, else the local base path
// (Unicode variant preferred), then append the common path suffix with
// a single separator.
func (li *LinkInfo) LinkTarget() string {
	if li == nil {
		return ""
	}
	var base string
	if li.CommonNetworkRelativeLink != nil {
		base = li.CommonNetworkRelativeLink.NetName
		if li.CommonNetworkRelativeLink.NetNameUnicode != "" {
			base = li.CommonNetworkRelativeLink.NetNameUnicode
		}
	} else if li.LocalBasePathUnicode != "" {
		base = li.LocalBasePathUnicode
	} else {
		base = li.LocalBasePath
	}
	suffix := li.CommonPathSuffix
	if li.CommonPathSuffixUnicode != "" {
		suffix = li.CommonPathSuffixUnicode
	}
	if suffix == "" {
		return base
	}
	if base != "" && base[len(base)-1] != '\\' {
		return base + "\\" + suffix
	}
	return base + suffix
}

// StringData holds the five optional, independently-gated string fields.
type StringData struct {
	Name                  string
	HasName               bool
	RelativePath          string
	HasRelativePath       bool
	WorkingDir            string
	HasWorkingDir         bool
	CommandLineArguments  string
	HasArguments          bool
	IconLocation          string
	HasIconLocation       bool
}

// ExtraDataKind identifies one of the eleven known ExtraData block kinds
// by its wire signature.
type ExtraDataKind uint32

const (
	ExtraDataEnvironmentVariable  ExtraDataKind = 0xA0000001
	ExtraDataConsole              ExtraDataKind = 0xA0000002
	ExtraDataTracker              ExtraDataKind = 0xA0000003
	ExtraDataConsoleFE            ExtraDataKind = 0xA0000004
	ExtraDataSpecialFolder        ExtraDataKind = 0xA0000005
	ExtraDataDarwin               ExtraDataKind = 0xA0000006
	ExtraDataIconEnvironment      ExtraDataKind = 0xA0000007
	ExtraDataShim                 ExtraDataKind = 0xA0000008
	ExtraDataPropertyStore        ExtraDataKind = 0xA0000009
	ExtraDataVistaAndAboveIDList  ExtraDataKind = 0xA000000A
	ExtraDataKnownFolder          ExtraDataKind = 0xA000000B
)

func (k ExtraDataKind) String() string {
	switch k {
	case ExtraDataEnvironmentVariable:
		return "EnvironmentVariable"
	case ExtraDataConsole:
		return "Console"
	case ExtraDataTracker:
		return "Tracker"
	case ExtraDataConsoleFE:
		return "ConsoleFE"
	case ExtraDataSpecialFolder:
		return "SpecialFolder"
	case ExtraDataDarwin:
		return "Darwin"
	case ExtraDataIconEnvironment:
		return "IconEnvironment"
	case ExtraDataShim:
		return "Shim"
	case ExtraDataPropertyStore:
		return "PropertyStore"
	case ExtraDataVistaAndAboveIDList:
		return "VistaAndAboveIDList"
	case ExtraDataKnownFolder:
		return "KnownFolder"
	default:
		return fmt.Sprintf("ExtraDataKind(0x%X)", uint32(k))
	}
}

// ExtraDataBlock is implemented by every decoded ExtraData block kind.
type ExtraDataBlock interface {
	Kind() ExtraDataKind
}

type EnvironmentVariableDataBlock struct {
	TargetAnsi    string
	TargetUnicode string
}

func (EnvironmentVariableDataBlock) Kind() ExtraDataKind { return ExtraDataEnvironmentVariable }

type ConsoleDataBlock struct {
	FillAttributes          uint16
	PopupFillAttributes     uint16
	ScreenBufferSizeX       int16
	ScreenBufferSizeY       int16
	WindowSizeX             int16
	WindowSizeY             int16
	WindowOriginX           int16
	WindowOriginY           int16
	FontSize                uint32
	FontFamily              uint32
	FontWeight              uint32
	FaceName                string
	CursorSize              uint32
	FullScreen              bool
	QuickEdit               bool
	InsertMode              bool
	AutoPosition            bool
	HistoryBufferSize       uint32
	NumberOfHistoryBuffers  uint32
	HistoryNoDup            bool
	ColorTable              [16]uint32
}

func (ConsoleDataBlock) Kind() ExtraDataKind { return ExtraDataConsole }

type TrackerDataBlock struct {
	MachineID   string
	Droid       [2]GUID
	DroidBirth  [2]GUID
}

func (TrackerDataBlock) Kind() ExtraDataKind { return ExtraDataTracker }

type ConsoleFEDataBlock struct {
	CodePage uint32
}

func (ConsoleFEDataBlock) Kind() ExtraDataKind { return ExtraDataConsoleFE }

type SpecialFolderDataBlock struct {
	SpecialFolderID uint32
	Offset          uint32
}

func (SpecialFolderDataBlock) Kind() ExtraDataKind { return ExtraDataSpecialFolder }

type DarwinDataBlock struct {
	DarwinDataAnsi    string
	DarwinDataUnicode string
}

func (DarwinDataBlock) Kind() ExtraDataKind { return ExtraDataDarwin }

type IconEnvironmentDataBlock struct {
	TargetAnsi    string
	TargetUnicode string
}

func (IconEnvironmentDataBlock) Kind() ExtraDataKind { return ExtraDataIconEnvironment }

type ShimDataBlock struct {
	LayerName string
}

func (ShimDataBlock) Kind() ExtraDataKind { return ExtraDataShim }

// PropertyStoreDataBlock is kept opaque; interpreting PROPERTYSTORAGE
// payloads is an explicit non-goal (spec.md §1).
type PropertyStoreDataBlock struct {
	Raw []byte
}

func (PropertyStoreDataBlock) Kind() ExtraDataKind { return ExtraDataPropertyStore }

type VistaAndAboveIDListDataBlock struct {
	IDList IdList
}

func (VistaAndAboveIDListDataBlock) Kind() ExtraDataKind { return ExtraDataVistaAndAboveIDList }

type KnownFolderDataBlock struct {
	KnownFolderID GUID
	Offset        uint32
}

func (KnownFolderDataBlock) Kind() ExtraDataKind { return ExtraDataKnownFolder }

// ExtraData is the ordered list of decoded trailing blocks.
type ExtraData struct {
	Blocks []ExtraDataBlock
}

// ShellLink is the fully decoded in-memory model of a .lnk file.
// Constructed once by the decoder; read-only thereafter.
type ShellLink struct {
	Header     Header
	IDList     *IdList
	LinkInfo   *LinkInfo
	StringData StringData
	ExtraData  ExtraData
}

// LinkTarget concatenates LinkInfo's resolved path, or "" when there is
// no LinkInfo.
func (s *ShellLink) LinkTarget() string {
	if s == nil || s.LinkInfo == nil {
		return ""
	}
	return s.LinkInfo.LinkTarget()
}
