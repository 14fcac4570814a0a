// Package lnkjson renders a decoded *types.ShellLink as a JSON-friendly
// shadow tree: enums as their string names, GUIDs as canonical dashed
// hex, and LinkFlags/FileAttributeFlags as either a flat list of set
// flag names or a packed integer, selected by Options.PackedFlags.
// Grounded on the "build a plain map/struct shadow of the model, then
// json.Marshal it" shape the teacher's CLI dump command uses.
package lnkjson

import (
	"encoding/json"

	"github.com/jpare/shelllink/pkg/types"
)

// Options controls how the DTO tree is built.
type Options struct {
	// PackedFlags, when true, renders LinkFlags/FileAttributeFlags as a
	// single packed integer instead of a list of set flag names.
	PackedFlags bool
	Indent      string
}

// Marshal renders link per opts.
func Marshal(link *types.ShellLink, opts Options) ([]byte, error) {
	dto := toDTO(link, opts)
	if opts.Indent != "" {
		return json.MarshalIndent(dto, "", opts.Indent)
	}
	return json.Marshal(dto)
}

type shellLinkDTO struct {
	Header     headerDTO       `json:"header"`
	IDList     *idListDTO      `json:"id_list,omitempty"`
	LinkInfo   *linkInfoDTO    `json:"link_info,omitempty"`
	StringData stringDataDTO   `json:"string_data"`
	ExtraData  []extraBlockDTO `json:"extra_data,omitempty"`
	LinkTarget string          `json:"link_target,omitempty"`
}

type headerDTO struct {
	ClsID          string      `json:"clsid"`
	LinkFlags      interface{} `json:"link_flags"`
	FileAttributes interface{} `json:"file_attributes"`
	CreationTime   string      `json:"creation_time"`
	AccessTime     string      `json:"access_time"`
	WriteTime      string      `json:"write_time"`
	FileSize       uint32      `json:"file_size"`
	IconIndex      int32       `json:"icon_index"`
	ShowCommand    string      `json:"show_command"`
	HotkeyKey      string      `json:"hotkey_key"`
	HotkeyModifier uint8       `json:"hotkey_modifiers"`
}

type idListDTO struct {
	Items []itemIDDTO `json:"items"`
}

type itemIDDTO struct {
	SizeBytes int    `json:"size_bytes"`
	DataHex   string `json:"data_hex"`
}

type volumeIDDTO struct {
	DriveType         string `json:"drive_type"`
	DriveSerialNumber uint32 `json:"drive_serial_number"`
	VolumeLabel       string `json:"volume_label"`
}

type commonNetworkRelativeLinkDTO struct {
	Flags               []string `json:"flags"`
	NetworkProviderType *string  `json:"network_provider_type,omitempty"`
	NetName             string   `json:"net_name,omitempty"`
	DeviceName          string   `json:"device_name,omitempty"`
	NetNameUnicode      string   `json:"net_name_unicode,omitempty"`
	DeviceNameUnicode   string   `json:"device_name_unicode,omitempty"`
}

type linkInfoDTO struct {
	VolumeID                  *volumeIDDTO                  `json:"volume_id,omitempty"`
	LocalBasePath             string                        `json:"local_base_path,omitempty"`
	LocalBasePathUnicode      string                        `json:"local_base_path_unicode,omitempty"`
	CommonNetworkRelativeLink *commonNetworkRelativeLinkDTO `json:"common_network_relative_link,omitempty"`
	CommonPathSuffix          string                        `json:"common_path_suffix"`
	CommonPathSuffixUnicode   string                        `json:"common_path_suffix_unicode,omitempty"`
}

type stringDataDTO struct {
	Name                 *string `json:"name,omitempty"`
	RelativePath         *string `json:"relative_path,omitempty"`
	WorkingDir           *string `json:"working_dir,omitempty"`
	CommandLineArguments *string `json:"command_line_arguments,omitempty"`
	IconLocation         *string `json:"icon_location,omitempty"`
}

type extraBlockDTO struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
}

func toDTO(link *types.ShellLink, opts Options) *shellLinkDTO {
	dto := &shellLinkDTO{
		Header:     toHeaderDTO(link.Header, opts),
		StringData: toStringDataDTO(link.StringData),
		LinkTarget: link.LinkTarget(),
	}
	if link.IDList != nil {
		dto.IDList = toIDListDTO(link.IDList)
	}
	if link.LinkInfo != nil {
		dto.LinkInfo = toLinkInfoDTO(link.LinkInfo)
	}
	for _, b := range link.ExtraData.Blocks {
		dto.ExtraData = append(dto.ExtraData, toExtraBlockDTO(b))
	}
	return dto
}

func toHeaderDTO(h types.Header, opts Options) headerDTO {
	return headerDTO{
		ClsID:          h.ClsID.String(),
		LinkFlags:      flagsValue(opts.PackedFlags, uint32(h.LinkFlags), h.LinkFlags.Names()),
		FileAttributes: fileAttributesValue(opts.PackedFlags, h.FileAttributes),
		CreationTime:   h.CreationTime.Time().UTC().Format("2006-01-02T15:04:05.000000000Z"),
		AccessTime:     h.AccessTime.Time().UTC().Format("2006-01-02T15:04:05.000000000Z"),
		WriteTime:      h.WriteTime.Time().UTC().Format("2006-01-02T15:04:05.000000000Z"),
		FileSize:       h.FileSize,
		IconIndex:      h.IconIndex,
		ShowCommand:    h.ShowCommand.String(),
		HotkeyKey:      h.Hotkey.Key.String(),
		HotkeyModifier: uint8(h.Hotkey.Modifiers),
	}
}

func flagsValue(packed bool, raw uint32, names []string) interface{} {
	if packed {
		return raw
	}
	if names == nil {
		names = []string{}
	}
	return names
}

func fileAttributesValue(packed bool, f types.FileAttributeFlags) interface{} {
	if packed {
		return uint32(f)
	}
	return fileAttributeNames(f)
}

func fileAttributeNames(f types.FileAttributeFlags) []string {
	candidates := []struct {
		bit  types.FileAttributeFlags
		name string
	}{
		{types.FileAttributeReadonly, "FILE_ATTRIBUTE_READONLY"},
		{types.FileAttributeHidden, "FILE_ATTRIBUTE_HIDDEN"},
		{types.FileAttributeSystem, "FILE_ATTRIBUTE_SYSTEM"},
		{types.FileAttributeDirectory, "FILE_ATTRIBUTE_DIRECTORY"},
		{types.FileAttributeArchive, "FILE_ATTRIBUTE_ARCHIVE"},
		{types.FileAttributeNormal, "FILE_ATTRIBUTE_NORMAL"},
		{types.FileAttributeTemporary, "FILE_ATTRIBUTE_TEMPORARY"},
		{types.FileAttributeSparseFile, "FILE_ATTRIBUTE_SPARSE_FILE"},
		{types.FileAttributeReparsePoint, "FILE_ATTRIBUTE_REPARSE_POINT"},
		{types.FileAttributeCompressed, "FILE_ATTRIBUTE_COMPRESSED"},
		{types.FileAttributeOffline, "FILE_ATTRIBUTE_OFFLINE"},
		{types.FileAttributeNotContentIndexed, "FILE_ATTRIBUTE_NOT_CONTENT_INDEXED"},
		{types.FileAttributeEncrypted, "FILE_ATTRIBUTE_ENCRYPTED"},
	}
	names := []string{}
	for _, c := range candidates {
		if f.Has(c.bit) {
			names = append(names, c.name)
		}
	}
	return names
}

func toIDListDTO(idList *types.IdList) *idListDTO {
	dto := &idListDTO{}
	for _, item := range idList.Items {
		dto.Items = append(dto.Items, itemIDDTO{
			SizeBytes: len(item.Data),
			DataHex:   hexString(item.Data),
		})
	}
	return dto
}

func toLinkInfoDTO(li *types.LinkInfo) *linkInfoDTO {
	dto := &linkInfoDTO{
		LocalBasePath:           li.LocalBasePath,
		LocalBasePathUnicode:    li.LocalBasePathUnicode,
		CommonPathSuffix:        li.CommonPathSuffix,
		CommonPathSuffixUnicode: li.CommonPathSuffixUnicode,
	}
	if li.VolumeID != nil {
		dto.VolumeID = &volumeIDDTO{
			DriveType:         li.VolumeID.DriveType.String(),
			DriveSerialNumber: li.VolumeID.DriveSerialNumber,
			VolumeLabel:       li.VolumeID.VolumeLabel,
		}
	}
	if li.CommonNetworkRelativeLink != nil {
		c := li.CommonNetworkRelativeLink
		cd := &commonNetworkRelativeLinkDTO{
			Flags:             cnrlFlagNames(c.Flags),
			NetName:           c.NetName,
			DeviceName:        c.DeviceName,
			NetNameUnicode:    c.NetNameUnicode,
			DeviceNameUnicode: c.DeviceNameUnicode,
		}
		if c.NetworkProviderType != nil {
			s := c.NetworkProviderType.String()
			cd.NetworkProviderType = &s
		}
		dto.CommonNetworkRelativeLink = cd
	}
	return dto
}

func cnrlFlagNames(f types.CommonNetworkRelativeLinkFlags) []string {
	names := []string{}
	if f.Has(types.ValidDevice) {
		names = append(names, "VALID_DEVICE")
	}
	if f.Has(types.ValidNetType) {
		names = append(names, "VALID_NET_TYPE")
	}
	return names
}

func toStringDataDTO(sd types.StringData) stringDataDTO {
	var dto stringDataDTO
	if sd.HasName {
		dto.Name = &sd.Name
	}
	if sd.HasRelativePath {
		dto.RelativePath = &sd.RelativePath
	}
	if sd.HasWorkingDir {
		dto.WorkingDir = &sd.WorkingDir
	}
	if sd.HasArguments {
		dto.CommandLineArguments = &sd.CommandLineArguments
	}
	if sd.HasIconLocation {
		dto.IconLocation = &sd.IconLocation
	}
	return dto
}

// propertyStoreDTO is the placeholder rendered for PropertyStoreDataBlock:
// the PROPERTYSTORAGE payload is an explicit non-goal (spec.md §1) and is
// never interpreted or emitted as raw bytes.
type propertyStoreDTO struct {
	OpaqueBytes int `json:"opaque_bytes"`
}

func toExtraBlockDTO(b types.ExtraDataBlock) extraBlockDTO {
	if ps, ok := b.(types.PropertyStoreDataBlock); ok {
		return extraBlockDTO{Kind: b.Kind().String(), Data: propertyStoreDTO{OpaqueBytes: len(ps.Raw)}}
	}
	return extraBlockDTO{Kind: b.Kind().String(), Data: b}
}

func hexString(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[2*i] = hexDigits[c>>4]
		out[2*i+1] = hexDigits[c&0xF]
	}
	return string(out)
}
