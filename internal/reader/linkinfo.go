package reader

import (
	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// decodeLinkInfo decodes the LinkInfo structure per spec.md §4.4. The
// stream must be positioned at the start of LinkInfo (offset B). On
// return the stream is repositioned to B + link_info_size regardless of
// how many of the optional substructures were actually chased, per
// §4.4 step 5.
func (d *Decoder) decodeLinkInfo() (*types.LinkInfo, error) {
	base, err := d.c.Tell()
	if err != nil {
		return nil, d.ioErr("linkinfo", err)
	}

	prefix, err := d.c.ReadN(format.LinkInfoFixedPrefixSizeLong, format.MaxStringBytes)
	if err != nil {
		// Fall back to the short prefix length; re-seek and retry with
		// the minimum legal read so short LinkInfo structures near EOF
		// still decode.
		if serr := d.c.SeekTo(base); serr != nil {
			return nil, d.ioErr("linkinfo", serr)
		}
		prefix, err = d.c.ReadN(format.LinkInfoFixedPrefixSizeShort, format.MaxStringBytes)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindIo, "linkinfo", base, "fixed prefix", err)
		}
	}

	linkInfoSize := leU32(prefix, format.LinkInfoSizeOffset)
	headerSize := leU32(prefix, format.LinkInfoHeaderSizeOffset)

	flags, err := format.ValidateLinkInfoFlags(leU32(prefix, format.LinkInfoFlagsOffset))
	if err != nil {
		return nil, types.WrapError(types.ErrKindInvalidBitPattern, "linkinfo", base+format.LinkInfoFlagsOffset, "flags", err)
	}

	hasUnicode := headerSize >= format.LinkInfoHeaderSizeWithUnicode && len(prefix) >= format.LinkInfoFixedPrefixSizeLong

	volumeIDOffset := leU32(prefix, format.LinkInfoVolumeIDOffsetOffset)
	localBasePathOffset := leU32(prefix, format.LinkInfoLocalBasePathOffsetOffset)
	cnrlOffset := leU32(prefix, format.LinkInfoCommonNetworkRelativeLinkOffsetOffset)
	commonPathSuffixOffset := leU32(prefix, format.LinkInfoCommonPathSuffixOffsetOffset)

	var localBasePathOffsetUnicode, commonPathSuffixOffsetUnicode uint32
	if hasUnicode {
		localBasePathOffsetUnicode = leU32(prefix, format.LinkInfoLocalBasePathOffsetUnicodeOffset)
		commonPathSuffixOffsetUnicode = leU32(prefix, format.LinkInfoCommonPathSuffixOffsetUnicodeOffset)
	}

	hasVolumeIDAndLocalBasePath := flags.Has(types.VolumeIDAndLocalBasePath)
	hasCNRLAndPathSuffix := flags.Has(types.CommonNetworkRelativeLinkAndPathSuffix)

	if err := checkGatedOffset(base, "linkinfo.volume_id_offset", volumeIDOffset, linkInfoSize, hasVolumeIDAndLocalBasePath); err != nil {
		return nil, err
	}
	if err := checkGatedOffset(base, "linkinfo.local_base_path_offset", localBasePathOffset, linkInfoSize, hasVolumeIDAndLocalBasePath); err != nil {
		return nil, err
	}
	if err := checkGatedOffset(base, "linkinfo.common_network_relative_link_offset", cnrlOffset, linkInfoSize, hasCNRLAndPathSuffix); err != nil {
		return nil, err
	}
	if commonPathSuffixOffset >= linkInfoSize {
		return nil, types.NewError(types.ErrKindOffsetOutOfBounds, "linkinfo.common_path_suffix_offset", base+format.LinkInfoCommonPathSuffixOffsetOffset,
			"offset must be < link_info_size")
	}
	if hasUnicode && localBasePathOffsetUnicode != 0 && localBasePathOffsetUnicode >= linkInfoSize {
		return nil, types.NewError(types.ErrKindOffsetOutOfBounds, "linkinfo.local_base_path_offset_unicode", base+format.LinkInfoLocalBasePathOffsetUnicodeOffset,
			"offset must be < link_info_size")
	}
	if hasUnicode && commonPathSuffixOffsetUnicode != 0 && commonPathSuffixOffsetUnicode >= linkInfoSize {
		return nil, types.NewError(types.ErrKindOffsetOutOfBounds, "linkinfo.common_path_suffix_offset_unicode", base+format.LinkInfoCommonPathSuffixOffsetUnicodeOffset,
			"offset must be < link_info_size")
	}

	li := &types.LinkInfo{Flags: flags}

	if hasVolumeIDAndLocalBasePath && volumeIDOffset != 0 {
		vid, err := d.decodeVolumeID(base + int64(volumeIDOffset))
		if err != nil {
			return nil, err
		}
		li.VolumeID = vid
	}

	if hasVolumeIDAndLocalBasePath && localBasePathOffset != 0 {
		s, err := d.readNullTerminatedASCIIAt(base+int64(localBasePathOffset), "linkinfo.local_base_path")
		if err != nil {
			return nil, err
		}
		li.LocalBasePath = s
	}

	if hasCNRLAndPathSuffix && cnrlOffset != 0 {
		cnrl, err := d.decodeCommonNetworkRelativeLink(base + int64(cnrlOffset))
		if err != nil {
			return nil, err
		}
		li.CommonNetworkRelativeLink = cnrl
	}

	// CommonPathSuffix is always present (possibly as an empty string),
	// unlike the other LinkInfo substructures which are flag-gated.
	s, err := d.readNullTerminatedASCIIAt(base+int64(commonPathSuffixOffset), "linkinfo.common_path_suffix")
	if err != nil {
		return nil, err
	}
	li.CommonPathSuffix = s

	if hasUnicode && localBasePathOffsetUnicode != 0 {
		s, err := d.readNullTerminatedUTF16At(base+int64(localBasePathOffsetUnicode), "linkinfo.local_base_path_unicode")
		if err != nil {
			return nil, err
		}
		li.LocalBasePathUnicode = s
	}

	if hasUnicode && commonPathSuffixOffsetUnicode != 0 {
		s, err := d.readNullTerminatedUTF16At(base+int64(commonPathSuffixOffsetUnicode), "linkinfo.common_path_suffix_unicode")
		if err != nil {
			return nil, err
		}
		li.CommonPathSuffixUnicode = s
	}

	if err := d.c.SeekTo(base + int64(linkInfoSize)); err != nil {
		return nil, d.ioErr("linkinfo", err)
	}

	return li, nil
}

// checkGatedOffset enforces the offset-soundness invariant shared by
// volume_id_offset, local_base_path_offset and
// common_network_relative_link_offset: when the owning flag is set the
// offset must be nonzero and within link_info_size; when it is clear the
// offset must be zero.
func checkGatedOffset(base int64, op string, offset, linkInfoSize uint32, gated bool) error {
	if gated {
		if offset == 0 || offset >= linkInfoSize {
			return types.NewError(types.ErrKindOffsetOutOfBounds, op, base, "offset must be 0 < offset < link_info_size when its flag is set")
		}
		return nil
	}
	if offset != 0 {
		return types.NewError(types.ErrKindOffsetOutOfBounds, op, base, "offset must be 0 when its flag is clear")
	}
	return nil
}

func (d *Decoder) decodeVolumeID(off int64) (*types.VolumeID, error) {
	if err := d.c.SeekTo(off); err != nil {
		return nil, d.ioErr("linkinfo.volume_id", err)
	}
	prefix, err := d.c.ReadN(format.VolumeIDMinSize, format.MaxStringBytes)
	if err != nil {
		return nil, wrapFormatErr(types.ErrKindIo, "linkinfo.volume_id", off, "fixed prefix", err)
	}

	volumeIDSize := leU32(prefix, format.VolumeIDSizeOffset)
	if volumeIDSize <= format.VolumeIDMinSize {
		return nil, types.NewError(types.ErrKindUnsupportedBlockSize, "linkinfo.volume_id.volume_id_size", off+format.VolumeIDSizeOffset,
			"volume_id_size must be > 0x10")
	}

	driveType, err := format.ValidateDriveType(leU32(prefix, format.VolumeIDDriveTypeOffset))
	if err != nil {
		return nil, types.WrapError(types.ErrKindUnknownEnumValue, "linkinfo.volume_id", off+format.VolumeIDDriveTypeOffset, "drive_type", err)
	}
	serial := leU32(prefix, format.VolumeIDDriveSerialNumberOffset)
	labelOffset := leU32(prefix, format.VolumeIDVolumeLabelOffsetOffset)

	if labelOffset != format.VolumeIDUnicodeSentinelOffset && labelOffset >= volumeIDSize {
		return nil, types.NewError(types.ErrKindOffsetOutOfBounds, "linkinfo.volume_id.volume_label_offset", off+format.VolumeIDVolumeLabelOffsetOffset,
			"offset must be < volume_id_size")
	}

	vid := &types.VolumeID{DriveType: driveType, DriveSerialNumber: serial}

	if labelOffset == format.VolumeIDUnicodeSentinelOffset {
		u16Off, err := d.c.Tell()
		if err != nil {
			return nil, d.ioErr("linkinfo.volume_id", err)
		}
		unicodeOffsetBuf, err := d.c.ReadN(4, 4)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindIo, "linkinfo.volume_id", u16Off, "unicode label offset", err)
		}
		unicodeOffset := leU32(unicodeOffsetBuf, 0)
		s, err := d.readNullTerminatedUTF16At(off+int64(unicodeOffset), "linkinfo.volume_id.label_unicode")
		if err != nil {
			return nil, err
		}
		vid.VolumeLabel = s
	} else {
		s, err := d.readNullTerminatedASCIIAt(off+int64(labelOffset), "linkinfo.volume_id.label")
		if err != nil {
			return nil, err
		}
		vid.VolumeLabel = s
	}

	return vid, nil
}

func (d *Decoder) decodeCommonNetworkRelativeLink(off int64) (*types.CommonNetworkRelativeLink, error) {
	if err := d.c.SeekTo(off); err != nil {
		return nil, d.ioErr("linkinfo.cnrl", err)
	}
	prefix, err := d.c.ReadN(format.CNRLMinSize, format.MaxStringBytes)
	if err != nil {
		return nil, wrapFormatErr(types.ErrKindIo, "linkinfo.cnrl", off, "fixed prefix", err)
	}

	cnrlSize := leU32(prefix, format.CNRLSizeOffset)
	if cnrlSize < format.CNRLMinSize {
		return nil, types.NewError(types.ErrKindUnsupportedBlockSize, "linkinfo.cnrl.common_network_relative_link_size", off+format.CNRLSizeOffset,
			"common_network_relative_link_size must be >= 0x14")
	}

	flags, err := format.ValidateCommonNetworkRelativeLinkFlags(leU32(prefix, format.CNRLFlagsOffset))
	if err != nil {
		return nil, types.WrapError(types.ErrKindInvalidBitPattern, "linkinfo.cnrl", off+format.CNRLFlagsOffset, "flags", err)
	}
	netNameOffset := leU32(prefix, format.CNRLNetNameOffsetOffset)
	deviceNameOffset := leU32(prefix, format.CNRLDeviceNameOffsetOffset)
	providerRaw := leU32(prefix, format.CNRLNetworkProviderTypeOffset)

	if netNameOffset >= cnrlSize {
		return nil, types.NewError(types.ErrKindOffsetOutOfBounds, "linkinfo.cnrl.net_name_offset", off+format.CNRLNetNameOffsetOffset,
			"offset must be < common_network_relative_link_size")
	}
	if deviceNameOffset >= cnrlSize {
		return nil, types.NewError(types.ErrKindOffsetOutOfBounds, "linkinfo.cnrl.device_name_offset", off+format.CNRLDeviceNameOffsetOffset,
			"offset must be < common_network_relative_link_size")
	}

	cnrl := &types.CommonNetworkRelativeLink{Flags: flags}

	if flags.Has(types.ValidNetType) {
		pt, err := format.ValidateNetworkProviderType(providerRaw)
		if err != nil {
			return nil, types.WrapError(types.ErrKindUnknownEnumValue, "linkinfo.cnrl", off+format.CNRLNetworkProviderTypeOffset, "network_provider_type", err)
		}
		cnrl.NetworkProviderType = &pt
	}

	if netNameOffset != 0 {
		s, err := d.readNullTerminatedASCIIAt(off+int64(netNameOffset), "linkinfo.cnrl.net_name")
		if err != nil {
			return nil, err
		}
		cnrl.NetName = s
	}
	if flags.Has(types.ValidDevice) && deviceNameOffset != 0 {
		s, err := d.readNullTerminatedASCIIAt(off+int64(deviceNameOffset), "linkinfo.cnrl.device_name")
		if err != nil {
			return nil, err
		}
		cnrl.DeviceName = s
	}

	if netNameOffset > format.CNRLUnicodeThreshold {
		// The fixed prefix read above stops at CNRLMinSize (0x14); the two
		// Unicode-variant offset fields live just past it.
		extraOff := off + format.CNRLMinSize
		if err := d.c.SeekTo(extraOff); err != nil {
			return nil, d.ioErr("linkinfo.cnrl", err)
		}
		extra, err := d.c.ReadN(8, 8)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindIo, "linkinfo.cnrl", extraOff, "unicode offsets", err)
		}
		netNameOffsetUnicode := leU32(extra, 0)
		deviceNameOffsetUnicode := leU32(extra, 4)
		if netNameOffsetUnicode != 0 {
			s, err := d.readNullTerminatedUTF16At(off+int64(netNameOffsetUnicode), "linkinfo.cnrl.net_name_unicode")
			if err != nil {
				return nil, err
			}
			cnrl.NetNameUnicode = s
		}
		if deviceNameOffsetUnicode != 0 {
			s, err := d.readNullTerminatedUTF16At(off+int64(deviceNameOffsetUnicode), "linkinfo.cnrl.device_name_unicode")
			if err != nil {
				return nil, err
			}
			cnrl.DeviceNameUnicode = s
		}
	}

	return cnrl, nil
}

// readNullTerminatedASCIIAt seeks to off and decodes a NUL-terminated
// code-page string without constraining the caller's subsequent stream
// position (callers that need to return to a saved position must save
// it themselves).
func (d *Decoder) readNullTerminatedASCIIAt(off int64, op string) (string, error) {
	if err := d.c.SeekTo(off); err != nil {
		return "", d.ioErr(op, err)
	}
	return d.readNullTerminatedASCII(off, op)
}

func (d *Decoder) readNullTerminatedUTF16At(off int64, op string) (string, error) {
	if err := d.c.SeekTo(off); err != nil {
		return "", d.ioErr(op, err)
	}
	return d.readNullTerminatedUTF16(off, op)
}

// readNullTerminatedASCII accumulates bytes one at a time from the
// cursor's current position, up to MaxStringBytes, then hands the
// accumulated run (including its terminator) to format's shared
// NUL-terminated-string codec.
func (d *Decoder) readNullTerminatedASCII(startOff int64, op string) (string, error) {
	var raw []byte
	for {
		b, err := d.c.ReadN(1, 0)
		if err != nil {
			return "", wrapFormatErr(types.ErrKindTruncatedStringData, op, startOff, "null-terminated ascii", err)
		}
		raw = append(raw, b[0])
		if b[0] == 0 {
			break
		}
		if len(raw) >= format.MaxStringBytes {
			return "", types.NewError(types.ErrKindTruncatedStringData, op, startOff, "string exceeds sanity limit without a terminator")
		}
	}
	s, _, err := format.DecodeNullTerminatedASCII(raw, d.opts.DefaultCodePage)
	if err != nil {
		return "", types.WrapError(types.ErrKindInvalidEncoding, op, startOff, "", err)
	}
	return s, nil
}

func (d *Decoder) readNullTerminatedUTF16(startOff int64, op string) (string, error) {
	var raw []byte
	for {
		unit, err := d.c.ReadN(2, 0)
		if err != nil {
			return "", wrapFormatErr(types.ErrKindTruncatedStringData, op, startOff, "null-terminated utf-16", err)
		}
		raw = append(raw, unit...)
		if unit[0] == 0 && unit[1] == 0 {
			break
		}
		if len(raw) >= format.MaxStringBytes {
			return "", types.NewError(types.ErrKindTruncatedStringData, op, startOff, "string exceeds sanity limit without a terminator")
		}
	}
	s, _, err := format.DecodeNullTerminatedUTF16(raw)
	if err != nil {
		return "", types.WrapError(types.ErrKindInvalidEncoding, op, startOff, "", err)
	}
	return s, nil
}
