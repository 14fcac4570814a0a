package reader

import (
	"fmt"

	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// decodeExtraData decodes the terminator-delimited ExtraData stream
// (spec.md §4.6): repeatedly read block_size/signature, dispatch on
// signature, and decode block_size-8 bytes. The stream ends on a
// block_size < 4 (the common case is an exact 0) or end-of-stream.
func (d *Decoder) decodeExtraData() (types.ExtraData, error) {
	var ed types.ExtraData

	for {
		blockOff, err := d.c.Tell()
		if err != nil {
			return ed, d.ioErr("extradata", err)
		}

		sizeBuf, err := d.c.ReadN(4, 4)
		if err != nil {
			// A failure reading a fresh block's size prefix, whether a
			// clean EOF or a truncated read, ends the ExtraData stream:
			// some .lnk files end with a bare 0x00000000 terminator,
			// others simply stop here without one.
			return ed, nil
		}
		blockSize := leU32(sizeBuf, 0)

		if blockSize < format.ExtraDataMinTerminatorSize {
			return ed, nil
		}

		sigOff, err := d.c.Tell()
		if err != nil {
			return ed, d.ioErr("extradata", err)
		}
		sigBuf, err := d.c.ReadN(4, 4)
		if err != nil {
			return ed, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata", sigOff, "signature", err)
		}
		signature := types.ExtraDataKind(leU32(sigBuf, 0))

		bodyOff, err := d.c.Tell()
		if err != nil {
			return ed, d.ioErr("extradata", err)
		}
		bodyLen := int(blockSize) - format.ExtraDataBlockHeaderSize
		if bodyLen < 0 {
			return ed, types.NewError(types.ErrKindUnsupportedBlockSize, "extradata", blockOff,
				fmt.Sprintf("block_size = %d is smaller than the 8-byte header", blockSize))
		}

		block, err := d.decodeExtraDataBlock(signature, blockOff, bodyOff, bodyLen)
		if err != nil {
			if IsUnknownExtraData(err) && d.opts.Lenient {
				if serr := d.c.SeekTo(bodyOff + int64(bodyLen)); serr != nil {
					return ed, d.ioErr("extradata", serr)
				}
				continue
			}
			return ed, err
		}
		ed.Blocks = append(ed.Blocks, block)

		if err := d.c.SeekTo(bodyOff + int64(bodyLen)); err != nil {
			return ed, d.ioErr("extradata", err)
		}
	}
}

// IsUnknownExtraData reports whether err is the ErrKindUnknownExtraData
// classification, used by decodeExtraData's lenient-mode skip path.
func IsUnknownExtraData(err error) bool {
	e, ok := err.(*types.Error)
	return ok && e.Kind == types.ErrKindUnknownExtraData
}

func (d *Decoder) decodeExtraDataBlock(kind types.ExtraDataKind, blockOff, bodyOff int64, bodyLen int) (types.ExtraDataBlock, error) {
	switch kind {
	case types.ExtraDataEnvironmentVariable:
		return d.decodeDualPathBlock(bodyOff, bodyLen, blockOff, format.EnvironmentVariableDataBlockSize, "extradata.environment_variable",
			func(ansi, unicode string) types.ExtraDataBlock {
				return types.EnvironmentVariableDataBlock{TargetAnsi: ansi, TargetUnicode: unicode}
			})
	case types.ExtraDataDarwin:
		return d.decodeDualPathBlock(bodyOff, bodyLen, blockOff, format.DarwinDataBlockSize, "extradata.darwin",
			func(ansi, unicode string) types.ExtraDataBlock {
				return types.DarwinDataBlock{DarwinDataAnsi: ansi, DarwinDataUnicode: unicode}
			})
	case types.ExtraDataIconEnvironment:
		return d.decodeDualPathBlock(bodyOff, bodyLen, blockOff, format.IconEnvironmentDataBlockSize, "extradata.icon_environment",
			func(ansi, unicode string) types.ExtraDataBlock {
				return types.IconEnvironmentDataBlock{TargetAnsi: ansi, TargetUnicode: unicode}
			})
	case types.ExtraDataConsole:
		return d.decodeConsoleDataBlock(bodyOff, bodyLen, blockOff)
	case types.ExtraDataConsoleFE:
		if err := checkFixedBlockSize(blockOff, format.ConsoleFEDataBlockSize, bodyLen+format.ExtraDataBlockHeaderSize); err != nil {
			return nil, err
		}
		body, err := d.c.ReadN(bodyLen, bodyLen)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.console_fe", bodyOff, "body", err)
		}
		return types.ConsoleFEDataBlock{CodePage: leU32(body, format.ConsoleFECodePageOffset)}, nil
	case types.ExtraDataTracker:
		return d.decodeTrackerDataBlock(bodyOff, bodyLen, blockOff)
	case types.ExtraDataSpecialFolder:
		if err := checkFixedBlockSize(blockOff, format.SpecialFolderDataBlockSize, bodyLen+format.ExtraDataBlockHeaderSize); err != nil {
			return nil, err
		}
		body, err := d.c.ReadN(bodyLen, bodyLen)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.special_folder", bodyOff, "body", err)
		}
		return types.SpecialFolderDataBlock{
			SpecialFolderID: leU32(body, format.SpecialFolderIDOffset),
			Offset:          leU32(body, format.SpecialFolderOffsetOffset),
		}, nil
	case types.ExtraDataShim:
		if bodyLen+format.ExtraDataBlockHeaderSize < format.ShimDataBlockMinSize {
			return nil, types.NewError(types.ErrKindUnsupportedBlockSize, "extradata.shim", blockOff,
				fmt.Sprintf("block_size = %d is below the minimum %d", bodyLen+format.ExtraDataBlockHeaderSize, format.ShimDataBlockMinSize))
		}
		body, err := d.c.ReadN(bodyLen, format.MaxExtraDataSize)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.shim", bodyOff, "body", err)
		}
		s, err := format.DecodeUTF16LE(trimToEvenLen(body))
		if err != nil {
			return nil, types.WrapError(types.ErrKindInvalidEncoding, "extradata.shim", bodyOff, "layer_name", err)
		}
		return types.ShimDataBlock{LayerName: format.TrimNUL(s)}, nil
	case types.ExtraDataPropertyStore:
		if bodyLen+format.ExtraDataBlockHeaderSize < format.PropertyStoreDataBlockMinSize {
			return nil, types.NewError(types.ErrKindUnsupportedBlockSize, "extradata.property_store", blockOff,
				fmt.Sprintf("block_size = %d is below the minimum %d", bodyLen+format.ExtraDataBlockHeaderSize, format.PropertyStoreDataBlockMinSize))
		}
		body, err := d.c.ReadN(bodyLen, format.MaxExtraDataSize)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.property_store", bodyOff, "body", err)
		}
		return types.PropertyStoreDataBlock{Raw: body}, nil
	case types.ExtraDataVistaAndAboveIDList:
		if bodyLen+format.ExtraDataBlockHeaderSize < format.VistaAndAboveIDListDataBlockMinSize {
			return nil, types.NewError(types.ErrKindUnsupportedBlockSize, "extradata.vista_and_above_idlist", blockOff,
				fmt.Sprintf("block_size = %d is below the minimum %d", bodyLen+format.ExtraDataBlockHeaderSize, format.VistaAndAboveIDListDataBlockMinSize))
		}
		idList, err := d.decodeIDList(bodyLen)
		if err != nil {
			return nil, err
		}
		return types.VistaAndAboveIDListDataBlock{IDList: *idList}, nil
	case types.ExtraDataKnownFolder:
		if err := checkFixedBlockSize(blockOff, format.KnownFolderDataBlockSize, bodyLen+format.ExtraDataBlockHeaderSize); err != nil {
			return nil, err
		}
		body, err := d.c.ReadN(bodyLen, bodyLen)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.known_folder", bodyOff, "body", err)
		}
		return types.KnownFolderDataBlock{
			KnownFolderID: format.ReadGUID(body[format.KnownFolderIDOffset:]),
			Offset:        leU32(body, format.KnownFolderOffsetOffset),
		}, nil
	default:
		return nil, types.NewError(types.ErrKindUnknownExtraData, "extradata", blockOff,
			fmt.Sprintf("signature 0x%08X", uint32(kind)))
	}
}

func checkFixedBlockSize(blockOff int64, want, got int) error {
	if got != want {
		return types.NewError(types.ErrKindUnsupportedBlockSize, "extradata", blockOff,
			fmt.Sprintf("block_size = 0x%X, want 0x%X", got, want))
	}
	return nil
}

func trimToEvenLen(b []byte) []byte {
	if len(b)%2 != 0 {
		return b[:len(b)-1]
	}
	return b
}

// decodeDualPathBlock decodes the EnvironmentVariable/Darwin/IconEnvironment
// shared layout: a 260-byte ANSI path then a 260-unit (520-byte) UTF-16LE
// path.
func (d *Decoder) decodeDualPathBlock(bodyOff int64, bodyLen int, blockOff int64, wantTotalSize int, op string, build func(ansi, unicode string) types.ExtraDataBlock) (types.ExtraDataBlock, error) {
	if err := checkFixedBlockSize(blockOff, wantTotalSize, bodyLen+format.ExtraDataBlockHeaderSize); err != nil {
		return nil, err
	}
	body, err := d.c.ReadN(bodyLen, bodyLen)
	if err != nil {
		return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, op, bodyOff, "body", err)
	}
	ansi, err := format.DecodeFixedSizeString(body[format.DualPathAnsiOffset:format.DualPathAnsiOffset+format.DualPathAnsiLen], false, d.opts.DefaultCodePage)
	if err != nil {
		return nil, types.WrapError(types.ErrKindInvalidEncoding, op, bodyOff, "ansi path", err)
	}
	unicode, err := format.DecodeFixedSizeString(body[format.DualPathUnicodeOffset:format.DualPathUnicodeOffset+format.DualPathUnicodeLenBytes], true, nil)
	if err != nil {
		return nil, types.WrapError(types.ErrKindInvalidEncoding, op, bodyOff, "unicode path", err)
	}
	return build(ansi, unicode), nil
}

func (d *Decoder) decodeConsoleDataBlock(bodyOff int64, bodyLen int, blockOff int64) (types.ExtraDataBlock, error) {
	if err := checkFixedBlockSize(blockOff, format.ConsoleDataBlockSize, bodyLen+format.ExtraDataBlockHeaderSize); err != nil {
		return nil, err
	}
	b, err := d.c.ReadN(bodyLen, bodyLen)
	if err != nil {
		return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.console", bodyOff, "body", err)
	}

	faceNameBytes := b[format.ConsoleFaceNameOffset : format.ConsoleFaceNameOffset+format.ConsoleFaceNameLen*2]
	faceName, err := format.DecodeFixedSizeString(faceNameBytes, true, nil)
	if err != nil {
		return nil, types.WrapError(types.ErrKindInvalidEncoding, "extradata.console", bodyOff, "face_name", err)
	}

	var colorTable [16]uint32
	for i := 0; i < format.ConsoleColorTableLen; i++ {
		colorTable[i] = leU32(b, format.ConsoleColorTableOffset+i*4)
	}

	cb := types.ConsoleDataBlock{
		FillAttributes:      leU16(b, format.ConsoleFillAttributesOffset),
		PopupFillAttributes: leU16(b, format.ConsolePopupFillAttributesOffset),
		ScreenBufferSizeX:   int16(leU16(b, format.ConsoleScreenBufferSizeXOffset)),
		ScreenBufferSizeY:   int16(leU16(b, format.ConsoleScreenBufferSizeYOffset)),
		WindowSizeX:         int16(leU16(b, format.ConsoleWindowSizeXOffset)),
		WindowSizeY:         int16(leU16(b, format.ConsoleWindowSizeYOffset)),
		WindowOriginX:       int16(leU16(b, format.ConsoleWindowOriginXOffset)),
		WindowOriginY:       int16(leU16(b, format.ConsoleWindowOriginYOffset)),
		FontSize:            leU32(b, format.ConsoleFontSizeOffset),
		FontFamily:          leU32(b, format.ConsoleFontFamilyOffset),
		FontWeight:          leU32(b, format.ConsoleFontWeightOffset),
		FaceName:            faceName,
		CursorSize:          leU32(b, format.ConsoleCursorSizeOffset),
		FullScreen:          leU32(b, format.ConsoleFullScreenOffset) != 0,
		QuickEdit:           leU32(b, format.ConsoleQuickEditOffset) != 0,
		InsertMode:          leU32(b, format.ConsoleInsertModeOffset) != 0,
		AutoPosition:        leU32(b, format.ConsoleAutoPositionOffset) != 0,
		HistoryBufferSize:       leU32(b, format.ConsoleHistoryBufferSizeOffset),
		NumberOfHistoryBuffers:  leU32(b, format.ConsoleNumHistoryBuffersOffset),
		HistoryNoDup:            leU32(b, format.ConsoleHistoryNoDupOffset) != 0,
		ColorTable:              colorTable,
	}
	return cb, nil
}

func (d *Decoder) decodeTrackerDataBlock(bodyOff int64, bodyLen int, blockOff int64) (types.ExtraDataBlock, error) {
	if err := checkFixedBlockSize(blockOff, format.TrackerDataBlockSize, bodyLen+format.ExtraDataBlockHeaderSize); err != nil {
		return nil, err
	}
	b, err := d.c.ReadN(bodyLen, bodyLen)
	if err != nil {
		return nil, wrapFormatErr(types.ErrKindTruncatedExtraData, "extradata.tracker", bodyOff, "body", err)
	}

	length := leU32(b, format.TrackerLengthOffset)
	if length != format.TrackerExpectedLength {
		return nil, types.NewError(types.ErrKindUnsupportedBlockSize, "extradata.tracker", bodyOff,
			fmt.Sprintf("length = 0x%X, want 0x%X", length, format.TrackerExpectedLength))
	}

	machineIDRaw := b[format.TrackerMachineIDOffset : format.TrackerMachineIDOffset+format.TrackerMachineIDLen]
	machineID := format.TrimNUL(string(machineIDRaw))

	var droid, droidBirth [2]types.GUID
	droid[0] = format.ReadGUID(b[format.TrackerDroidOffset:])
	droid[1] = format.ReadGUID(b[format.TrackerDroidOffset+16:])
	droidBirth[0] = format.ReadGUID(b[format.TrackerDroidBirthOffset:])
	droidBirth[1] = format.ReadGUID(b[format.TrackerDroidBirthOffset+16:])

	return types.TrackerDataBlock{MachineID: machineID, Droid: droid, DroidBirth: droidBirth}, nil
}
