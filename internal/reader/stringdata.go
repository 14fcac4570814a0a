package reader

import (
	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// decodeStringData decodes the five optional StringData fields in their
// fixed order (spec.md §4.5): NAME_STRING, RELATIVE_PATH, WORKING_DIR,
// COMMAND_LINE_ARGUMENTS, ICON_LOCATION, each present iff its LinkFlags
// bit is set. Every present field is a u16 character-count prefix
// followed by that many characters, UTF-16LE when IsUnicode is set,
// code-page 8-bit text otherwise.
func (d *Decoder) decodeStringData(flags types.LinkFlags) (types.StringData, error) {
	var sd types.StringData
	unicode := flags.Has(types.IsUnicode)

	if flags.Has(types.HasName) {
		s, err := d.decodeSizedString(unicode, "stringdata.name")
		if err != nil {
			return sd, err
		}
		sd.Name = s
		sd.HasName = true
	}
	if flags.Has(types.HasRelativePath) {
		s, err := d.decodeSizedString(unicode, "stringdata.relative_path")
		if err != nil {
			return sd, err
		}
		sd.RelativePath = s
		sd.HasRelativePath = true
	}
	if flags.Has(types.HasWorkingDir) {
		s, err := d.decodeSizedString(unicode, "stringdata.working_dir")
		if err != nil {
			return sd, err
		}
		sd.WorkingDir = s
		sd.HasWorkingDir = true
	}
	if flags.Has(types.HasArguments) {
		s, err := d.decodeSizedString(unicode, "stringdata.command_line_arguments")
		if err != nil {
			return sd, err
		}
		sd.CommandLineArguments = s
		sd.HasArguments = true
	}
	if flags.Has(types.HasIconLocation) {
		s, err := d.decodeSizedString(unicode, "stringdata.icon_location")
		if err != nil {
			return sd, err
		}
		sd.IconLocation = s
		sd.HasIconLocation = true
	}

	return sd, nil
}

// decodeSizedString reads a u16 character count then that many
// characters (2 bytes each if unicode, else 1).
func (d *Decoder) decodeSizedString(unicode bool, op string) (string, error) {
	off, err := d.c.Tell()
	if err != nil {
		return "", d.ioErr(op, err)
	}
	count, err := d.c.ReadU16()
	if err != nil {
		return "", wrapFormatErr(types.ErrKindTruncatedStringData, op, off, "char count", err)
	}

	unitSize := 1
	if unicode {
		unitSize = 2
	}
	byteLen := int(count) * unitSize

	dataOff, err := d.c.Tell()
	if err != nil {
		return "", d.ioErr(op, err)
	}
	raw, err := d.c.ReadN(byteLen, format.MaxStringBytes)
	if err != nil {
		return "", wrapFormatErr(types.ErrKindTruncatedStringData, op, dataOff, "char data", err)
	}

	var s string
	if unicode {
		s, err = format.DecodeUTF16LE(raw)
	} else {
		s, err = format.DecodeCodePageString(raw, d.opts.DefaultCodePage)
	}
	if err != nil {
		return "", types.WrapError(types.ErrKindInvalidEncoding, op, dataOff, "", err)
	}
	return s, nil
}
