package reader

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/jpare/shelllink/pkg/types"
)

// buildHeader returns a valid 0x4C-byte ShellLinkHeader with the given
// link flags and file attributes, zero timestamps, and NoKey/NoModifier
// hotkey.
func buildHeader(t *testing.T, flags types.LinkFlags, fileAttrs types.FileAttributeFlags) []byte {
	t.Helper()
	b := make([]byte, 0x4C)
	binary.LittleEndian.PutUint32(b[0:], 0x4C)
	copy(b[4:20], []byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46})
	binary.LittleEndian.PutUint32(b[20:], uint32(flags))
	binary.LittleEndian.PutUint32(b[24:], uint32(fileAttrs))
	binary.LittleEndian.PutUint32(b[60:], uint32(types.ShowNormal))
	return b
}

func TestDecodeMinimalHeaderAndName(t *testing.T) {
	flags := types.IsUnicode | types.HasName
	buf := buildHeader(t, flags, types.FileAttributeNormal)

	var name bytes.Buffer
	binary.Write(&name, binary.LittleEndian, uint16(2))
	name.Write([]byte{'H', 0, 'i', 0})
	buf = append(buf, name.Bytes()...)

	dec := Open(bytes.NewReader(buf), types.ReadOptions{})
	link, err := dec.Decode(context.Background())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !link.StringData.HasName || link.StringData.Name != "Hi" {
		t.Fatalf("name = %q (has=%v), want %q", link.StringData.Name, link.StringData.HasName, "Hi")
	}
	if link.StringData.HasRelativePath || link.StringData.HasWorkingDir {
		t.Fatal("unexpected string slots present")
	}
	if link.LinkInfo != nil {
		t.Fatal("expected no LinkInfo")
	}
	if len(link.ExtraData.Blocks) != 0 {
		t.Fatal("expected empty ExtraData")
	}
}

func TestDecodeRejectsNonShellLink(t *testing.T) {
	buf := make([]byte, 0x4C)
	binary.LittleEndian.PutUint32(buf[0:], 0x4C)
	// Leave CLSID zeroed, which does not match ShellLinkCLSID.

	dec := Open(bytes.NewReader(buf), types.ReadOptions{})
	_, err := dec.Decode(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var e *types.Error
	if !errors.As(err, &e) || e.Kind != types.ErrKindNotAShellLink {
		t.Fatalf("got %v, want ErrKindNotAShellLink", err)
	}
}

func TestDecodeRejectsBadHeaderSize(t *testing.T) {
	buf := make([]byte, 0x4C)
	binary.LittleEndian.PutUint32(buf[0:], 0x10)

	dec := Open(bytes.NewReader(buf), types.ReadOptions{})
	_, err := dec.Decode(context.Background())
	var e *types.Error
	if !errors.As(err, &e) || e.Kind != types.ErrKindNotAShellLink {
		t.Fatalf("got %v, want ErrKindNotAShellLink", err)
	}
}

func TestDecodeExtraDataTwoBlocksAndTerminator(t *testing.T) {
	buf := buildHeader(t, 0, types.FileAttributeNormal)

	var extra bytes.Buffer
	// ConsoleFEDataBlock: block_size=0x0C, signature=0xA0000004, code_page=1252
	binary.Write(&extra, binary.LittleEndian, uint32(0x0C))
	binary.Write(&extra, binary.LittleEndian, uint32(0xA0000004))
	binary.Write(&extra, binary.LittleEndian, uint32(1252))
	// SpecialFolderDataBlock: block_size=0x10, signature=0xA0000005, id=3, offset=0x20
	binary.Write(&extra, binary.LittleEndian, uint32(0x10))
	binary.Write(&extra, binary.LittleEndian, uint32(0xA0000005))
	binary.Write(&extra, binary.LittleEndian, uint32(3))
	binary.Write(&extra, binary.LittleEndian, uint32(0x20))
	// terminator
	binary.Write(&extra, binary.LittleEndian, uint32(0))

	buf = append(buf, extra.Bytes()...)

	dec := Open(bytes.NewReader(buf), types.ReadOptions{})
	link, err := dec.Decode(context.Background())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(link.ExtraData.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(link.ExtraData.Blocks))
	}
	fe, ok := link.ExtraData.Blocks[0].(types.ConsoleFEDataBlock)
	if !ok || fe.CodePage != 1252 {
		t.Fatalf("block[0] = %#v, want ConsoleFEDataBlock{CodePage:1252}", link.ExtraData.Blocks[0])
	}
	sf, ok := link.ExtraData.Blocks[1].(types.SpecialFolderDataBlock)
	if !ok || sf.SpecialFolderID != 3 || sf.Offset != 0x20 {
		t.Fatalf("block[1] = %#v, want SpecialFolderDataBlock{3, 0x20}", link.ExtraData.Blocks[1])
	}
}

func TestDecodeStopsOnBlockSizeBelowFour(t *testing.T) {
	buf := buildHeader(t, 0, types.FileAttributeNormal)
	var extra bytes.Buffer
	binary.Write(&extra, binary.LittleEndian, uint32(2))
	extra.Write([]byte{0xFF, 0xFF})
	buf = append(buf, extra.Bytes()...)

	dec := Open(bytes.NewReader(buf), types.ReadOptions{})
	link, err := dec.Decode(context.Background())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(link.ExtraData.Blocks) != 0 {
		t.Fatalf("got %d blocks, want 0", len(link.ExtraData.Blocks))
	}
}
