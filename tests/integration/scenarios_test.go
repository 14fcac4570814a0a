package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpare/shelllink/internal/reader"
	"github.com/jpare/shelllink/internal/writer"
	"github.com/jpare/shelllink/pkg/types"
)

// TestClassicNotepadShortcut covers spec.md §8 scenario 2: a fixture with
// HAS_LINK_TARGET_ID_LIST | HAS_LINK_INFO | HAS_RELATIVE_PATH |
// HAS_WORKING_DIR | IS_UNICODE | ENABLE_TARGET_METADATA, an empty IDList,
// a minimal LinkInfo, and relative_path/working_dir strings, with no
// NAME_STRING slot populated.
func TestClassicNotepadShortcut(t *testing.T) {
	flags := types.HasLinkTargetIDList | types.HasLinkInfo | types.HasRelativePath |
		types.HasWorkingDir | types.IsUnicode | types.EnableTargetMetadata

	created := time.Date(2008, 9, 12, 10, 0, 0, 0, time.UTC)
	b := newFixture(flags, types.FileAttributeArchive, created, created, created, types.ShowNormal)
	b.emptyIDList()
	b.withLinkInfo(linkInfoFixture{
		localBasePath:    `C:\test`,
		commonPathSuffix: "",
	})
	b.sizedStringUnicode(`.\a.txt`)
	b.sizedStringUnicode(`C:\test`)
	b.extraDataTerminator()

	dec := reader.Open(bytes.NewReader(b.bytes()), types.ReadOptions{})
	link, err := dec.Decode(context.Background())
	require.NoError(t, err)

	require.False(t, link.StringData.HasName)
	require.True(t, link.StringData.HasRelativePath)
	require.Equal(t, `.\a.txt`, link.StringData.RelativePath)
	require.True(t, link.StringData.HasWorkingDir)
	require.Equal(t, `C:\test`, link.StringData.WorkingDir)
	require.NotNil(t, link.IDList)
	require.Empty(t, link.IDList.Items)
	require.NotNil(t, link.LinkInfo)
	require.Equal(t, `C:\test`, link.LinkInfo.LocalBasePath)
	require.Equal(t, types.FileAttributeArchive, link.Header.FileAttributes)
	require.Equal(t, types.ShowNormal, link.Header.ShowCommand)
	require.Equal(t, types.NoKeyAssigned, link.Header.Hotkey.Key)
	require.Equal(t, types.NoModifier, link.Header.Hotkey.Modifiers)
	require.Equal(t, created.Unix(), link.Header.CreationTime.Time().Unix())
	require.Empty(t, link.ExtraData.Blocks)
}

// TestUNCTargetWithCommonPathSuffix covers spec.md §8 scenario 3:
// LinkInfo with CommonNetworkRelativeLinkAndPathSuffix set, deriving
// LinkTarget() as the concatenation of net_name and common_path_suffix.
func TestUNCTargetWithCommonPathSuffix(t *testing.T) {
	b := newFixture(types.HasLinkInfo, 0, time.Time{}, time.Time{}, time.Time{}, types.ShowNormal)
	b.withLinkInfo(linkInfoFixture{
		netName:          `\\server\share`,
		commonPathSuffix: `folder\file.ext`,
	})
	b.extraDataTerminator()

	dec := reader.Open(bytes.NewReader(b.bytes()), types.ReadOptions{})
	link, err := dec.Decode(context.Background())
	require.NoError(t, err)

	require.NotNil(t, link.LinkInfo)
	require.NotNil(t, link.LinkInfo.CommonNetworkRelativeLink)
	require.Equal(t, `\\server\share`, link.LinkInfo.CommonNetworkRelativeLink.NetName)
	require.Equal(t, `\\server\share\folder\file.ext`, link.LinkTarget())
}

// TestLinkTargetNoDoubledSeparator covers spec.md §8 scenario 4: a local
// base path already ending in a separator must not get a doubled one.
func TestLinkTargetNoDoubledSeparator(t *testing.T) {
	b := newFixture(types.HasLinkInfo, 0, time.Time{}, time.Time{}, time.Time{}, types.ShowNormal)
	b.withLinkInfo(linkInfoFixture{
		localBasePath:    `C:\`,
		commonPathSuffix: "x.txt",
	})
	b.extraDataTerminator()

	dec := reader.Open(bytes.NewReader(b.bytes()), types.ReadOptions{})
	link, err := dec.Decode(context.Background())
	require.NoError(t, err)
	require.Equal(t, `C:\x.txt`, link.LinkTarget())
}

// TestNotAShellLink covers spec.md §8 scenario 6: a stream whose first
// four bytes aren't the 0x4C header-size magic is rejected regardless of
// what follows.
func TestNotAShellLink(t *testing.T) {
	buf := bytes.Repeat([]byte{0xFF}, 0x4C)
	dec := reader.Open(bytes.NewReader(buf), types.ReadOptions{})
	_, err := dec.Decode(context.Background())
	require.Error(t, err)

	var e *types.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, types.ErrKindNotAShellLink, e.Kind)
}

// TestLenientModeSkipsUnknownExtraData exercises the opt-in lenient
// decoder path (spec.md §7, §9 Open Question 1): an unrecognized
// signature aborts in strict mode but is skipped in lenient mode.
func TestLenientModeSkipsUnknownExtraData(t *testing.T) {
	b := newFixture(0, types.FileAttributeNormal, time.Time{}, time.Time{}, time.Time{}, types.ShowNormal)
	b.putU32(0x10)       // block_size
	b.putU32(0xDEADBEEF) // unrecognized signature
	b.buf.Write(make([]byte, 8))
	b.extraDataTerminator()

	strictDec := reader.Open(bytes.NewReader(b.bytes()), types.ReadOptions{})
	_, err := strictDec.Decode(context.Background())
	require.Error(t, err)
	var e *types.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, types.ErrKindUnknownExtraData, e.Kind)

	lenientDec := reader.Open(bytes.NewReader(b.bytes()), types.ReadOptions{Lenient: true})
	link, err := lenientDec.Decode(context.Background())
	require.NoError(t, err)
	require.Empty(t, link.ExtraData.Blocks)
}

// TestHeaderAndStringDataRoundTrip exercises the limited emission path
// (internal/writer, spec.md §9 "Emission scope"): encoding a decoded
// header + StringData and decoding the result again must reproduce the
// same flags, attributes, and string fields.
func TestHeaderAndStringDataRoundTrip(t *testing.T) {
	flags := types.IsUnicode | types.HasName | types.HasArguments
	original := &types.ShellLink{
		Header: types.Header{
			LinkFlags:      flags,
			FileAttributes: types.FileAttributeNormal,
			ShowCommand:    types.ShowNormal,
			Hotkey:         types.Hotkey{Key: types.KeyA, Modifiers: types.HotkeyControl},
		},
		StringData: types.StringData{
			Name:         "My Shortcut",
			HasName:      true,
			CommandLineArguments: "--flag value",
			HasArguments: true,
		},
	}

	encoded, err := writer.Encode(original, types.WriteOptions{})
	require.NoError(t, err)

	dec := reader.Open(bytes.NewReader(encoded), types.ReadOptions{})
	decoded, err := dec.Decode(context.Background())
	require.NoError(t, err)

	require.Equal(t, original.Header.LinkFlags, decoded.Header.LinkFlags)
	require.Equal(t, original.Header.FileAttributes, decoded.Header.FileAttributes)
	require.Equal(t, original.Header.Hotkey, decoded.Header.Hotkey)
	require.Equal(t, "My Shortcut", decoded.StringData.Name)
	require.Equal(t, "--flag value", decoded.StringData.CommandLineArguments)
	require.Empty(t, decoded.ExtraData.Blocks)
}
