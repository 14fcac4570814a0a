// Package reader implements the top-level decode orchestrator: it
// sequences the header, IDList, LinkInfo, StringData, and ExtraData
// decoders in the order spec.md §4.2 mandates, translating low-level
// format/cursor errors into the public pkg/types.Error taxonomy, the
// same translation role the teacher's internal/reader.wrapFormatErr
// plays for registry-hive errors.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jpare/shelllink/internal/cursor"
	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// Decoder decodes a single .lnk byte stream into a *types.ShellLink.
// Stateless beyond the stream position itself; not safe for concurrent
// use by multiple goroutines against the same underlying stream.
type Decoder struct {
	c    *cursor.Cursor
	opts types.ReadOptions
}

// Open wraps r, ready to Decode. r must be positioned at the start of
// the .lnk data.
func Open(r io.ReadSeeker, opts types.ReadOptions) *Decoder {
	return &Decoder{c: cursor.New(r), opts: opts}
}

// Decode runs the full B→C→D→E→F pipeline (spec.md §4.2) and returns the
// assembled model. ctx is checked for cancellation once per top-level
// component.
func (d *Decoder) Decode(ctx context.Context) (*types.ShellLink, error) {
	link := &types.ShellLink{}

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	header, err := d.decodeHeader()
	if err != nil {
		return nil, err
	}
	link.Header = header

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	if header.LinkFlags.Has(types.HasLinkTargetIDList) {
		idList, err := d.decodeIDListSection()
		if err != nil {
			return nil, err
		}
		link.IDList = idList
	}

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	if header.LinkFlags.Has(types.HasLinkInfo) {
		linkInfo, err := d.decodeLinkInfo()
		if err != nil {
			return nil, err
		}
		link.LinkInfo = linkInfo
	}

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	stringData, err := d.decodeStringData(header.LinkFlags)
	if err != nil {
		return nil, err
	}
	link.StringData = stringData

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	extraData, err := d.decodeExtraData()
	if err != nil {
		return nil, err
	}
	link.ExtraData = extraData

	return link, nil
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return types.WrapError(types.ErrKindIo, "decode", -1, "context canceled", ctx.Err())
	default:
		return nil
	}
}

// ioErr wraps a raw I/O failure (as opposed to a structural decode
// failure) into the Io error kind.
func (d *Decoder) ioErr(op string, err error) error {
	return types.WrapError(types.ErrKindIo, op, -1, "", err)
}

// wrapFormatErr classifies an internal/format or internal/cursor
// sentinel error into the matching public ErrKind, the same translation
// role the teacher's wrapFormatErr performs for registry errors.
func wrapFormatErr(kind types.ErrKind, op string, offset int64, context string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, format.ErrTruncated):
		return types.WrapError(kind, op, offset, context, err)
	case errors.Is(err, format.ErrBoundsCheck):
		return types.WrapError(types.ErrKindOffsetOutOfBounds, op, offset, context, err)
	case errors.Is(err, format.ErrSanityLimit), errors.Is(err, format.ErrIntegerOverflow):
		return types.WrapError(kind, op, offset, context, err)
	case errors.Is(err, format.ErrInvalidEncoding):
		return types.WrapError(types.ErrKindInvalidEncoding, op, offset, context, err)
	default:
		return types.WrapError(kind, op, offset, fmt.Sprintf("%s (unclassified)", context), err)
	}
}
