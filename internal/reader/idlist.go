package reader

import (
	"fmt"

	"github.com/jpare/shelllink/internal/format"
	"github.com/jpare/shelllink/pkg/types"
)

// decodeIDListSection reads the u16 length prefix that precedes the
// target LinkTargetIDList (spec.md §4.2 step 2) and decodes exactly that
// many bytes of IdList.
func (d *Decoder) decodeIDListSection() (*types.IdList, error) {
	lenOff, err := d.c.Tell()
	if err != nil {
		return nil, d.ioErr("idlist", err)
	}
	n, err := d.c.ReadU16()
	if err != nil {
		return nil, wrapFormatErr(types.ErrKindTruncatedIDList, "idlist", lenOff, "length prefix", err)
	}

	idList, err := d.decodeIDList(int(n))
	if err != nil {
		return nil, err
	}
	// An early terminator may leave part of the budget unread; skip it so
	// the next section starts right after the n bytes of IdList.
	if err := d.c.SeekTo(lenOff + 2 + int64(n)); err != nil {
		return nil, d.ioErr("idlist", err)
	}
	return idList, nil
}

// decodeIDList decodes an IdList occupying exactly budget bytes,
// per spec.md §4.3: repeatedly decode an ItemID; a size==0 terminal
// entry ends the list; otherwise subtract size from budget and
// continue. budget is also used for the VistaAndAboveIDList ExtraData
// block, where it is block_size-8.
func (d *Decoder) decodeIDList(budget int) (*types.IdList, error) {
	list := &types.IdList{}
	remaining := budget

	for {
		off, err := d.c.Tell()
		if err != nil {
			return nil, d.ioErr("idlist", err)
		}
		if remaining < format.ItemIDSizeFieldSize {
			return nil, types.NewError(types.ErrKindTruncatedIDList, "idlist", off,
				fmt.Sprintf("only %d bytes remain, need at least %d for a terminator", remaining, format.ItemIDSizeFieldSize))
		}

		size, err := d.c.ReadU16()
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedIDList, "idlist", off, "item_id.size", err)
		}

		if size == 0 {
			remaining -= format.ItemIDSizeFieldSize
			break
		}
		if int(size) < format.ItemIDMinNonTerminalSize {
			return nil, types.NewError(types.ErrKindTruncatedIDList, "idlist", off,
				fmt.Sprintf("non-terminal item_id.size = %d, must be > 2", size))
		}
		if int(size) > remaining {
			return nil, types.NewError(types.ErrKindTruncatedIDList, "idlist", off,
				fmt.Sprintf("item_id.size = %d exceeds remaining budget %d", size, remaining))
		}

		dataLen := int(size) - format.ItemIDSizeFieldSize
		data, err := d.c.ReadN(dataLen, format.MaxIDListBytes)
		if err != nil {
			return nil, wrapFormatErr(types.ErrKindTruncatedIDList, "idlist", off, "item_id.data", err)
		}
		list.Items = append(list.Items, types.ItemID{Data: data})
		remaining -= int(size)
	}

	return list, nil
}
