// Package cursor provides a bounds-checked sequential reader over an
// io.ReadSeeker, the resource model spec.md §5/§9 requires in place of
// the teacher's whole-file mmap-and-slice approach: the decoder reads
// forward, occasionally seeks to a documented absolute offset, and
// returns to sequential reading afterward, without ever materializing
// the entire input.
package cursor

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/jpare/shelllink/internal/format"
)

// Cursor wraps an io.ReadSeeker with bounds-checked fixed-width reads and
// a small scratch buffer to avoid per-call allocation.
type Cursor struct {
	r       io.ReadSeeker
	scratch [8]byte
}

// New wraps r. r must be positioned wherever the caller wants reading to
// start (typically offset 0).
func New(r io.ReadSeeker) *Cursor {
	return &Cursor{r: r}
}

// Tell reports the current absolute stream position.
func (c *Cursor) Tell() (int64, error) {
	pos, err := c.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("cursor: tell: %w", err)
	}
	return pos, nil
}

// SeekTo moves the stream to an absolute offset.
func (c *Cursor) SeekTo(off int64) error {
	if off < 0 {
		return fmt.Errorf("%w: negative seek offset %d", format.ErrBoundsCheck, off)
	}
	if _, err := c.r.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("cursor: seek to 0x%X: %w", off, err)
	}
	return nil
}

// ReadN reads exactly n bytes, rejecting n above a sanity limit before
// allocating, mirroring the teacher's sanity-limit guards.
func (c *Cursor) ReadN(n int, limit int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read size %d", format.ErrBoundsCheck, n)
	}
	if limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: read of %d bytes exceeds limit %d", format.ErrSanityLimit, n, limit)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: need %d bytes: %v", format.ErrTruncated, n, err)
		}
		return nil, fmt.Errorf("cursor: read %d bytes: %w", n, err)
	}
	return buf, nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if _, err := io.ReadFull(c.r, c.scratch[:2]); err != nil {
		return 0, fmt.Errorf("%w: u16: %v", format.ErrTruncated, err)
	}
	return binary.LittleEndian.Uint16(c.scratch[:2]), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if _, err := io.ReadFull(c.r, c.scratch[:4]); err != nil {
		return 0, fmt.Errorf("%w: u32: %v", format.ErrTruncated, err)
	}
	return binary.LittleEndian.Uint32(c.scratch[:4]), nil
}

// ReadI32 reads a little-endian signed int32.
func (c *Cursor) ReadI32() (int32, error) {
	u, err := c.ReadU32()
	return int32(u), err
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	if _, err := io.ReadFull(c.r, c.scratch[:8]); err != nil {
		return 0, fmt.Errorf("%w: u64: %v", format.ErrTruncated, err)
	}
	return binary.LittleEndian.Uint64(c.scratch[:8]), nil
}

// AddOverflowSafe adds a and b, reporting ok=false on int overflow.
// Carried from the teacher's internal/buf.AddOverflowSafe.
func AddOverflowSafe(a, b int) (sum int, ok bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}
