package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/jpare/shelllink/internal/format"
)

func newReaderAt(b []byte) io.ReadSeeker { return bytes.NewReader(b) }

func TestReadU16U32U64(t *testing.T) {
	buf := make([]byte, 14)
	binary.LittleEndian.PutUint16(buf[0:], 0xBEEF)
	binary.LittleEndian.PutUint32(buf[2:], 0xDEADBEEF)
	binary.LittleEndian.PutUint64(buf[6:], 0x0102030405060708)

	c := New(newReaderAt(buf))
	u16, err := c.ReadU16()
	if err != nil || u16 != 0xBEEF {
		t.Fatalf("ReadU16 = %#x, %v", u16, err)
	}
	u32, err := c.ReadU32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %#x, %v", u32, err)
	}
	u64, err := c.ReadU64()
	if err != nil || u64 != 0x0102030405060708 {
		t.Fatalf("ReadU64 = %#x, %v", u64, err)
	}
}

func TestReadTruncated(t *testing.T) {
	c := New(newReaderAt([]byte{0x01}))
	if _, err := c.ReadU16(); !errors.Is(err, format.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestSeekToAndTell(t *testing.T) {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[16:], 0x11223344)
	c := New(newReaderAt(buf))

	if err := c.SeekTo(16); err != nil {
		t.Fatalf("SeekTo: %v", err)
	}
	pos, err := c.Tell()
	if err != nil || pos != 16 {
		t.Fatalf("Tell = %d, %v", pos, err)
	}
	v, err := c.ReadU32()
	if err != nil || v != 0x11223344 {
		t.Fatalf("ReadU32 after seek = %#x, %v", v, err)
	}
}

func TestSeekNegativeRejected(t *testing.T) {
	c := New(newReaderAt(nil))
	if err := c.SeekTo(-1); !errors.Is(err, format.ErrBoundsCheck) {
		t.Fatalf("expected ErrBoundsCheck, got %v", err)
	}
}

func TestReadNRespectsLimit(t *testing.T) {
	c := New(newReaderAt(make([]byte, 100)))
	if _, err := c.ReadN(64, 32); !errors.Is(err, format.ErrSanityLimit) {
		t.Fatalf("expected ErrSanityLimit, got %v", err)
	}
}

func TestReadNTruncated(t *testing.T) {
	c := New(newReaderAt([]byte{1, 2, 3}))
	if _, err := c.ReadN(10, 0); !errors.Is(err, format.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestAddOverflowSafe(t *testing.T) {
	if _, ok := AddOverflowSafe(1<<62, 1<<62); ok {
		t.Fatal("expected overflow to be detected")
	}
	if sum, ok := AddOverflowSafe(2, 3); !ok || sum != 5 {
		t.Fatalf("AddOverflowSafe(2,3) = %d, %v", sum, ok)
	}
}
