package format

import (
	"bytes"
	"testing"
)

func TestUTF16LERoundTrip(t *testing.T) {
	want := "Hello, 世界"
	enc := EncodeUTF16LE(want)
	got, err := DecodeUTF16LE(enc)
	if err != nil {
		t.Fatalf("DecodeUTF16LE: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	if _, err := DecodeUTF16LE([]byte{0x41}); err == nil {
		t.Fatal("expected error for odd-length buffer")
	}
}

func TestCodePageStringRoundTrip(t *testing.T) {
	want := "plain ascii text"
	enc, err := EncodeCodePageString(want, nil)
	if err != nil {
		t.Fatalf("EncodeCodePageString: %v", err)
	}
	got, err := DecodeCodePageString(enc, nil)
	if err != nil {
		t.Fatalf("DecodeCodePageString: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestTrimNUL(t *testing.T) {
	if got := TrimNUL("abc\x00def"); got != "abc" {
		t.Fatalf("TrimNUL = %q, want %q", got, "abc")
	}
	if got := TrimNUL("no-nul"); got != "no-nul" {
		t.Fatalf("TrimNUL = %q, want %q", got, "no-nul")
	}
}

func TestDecodeNullTerminatedASCII(t *testing.T) {
	buf := append([]byte("hi"), 0x00, 0xFF)
	s, consumed, err := DecodeNullTerminatedASCII(buf, nil)
	if err != nil {
		t.Fatalf("DecodeNullTerminatedASCII: %v", err)
	}
	if s != "hi" || consumed != 3 {
		t.Fatalf("got (%q, %d), want (%q, %d)", s, consumed, "hi", 3)
	}
}

func TestDecodeNullTerminatedASCIIMissingTerminator(t *testing.T) {
	if _, _, err := DecodeNullTerminatedASCII([]byte("no-terminator"), nil); err == nil {
		t.Fatal("expected error for missing terminator")
	}
}

func TestDecodeNullTerminatedUTF16(t *testing.T) {
	buf := EncodeUTF16LE("hi")
	buf = append(buf, 0x00, 0x00)
	s, consumed, err := DecodeNullTerminatedUTF16(buf)
	if err != nil {
		t.Fatalf("DecodeNullTerminatedUTF16: %v", err)
	}
	if s != "hi" || consumed != len(buf) {
		t.Fatalf("got (%q, %d), want (%q, %d)", s, consumed, "hi", len(buf))
	}
}

func TestDecodeFixedSizeString(t *testing.T) {
	raw := bytes.Repeat([]byte{0x00}, 10)
	copy(raw, []byte("abc"))
	s, err := DecodeFixedSizeString(raw, false, nil)
	if err != nil {
		t.Fatalf("DecodeFixedSizeString: %v", err)
	}
	if s != "abc" {
		t.Fatalf("DecodeFixedSizeString = %q, want %q", s, "abc")
	}
}
