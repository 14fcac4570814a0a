package format

import (
	"testing"
	"time"

	"github.com/jpare/shelllink/pkg/types"
)

func TestGUIDRoundTrip(t *testing.T) {
	g := types.ShellLinkCLSID
	var b [16]byte
	PutGUID(b[:], g)
	got := ReadGUID(b[:])
	if got != g {
		t.Fatalf("round trip mismatch: got %s, want %s", got, g)
	}
	if got.String() != "00021401-0000-0000-C000-000000000046" {
		t.Fatalf("unexpected canonical string: %s", got.String())
	}
}

func TestFileTimeRoundTrip(t *testing.T) {
	want := types.FileTimeFromTime(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC))
	var b [8]byte
	PutFileTime(b[:], want)
	got := ReadFileTime(b[:])
	if got != want {
		t.Fatalf("round trip mismatch: got %d, want %d", got, want)
	}
}

func TestValidateLinkFlagsRejectsUndefinedBits(t *testing.T) {
	if _, err := ValidateLinkFlags(1 << 27); err == nil {
		t.Fatal("expected error for undefined bit 27")
	}
	if _, err := ValidateLinkFlags(uint32(types.HasName | types.IsUnicode)); err != nil {
		t.Fatalf("unexpected error for valid flags: %v", err)
	}
}

func TestValidateFileAttributeFlagsRejectsReservedBits(t *testing.T) {
	if _, err := ValidateFileAttributeFlags(1 << 3); err == nil {
		t.Fatal("expected error for reserved bit 3")
	}
	if _, err := ValidateFileAttributeFlags(1 << 6); err == nil {
		t.Fatal("expected error for reserved bit 6")
	}
}

func TestValidateShowCommand(t *testing.T) {
	for _, v := range []uint32{0x01, 0x03, 0x07} {
		if _, err := ValidateShowCommand(v); err != nil {
			t.Fatalf("unexpected error for 0x%X: %v", v, err)
		}
	}
	if _, err := ValidateShowCommand(0x02); err == nil {
		t.Fatal("expected error for undefined show_command 0x02")
	}
}

func TestValidateDriveType(t *testing.T) {
	if _, err := ValidateDriveType(uint32(types.DriveRamdisk)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ValidateDriveType(uint32(types.DriveRamdisk) + 1); err == nil {
		t.Fatal("expected error for out-of-range drive_type")
	}
}

func TestValidateNetworkProviderType(t *testing.T) {
	if _, err := ValidateNetworkProviderType(uint32(types.NetworkProviderGoogle)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ValidateNetworkProviderType(0xDEADBEEF); err == nil {
		t.Fatal("expected error for unknown network_provider_type")
	}
}
