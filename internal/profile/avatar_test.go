package profile

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tiny 1x1 PNG header bytes; enough for content-type sniffing.
var pngBytes = []byte{
	0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
}

func TestEncodeAvatar_ProducesDataURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	if err := os.WriteFile(path, pngBytes, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := EncodeAvatar(path)
	if err != nil {
		t.Fatalf("EncodeAvatar returned error: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("EncodeAvatar = %q, want data:image/png;base64, prefix", got)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, pngBytes) {
		t.Fatalf("decoded payload does not round-trip")
	}
}

func TestEncodeAvatar_RejectsOversizedFileBeforeReading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Sparse file one byte over the ceiling; nothing is actually written,
	// which also proves the encoder checks size before reading.
	if err := f.Truncate(MaxAvatarBytes + 1); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, err = EncodeAvatar(path)
	if !errors.Is(err, ErrAvatarTooLarge) {
		t.Fatalf("EncodeAvatar error = %v, want ErrAvatarTooLarge", err)
	}
}

func TestEncodeAvatar_ExactCeilingIsAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edge.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.Truncate(MaxAvatarBytes); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := EncodeAvatar(path); err != nil {
		t.Fatalf("EncodeAvatar returned error at the ceiling: %v", err)
	}
}

func TestEncodeAvatar_MissingFile(t *testing.T) {
	_, err := EncodeAvatar(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatalf("EncodeAvatar returned nil error for missing file")
	}
	if errors.Is(err, ErrAvatarTooLarge) {
		t.Fatalf("missing file misreported as too large")
	}
}
