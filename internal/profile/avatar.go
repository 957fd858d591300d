package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// MaxAvatarBytes is the size ceiling for avatar image files.
const MaxAvatarBytes = 5 * 1024 * 1024

// ErrAvatarTooLarge reports an avatar file above the size ceiling. The check
// happens before any read.
var ErrAvatarTooLarge = errors.New("avatar file exceeds 5MB")

// EncodeAvatar reads an image file and returns it as a fully resolved
// data: URL suitable for embedding in the profile payload. Callers only ever
// see a complete string or an error, never a partial encoding.
func EncodeAvatar(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat avatar: %w", err)
	}
	if info.Size() > MaxAvatarBytes {
		return "", ErrAvatarTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read avatar: %w", err)
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
