// Package upload converts payment-proof files into the embedded
// data-URL form the registration API stores. Size and type are checked
// here, before the validation engine ever sees the field.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSize caps uploaded payment proofs at 20MB.
const MaxSize = 20 << 20

var (
	ErrFileTooLarge    = fmt.Errorf("the file is too large, maximum size is %dMB", MaxSize>>20)
	ErrUnsupportedType = errors.New("unsupported file type, upload a PDF, JPG or PNG")
)

var allowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}

// Encode validates the raw file content and returns it as a base64
// data URL.
func Encode(data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !allowed(mtype) {
		return "", ErrUnsupportedType
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile reads and encodes the file at path.
func EncodeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("os.Stat -> %w", err)
	}
	if info.Size() > MaxSize {
		return "", ErrFileTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile -> %w", err)
	}

	return Encode(data)
}

func allowed(mtype *mimetype.MIME) bool {
	for _, t := range allowedTypes {
		if mtype.Is(t) {
			return true
		}
	}

	return false
}
