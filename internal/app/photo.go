package app

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrImageTooLarge is returned when an upload exceeds the size limit.
	ErrImageTooLarge = errors.New("image too large")
	// ErrNotAnImage is returned when an upload does not sniff as an image.
	ErrNotAnImage = errors.New("not an image")
)

// EncodeDataURL reads r to completion and returns it as a base64 data URL.
// Reads beyond limit bytes fail with ErrImageTooLarge.
func EncodeDataURL(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > limit {
		return "", ErrImageTooLarge
	}
	if len(data) == 0 {
		return "", ErrNotAnImage
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
