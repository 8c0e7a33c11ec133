package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// pngDataURLPrefix is the scheme and media type prepended to base64 PNG
// bytes for JSON transport.
const pngDataURLPrefix = "data:image/png;base64,"

// ErrNotDataURL is returned when a string is not a PNG data URL.
var ErrNotDataURL = errors.New("not a PNG data URL")

// ToDataURL encodes raw PNG bytes as a data URL.
func ToDataURL(pngBytes []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}

// FromDataURL decodes a PNG data URL back to raw PNG bytes.
func FromDataURL(s string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(s, pngDataURLPrefix)
	if !ok {
		return nil, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}

	return data, nil
}
