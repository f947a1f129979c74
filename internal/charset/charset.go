// Package charset decodes marketplace export files into UTF-8. The
// marketplace is known to emit exactly two encodings: UTF-8 (usually with a
// byte-order mark) and Latin-1.
package charset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw file bytes to a UTF-8 string. A UTF-8 byte-order mark
// is stripped; input that is not valid UTF-8 falls back to Latin-1.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("latin-1 fallback decode failed: %w", err)
	}
	return string(decoded), nil
}
