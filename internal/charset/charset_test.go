package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"Plain UTF-8", []byte("Item number,Title"), "Item number,Title"},
		{"UTF-8 with BOM", append([]byte{0xEF, 0xBB, 0xBF}, []byte("Item number")...), "Item number"},
		{"UTF-8 multibyte", []byte("Café décor"), "Café décor"},
		{"Latin-1 fallback", []byte{'C', 'a', 'f', 0xE9}, "Café"},
		{"Empty", []byte{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
