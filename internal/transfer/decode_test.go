package transfer

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestNewDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello\n", "hello\n"},
		{"bom", "\xef\xbb\xbfhello\n", "hello\n"},
		{"bom only", "\xef\xbb\xbf", ""},
		{"short", "a", "a"},
		{"double bom keeps second", "\xef\xbb\xbf\xef\xbb\xbfx", "\ufeffx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// One byte at a time exercises the short-source paths.
			got, err := io.ReadAll(NewDecoder(iotest.OneByteReader(strings.NewReader(tt.input))))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNewDecoderRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := io.ReadAll(NewDecoder(strings.NewReader("\xef\xbb\xbfok \xc3\x28")))
	require.ErrorIs(t, err, encoding.ErrInvalidUTF8)
}
