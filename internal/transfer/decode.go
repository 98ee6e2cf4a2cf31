package transfer

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewDecoder wraps r so that reads yield UTF-8 text with any leading
// byte-order mark removed. Ill-formed UTF-8 surfaces as a read error
// instead of being replaced.
func NewDecoder(r io.Reader) io.Reader {
	// Validate first: BOMOverride's UTF-8 path replaces bad bytes with U+FFFD.
	return transform.NewReader(r, transform.Chain(
		encoding.UTF8Validator,
		unicode.BOMOverride(transform.Nop),
	))
}
