package base32std

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	const (
		b32Chars         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
		invalidDecodeVal = byte(b32Invalid)
	)

	is := assert.New(t)

	for i := range 256 {
		c := byte(i)

		idx := int8(strings.IndexByte(b32Chars, c))
		if idx == -1 {
			is.Equal(invalidDecodeVal, decodeTab[c])
			continue
		}

		is.Equal(idx, int8(decodeTab[c]))
		is.Equal(c, encodeTab[idx])
	}

	// the grammar is case sensitive: lower case letters never decode
	is.Equal(invalidDecodeVal, decodeTab['a'])
	is.Equal(invalidDecodeVal, decodeTab['z'])

	// padding is handled before table lookups ever see it
	is.Equal(invalidDecodeVal, decodeTab[b32Pad])

	// '0' and '1' are not part of the RFC 4648 alphabet
	is.Equal(invalidDecodeVal, decodeTab['0'])
	is.Equal(invalidDecodeVal, decodeTab['1'])
}
