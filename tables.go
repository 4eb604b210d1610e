// A standard RFC 4648 base32 implementation with optional '=' padding.

package base32std

const (
	b32Invalid = 0xFF
	b32Pad     = '='
)

//
// encode and decode tables use the canonical RFC 4648 grammar:
// upper-case only, case sensitive, no aliases
//

var encodeTab, decodeTab = func() ([32]byte, [256]byte) {
	const b32Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b32Invalid
	}

	for i := range b32Chars {
		i := byte(i)
		v := b32Chars[i]

		enc[i] = v
		dec[v] = i
	}

	// The decoder trusts these tables blindly, so prove they agree with
	// each other once, before any call can observe them. A mismatch is a
	// defect in the tables themselves, never a runtime input error.

	for i := range enc {
		if dec[enc[i]] != byte(i) {
			panic("base32std: corrupt alphabet tables")
		}
	}

	n := 0
	for _, v := range dec {
		if v == b32Invalid {
			continue
		}
		if v >= 32 {
			panic("base32std: corrupt alphabet tables")
		}
		n++
	}
	if n != len(enc) || dec[b32Pad] != b32Invalid {
		panic("base32std: corrupt alphabet tables")
	}

	return enc, dec
}()
