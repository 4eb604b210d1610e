package base32std

import (
	"slices"
	"unsafe"
)

// EncodedLength returns the number of bytes required to
// encode n bytes. It returns -1 if the input byte length
// cannot be encoded properly.
//
// When withPadding is true the result is rounded up to the
// next multiple of 8 to cover the trailing '=' run.
//
// If the input is zero, zero will be returned. Remember
// that UnsafeEncode requires the src argument
// to have a length greater than zero.
func EncodedLength(n int, withPadding bool) int {
	if n < 0 {
		return -1
	}

	result := encodedLenExpression(n, withPadding)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

func encodedLenExpression(n int, withPadding bool) int {
	if withPadding {
		g := n / 5
		if n%5 != 0 {
			g++
		}
		return g * 8
	}

	return (n/5)*8 + ((n%5)*8+4)/5
}

func encodedLen(n int, withPadding bool) int {
	result := encodedLenExpression(n, withPadding)
	if result <= n {
		panic("base32std: invalid encode source length")
	}

	return result
}

func encode(dstPtr, srcPtr unsafe.Pointer, n int, withPadding bool) {

	for range n / 5 {
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))
		b4 := *(*byte)(unsafe.Add(srcPtr, 4))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2<<1)|(b3>>7))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[((b3<<3)|(b4>>5))&31]
		*(*byte)(unsafe.Add(dstPtr, 7)) = encodeTab[b4&31]

		srcPtr = unsafe.Add(srcPtr, 5)
		dstPtr = unsafe.Add(dstPtr, 8)
	}

	// Tail: 1-4 leftover bytes become 2/4/5/7 symbols plus, when padding
	// is requested, a 6/4/3/1 run of '=' closing out the 8-symbol group.
	switch n % 5 {
	case 1:
		b0 := *(*byte)(srcPtr)

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[(b0<<2)&31]

		if withPadding {
			for i := 2; i < 8; i++ {
				*(*byte)(unsafe.Add(dstPtr, i)) = b32Pad
			}
		}
	case 2:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[(b1<<4)&31]

		if withPadding {
			for i := 4; i < 8; i++ {
				*(*byte)(unsafe.Add(dstPtr, i)) = b32Pad
			}
		}
	case 3:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[(b2<<1)&31]

		if withPadding {
			for i := 5; i < 8; i++ {
				*(*byte)(unsafe.Add(dstPtr, i)) = b32Pad
			}
		}
	case 4:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2<<1)|(b3>>7))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[(b3<<3)&31]

		if withPadding {
			*(*byte)(unsafe.Add(dstPtr, 7)) = b32Pad
		}
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
// An undersized destination is a caller precondition violation, not a
// recoverable condition.
//
// Knowing the length of the slice now occupied by the encoded form of src
// is the responsibility of the caller. It can easily be computed via
// EncodedLength with the same withPadding value.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= encodedLen(len(src), withPadding)
func UnsafeEncode(dst []byte, src []byte, withPadding bool) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src), withPadding); len(dst) < n {
		panic("base32std: encode destination too short")
	}

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), withPadding)
}

// Encode returns nil if src is empty, otherwise it returns the
// padded encoded form of src.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n, true)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), true)

	return dst
}

// EncodeString returns "" if src is empty, otherwise it returns the
// padded encoded form of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n, true)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(unsafe.StringData(src)), len(src), true)

	return string(dst)
}

// AppendEncode returns the padded encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n, true)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), len(src), true)

	return dst
}

// AppendEncodeString returns the padded encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncodeString(dst []byte, src string) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n, true)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(unsafe.StringData(src)), len(src), true)

	return dst
}
