// This base32 decoding implementation treats non-canonical tail bits as
// noise: leftover low-order bits in the final symbol are masked off rather
// than rejected. The only validation applied to symbols, in full and partial
// groups alike, is the reverse table lookup. Length validation happens once,
// up front, when the decoded size is computed.

package base32std

import (
	"errors"
	"slices"
	"unsafe"
)

const (

	// Only these remainders are possible for base32 data once trailing
	// padding is excluded: 0, 2, 4, 5, 7. Others imply bad input.

	validDecodeRemainder = uint8((1 << 0) | (1 << 2) | (1 << 4) | (1 << 5) | (1 << 7))

	// Longest '=' run a padded encoding can produce (one data byte in the
	// final group leaves six pad symbols). Runs beyond this are not
	// padding and must surface as invalid characters instead.
	maxPadding = 6
)

var (
	ErrInvalidLength = errors.New("base32std: invalid input length")
	ErrInvalidChar   = errors.New("base32std: invalid base32 character")
	ErrDstTooSmall   = errors.New("base32std: destination too small")
)

// countPadding returns the length of the trailing '=' run in src,
// capped at maxPadding.
func countPadding(src []byte) int {
	n := 0
	for i := len(src) - 1; i >= 0 && n < maxPadding; i-- {
		if src[i] != b32Pad {
			break
		}
		n++
	}

	return n
}

// strippedLen excludes the trailing padding run of src and returns the
// decoded byte length along with the count of data-carrying input bytes.
func strippedLen(src []byte) (int, int, error) {
	dataLen := len(src) - countPadding(src)

	rem := dataLen % 8
	if (validDecodeRemainder & (uint8(1) << rem)) == 0 {
		return 0, 0, ErrInvalidLength
	}

	return (dataLen/8)*5 + (rem*5)/8, dataLen, nil
}

// decodedLen returns the decoded byte length for src plus the number of
// input bytes that actually carry data: the source length with any counted
// trailing padding excluded. Callers must decode src[:dataLen] only.
//
// If withPadding is true the source must be a whole number of 8-symbol
// groups and the trailing padding run determines the final group's size.
//
// If withPadding is false the source length itself must leave a remainder
// of 0, 2, 4, 5 or 7 modulo 8. A remainder of zero does not rule out an
// incidentally padded source, so that case still inspects and strips a
// trailing padding run. The two branches are deliberately asymmetric:
// one is a strict length check, the other tolerates padding it was told
// not to expect.
func decodedLen(src []byte, withPadding bool) (decoded, dataLen int, err error) {
	n := len(src)
	if n == 0 {
		return 0, 0, nil
	}

	if withPadding {
		if n%8 != 0 {
			return 0, 0, ErrInvalidLength
		}

		return strippedLen(src)
	}

	rem := n % 8
	if (validDecodeRemainder & (uint8(1) << rem)) == 0 {
		return 0, 0, ErrInvalidLength
	}

	if rem != 0 {
		return (n/8)*5 + (rem*5)/8, n, nil
	}

	return strippedLen(src)
}

// DecodedLength returns the decoded byte length for src and the adjusted
// source length with trailing padding excluded. Subsequent decode calls
// over pre-sized buffers must honor the adjusted length.
func DecodedLength(src []byte, withPadding bool) (decoded, dataLen int, err error) {
	return decodedLen(src, withPadding)
}

func decode(dst []byte, src []byte) error {
	n := len(src)

	srcPtr := unsafe.Pointer(&src[0])
	dstPtr := unsafe.Pointer(&dst[0])

	for range n / 8 {
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]
		c4 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 4))]
		c5 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 5))]
		c6 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 6))]
		c7 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 7))]

		if (c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7) == b32Invalid {
			return ErrInvalidChar
		}

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		*(*byte)(unsafe.Add(dstPtr, 2)) = ((c3&0x0F)<<4 | c4>>1)
		*(*byte)(unsafe.Add(dstPtr, 3)) = ((c4&0x01)<<7 | c5<<2 | c6>>3)
		*(*byte)(unsafe.Add(dstPtr, 4)) = ((c6&0x07)<<5 | c7)

		srcPtr = unsafe.Add(srcPtr, 8)
		dstPtr = unsafe.Add(dstPtr, 5)
	}

	// Tail: 2/4/5/7 remaining symbols yield 1/2/3/4 bytes. Only the
	// fully determined output bytes are written; stray low-order bits of
	// the last symbol fall out of the shifts.
	switch n % 8 {
	case 2:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]

		if (c0 | c1) == b32Invalid {
			return ErrInvalidChar
		}

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
	case 4:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]

		if (c0 | c1 | c2 | c3) == b32Invalid {
			return ErrInvalidChar
		}

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
	case 5:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]
		c4 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 4))]

		if (c0 | c1 | c2 | c3 | c4) == b32Invalid {
			return ErrInvalidChar
		}

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		*(*byte)(unsafe.Add(dstPtr, 2)) = ((c3&0x0F)<<4 | c4>>1)
	case 7:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]
		c4 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 4))]
		c5 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 5))]
		c6 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 6))]

		if (c0 | c1 | c2 | c3 | c4 | c5 | c6) == b32Invalid {
			return ErrInvalidChar
		}

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		*(*byte)(unsafe.Add(dstPtr, 2)) = ((c3&0x0F)<<4 | c4>>1)
		*(*byte)(unsafe.Add(dstPtr, 3)) = ((c4&0x01)<<7 | c5<<2 | c6>>3)
	}

	return nil
}

// UnsafeDecode decodes the source slice into the destination slice.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty, if the source length is
// not a valid encoding length, or if the destination does not have
// enough space in the slice for the decoded form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// Knowing the length of the slice now occupied by the decoded form of src
// is the responsibility of the caller. It can easily be computed via
// DecodedLength before the call.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= the decoded length of src
//
// - len(src) is a valid base32 encoded value length
func UnsafeDecode(dst []byte, src []byte) error {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	n, dataLen, err := decodedLen(src, false)
	if err != nil || n <= 0 {
		panic("base32std: invalid decode source length")
	} else if len(dst) < n {
		panic("base32std: decode destination too short")
	}

	return decode(dst, src[:dataLen])
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// Both padded and un-padded encodings are accepted: a source length that
// is a multiple of 8 has any trailing padding run stripped before
// decoding, and any other valid length is decoded as-is.
//
// If an error occurs during decoding then an error will be returned.
//
// If an error is returned the caller must not assume the returned slice
// is nil. It is the caller's responsibility to choose how to handle a
// non-nil result in such a case. If the data is not sensitive simply
// ignore it. If it is sensitive consider clearing the slice of
// contents. There is no guarantee about the contents of the slice when a
// non-nil error is returned. It could be partially decoded or contain
// empty bytes.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	n, dataLen, err := decodedLen(src, false)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n)

	err = decode(dst, src[:dataLen])
	return dst, err
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then an error will be returned.
//
// If an error is returned the caller must not assume the returned slice
// is nil. It is the caller's responsibility to choose how to handle a
// non-nil result in such a case. If the data is not sensitive simply
// ignore it. If it is sensitive consider clearing the slice of
// newly appended contents. There is no guarantee about the contents of
// the appended slice when a non-nil error is returned. It could be
// partially decoded or contain empty bytes.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	n, dataLen, err := decodedLen(src, false)
	if err != nil {
		return nil, err
	}
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	err = decode(dst[orig:], src[:dataLen])
	return dst, err
}

// DecodeTo fills dst with the decoded form of src and returns the number
// of bytes written.
//
// The source must be a complete padded encoding: a whole number of
// 8-symbol groups, else ErrInvalidLength is returned. The destination
// must hold at least the computed decoded size, else ErrDstTooSmall is
// returned and nothing is written.
func DecodeTo(dst []byte, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	n, dataLen, err := decodedLen(src, true)
	if err != nil {
		return 0, err
	}

	if len(dst) < n {
		return 0, ErrDstTooSmall
	}

	if err := decode(dst, src[:dataLen]); err != nil {
		return 0, err
	}

	return n, nil
}
