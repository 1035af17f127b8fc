// Package scale encodes native primitives into the compact little-endian wire format consumed by Substrate-family
// runtimes: bounds-checked fixed-width unsigned integers, single byte compact length-prefixed strings, fixed-width
// addresses and optional-value tagging.
package scale

import (
	"math/big"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/marshalutil"
)

// Width selects the wire width of an unsigned integer encoding.
type Width int

const (
	// Width32 encodes into 4 little-endian bytes.
	Width32 Width = 32

	// Width64 encodes into 8 little-endian bytes.
	Width64 Width = 64

	// Width128 encodes into 16 little-endian bytes.
	Width128 Width = 128
)

const (
	// FixedAddressLength is the byte length of a fixed-width native chain address.
	FixedAddressLength = 20

	// MaxStringLength is the highest character count that fits the single byte compact length encoding, which keeps
	// the two low bits of the length byte as the mode tag.
	MaxStringLength = 63
)

var (
	// ErrValueTooLarge is returned when a numeric value does not fit the target wire width.
	ErrValueTooLarge = errors.New("value too large for target width")

	// ErrStringTooLong is returned when a string exceeds the maximum encodable character count.
	ErrStringTooLong = errors.New("string too long")

	// ErrUnsupportedWidth is returned when the target width is not one of the supported wire widths.
	ErrUnsupportedWidth = errors.New("unsupported width")
)

// FixedAddress is a fixed-width 20 byte account address of the native chain.
type FixedAddress [FixedAddressLength]byte

// EncodeUint encodes value into exactly width/8 little-endian bytes. Negative values and values exceeding the maximum
// representable unsigned integer of the target width are rejected; no silent truncation ever happens, since a wrapped
// value would corrupt a downstream balance or identifier field.
func EncodeUint(value *big.Int, width Width) (encoded []byte, err error) {
	switch width {
	case Width32, Width64, Width128:
	default:
		err = errors.Errorf("width %d: %w", width, ErrUnsupportedWidth)
		return
	}

	if value.Sign() < 0 || value.BitLen() > int(width) {
		err = errors.Errorf("value %s does not fit an unsigned %d bit integer: %w", value, width, ErrValueTooLarge)
		return
	}

	switch width {
	case Width32:
		encoded = marshalutil.New(4).WriteUint32(uint32(value.Uint64())).Bytes()
	case Width64:
		encoded = marshalutil.New(8).WriteUint64(value.Uint64()).Bytes()
	default:
		bigEndian := value.Bytes()
		encoded = make([]byte, 16)
		for i, digit := range bigEndian {
			encoded[len(bigEndian)-1-i] = digit
		}
	}

	return
}

// EncodeUint32 encodes value into 4 little-endian bytes.
func EncodeUint32(value uint64) ([]byte, error) {
	return EncodeUint(new(big.Int).SetUint64(value), Width32)
}

// EncodeUint64 encodes value into 8 little-endian bytes.
func EncodeUint64(value uint64) ([]byte, error) {
	return EncodeUint(new(big.Int).SetUint64(value), Width64)
}

// EncodeUint128 encodes value into 16 little-endian bytes.
func EncodeUint128(value *big.Int) ([]byte, error) {
	return EncodeUint(value, Width128)
}

// EncodeString encodes text as a single compact length byte (the character count shifted past the two mode tag bits)
// followed by the raw UTF-8 bytes. Texts above MaxStringLength characters would need a wider length encoding and are
// rejected.
func EncodeString(text string) (encoded []byte, err error) {
	characterCount := utf8.RuneCountInString(text)
	if characterCount > MaxStringLength {
		err = errors.Errorf("%d characters exceed the single byte compact limit of %d: %w", characterCount, MaxStringLength, ErrStringTooLong)
		return
	}

	encoded = marshalutil.New(1 + len(text)).
		WriteByte(byte(characterCount << 2)).
		WriteBytes([]byte(text)).
		Bytes()

	return
}

// EncodeFixedAddress returns the raw fixed-width byte representation of addr, unchanged.
func EncodeFixedAddress(addr FixedAddress) []byte {
	return addr[:]
}

// EncodeOption tags an optional value: the absent marker 0x00 when encodeValue is nil, otherwise 0x01 followed by the
// encoded value.
func EncodeOption(encodeValue func() ([]byte, error)) (encoded []byte, err error) {
	if encodeValue == nil {
		encoded = []byte{0x00}
		return
	}

	encodedValue, err := encodeValue()
	if err != nil {
		err = errors.Errorf("failed to encode optional value: %w", err)
		return
	}
	encoded = byteutils.ConcatBytes([]byte{0x01}, encodedValue)

	return
}

// EncodeOptionalFixedAddress tags an optional fixed-width address: the absent marker 0x00 when addr is nil, otherwise
// 0x01 followed by the raw address bytes.
func EncodeOptionalFixedAddress(addr *FixedAddress) []byte {
	if addr == nil {
		return []byte{0x00}
	}

	return byteutils.ConcatBytes([]byte{0x01}, EncodeFixedAddress(*addr))
}
