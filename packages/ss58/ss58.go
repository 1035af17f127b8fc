// Package ss58 decodes and encodes SS58 account addresses: base58 strings that layer a network format prefix and a
// BLAKE2b based checksum over a raw account identifier.
package ss58

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// checksumPrefix is the fixed domain separator hashed together with the address payload to derive the checksum.
var checksumPrefix = []byte("SS58PRE")

var (
	// ErrBase58DecodeFailed is returned when the address string contains characters outside the base58 alphabet.
	ErrBase58DecodeFailed = errors.New("failed to decode base58 encoded string")

	// ErrReservedFormat is returned when an address carries one of the reserved format identifiers.
	ErrReservedFormat = errors.New("reserved SS58 format")

	// ErrInvalidLength is returned when the raw address length matches no known checksum bucket.
	ErrInvalidLength = errors.New("invalid address length")

	// ErrInvalidChecksum is returned when the embedded checksum does not match the recomputed one.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrInvalidFormat is returned when a format identifier outside the representable 14 bit range is encoded.
	ErrInvalidFormat = errors.New("invalid SS58 format")
)

// Decode parses a base58 encoded SS58 address string into a validated Address. It fails if the string is not valid
// base58, if the embedded format identifier is reserved, if the raw length matches no known checksum bucket or if the
// embedded checksum does not match the recomputed one.
func Decode(addressString string) (address *Address, err error) {
	raw, err := base58.Decode(addressString)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded address (%v): %w", err, ErrBase58DecodeFailed)
		return
	}

	if address, err = decodeBytes(raw); err != nil {
		err = errors.Errorf("failed to parse address %q: %w", addressString, err)
		return
	}

	return
}

// DecodeAccountID parses a base58 encoded SS58 address string and returns the raw account identifier bytes.
func DecodeAccountID(addressString string) (accountID []byte, err error) {
	address, err := Decode(addressString)
	if err != nil {
		return
	}
	accountID = address.AccountID()

	return
}

// DecodeOptionalAccountID parses an optional SS58 address string: the empty string yields the absent marker 0x00, any
// other string yields 0x01 followed by the decoded account identifier bytes.
func DecodeOptionalAccountID(addressString string) (encoded []byte, err error) {
	if addressString == "" {
		encoded = []byte{0x00}
		return
	}

	accountID, err := DecodeAccountID(addressString)
	if err != nil {
		return
	}
	encoded = byteutils.ConcatBytes([]byte{0x01}, accountID)

	return
}

// Encode derives the canonical SS58 address string for the given Format and account identifier bytes. The checksum
// size is the smallest one that decodes back to the same split under the length table: a single byte for the short
// identifier sizes, two bytes for 32 and 33 byte public keys. Account identifier sizes that no total length in the
// table can represent are rejected.
func Encode(format Format, accountID []byte) (addressString string, err error) {
	if format > MaxFormat {
		err = errors.Errorf("format %d does not fit the 14 bit prefix scheme: %w", format, ErrInvalidFormat)
		return
	}
	if format.Reserved() {
		err = errors.Errorf("format %d: %w", format, ErrReservedFormat)
		return
	}

	prefix := encodeFormatPrefix(format)
	checksumLen := 0
	for candidate := 1; candidate <= 8; candidate++ {
		fromTable, tableErr := checksumLength(len(prefix)+len(accountID)+candidate, len(prefix))
		if tableErr == nil && fromTable == candidate {
			checksumLen = candidate
			break
		}
	}
	if checksumLen == 0 {
		err = errors.Errorf("account identifier of %d bytes matches no checksum bucket for format %d: %w", len(accountID), format, ErrInvalidLength)
		return
	}

	body := byteutils.ConcatBytes(prefix, accountID)
	addressString = base58.Encode(byteutils.ConcatBytes(body, checksum(body)[:checksumLen]))

	return
}

// decodeBytes validates the raw byte form of an SS58 address and extracts the Address it carries. The sequence has a
// single linear path with exactly four failure exits: invalid length, reserved format, unknown length bucket and
// checksum mismatch (the base58 failure exit lives in Decode).
func decodeBytes(raw []byte) (address *Address, err error) {
	if len(raw) < 2 {
		err = errors.Errorf("raw address of %d bytes cannot hold a format prefix and a checksum: %w", len(raw), ErrInvalidLength)
		return
	}

	prefix := parseFormatPrefix(raw)
	if prefix.format.Reserved() {
		err = errors.Errorf("format %d: %w", prefix.format, ErrReservedFormat)
		return
	}

	checksumLen, err := checksumLength(len(raw), prefix.length)
	if err != nil {
		return
	}

	checksumOffset := len(raw) - checksumLen
	expectedChecksum := checksum(raw[:checksumOffset])[:checksumLen]
	if !bytes.Equal(expectedChecksum, raw[checksumOffset:]) {
		err = errors.Errorf("expected checksum %x but address embeds %x: %w", expectedChecksum, raw[checksumOffset:], ErrInvalidChecksum)
		return
	}

	address = &Address{
		format:    prefix.format,
		accountID: raw[prefix.length:checksumOffset],
		raw:       raw,
	}

	return
}

// checksumLength returns the number of trailing checksum bytes for a raw address of the given total length. The two
// public key buckets shift with the prefix length, every other bucket is fixed; lengths outside the table are invalid.
func checksumLength(totalLength, prefixLength int) (checksumLen int, err error) {
	for _, bucket := range []struct {
		lengths     []int
		checksumLen int
	}{
		{[]int{3, 4, 6, 10}, 1},
		{[]int{5, 7, 11, 34 + prefixLength, 35 + prefixLength}, 2},
		{[]int{8, 12}, 3},
		{[]int{9, 13}, 4},
		{[]int{14}, 5},
		{[]int{15}, 6},
		{[]int{16}, 7},
		{[]int{17}, 8},
	} {
		for _, length := range bucket.lengths {
			if totalLength == length {
				checksumLen = bucket.checksumLen
				return
			}
		}
	}

	err = errors.Errorf("no checksum bucket for raw address of %d bytes: %w", totalLength, ErrInvalidLength)

	return
}

// checksum derives the full BLAKE2b-512 digest that the embedded checksum bytes are a prefix of.
func checksum(payload []byte) []byte {
	digest := blake2b.Sum512(byteutils.ConcatBytes(checksumPrefix, payload))

	return digest[:]
}
