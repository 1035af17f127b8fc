package ss58

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownAddress = "5GKWfWMDt1BdvT9Bj2KpUC7zLmK3hJJpaCTJ7naSLeFw5eJc"

func TestDecodeKnownAddress(t *testing.T) {
	address, err := Decode(knownAddress)
	require.NoError(t, err)
	assert.Equal(t, SubstrateFormat, address.Format())
	assert.Len(t, address.AccountID(), 32)
	assert.Equal(t, knownAddress, address.Base58())
}

func TestDecodeRejectsMutatedAddress(t *testing.T) {
	mutated := knownAddress[:len(knownAddress)-1] + "d"
	_, err := Decode(mutated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidChecksum))
}

func TestDecodeRejectsNonBase58(t *testing.T) {
	_, err := Decode("0OIl+/=")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBase58DecodeFailed))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// the representable account identifier sizes differ between the prefix widths because the checksum table is
	// keyed on the total raw length
	accountIDSizes := map[int][]int{
		1: {1, 2, 4, 8, 32, 33},
		2: {1, 3, 7, 32, 33},
	}

	for _, format := range []Format{0, 2, 42, 63, 64, 255, 16383} {
		prefixLength := 1
		if format > 63 {
			prefixLength = 2
		}

		for _, accountIDSize := range accountIDSizes[prefixLength] {
			accountID := make([]byte, accountIDSize)
			for i := range accountID {
				accountID[i] = byte(i + 1)
			}

			encoded, err := Encode(format, accountID)
			require.NoError(t, err)

			address, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, format, address.Format())
			assert.Equal(t, accountID, address.AccountID())
			assert.Equal(t, encoded, address.Base58())
		}
	}
}

func TestDecodeRejectsReservedFormats(t *testing.T) {
	accountID := make([]byte, 32)
	for _, format := range []Format{46, 47} {
		// build raw bytes with a correct checksum so only the reserved format can be blamed
		body := byteutils.ConcatBytes([]byte{byte(format)}, accountID)
		raw := byteutils.ConcatBytes(body, checksum(body)[:2])

		_, err := decodeBytes(raw)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrReservedFormat))

		_, err = Encode(format, accountID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrReservedFormat))
	}
}

func TestDecodeRejectsUnknownLengths(t *testing.T) {
	for _, size := range []int{0, 1, 2, 18, 33, 100} {
		_, err := decodeBytes(make([]byte, size))
		require.Error(t, err, "raw length %d", size)
		assert.True(t, errors.Is(err, ErrInvalidLength), "raw length %d", size)
	}
}

func TestChecksumSensitivity(t *testing.T) {
	accountID := make([]byte, 32)
	for i := range accountID {
		accountID[i] = byte(i)
	}

	encoded, err := Encode(SubstrateFormat, accountID)
	require.NoError(t, err)
	raw, err := base58.Decode(encoded)
	require.NoError(t, err)

	for i := range raw {
		for _, flip := range []byte{0x01, 0x80} {
			mutated := make([]byte, len(raw))
			copy(mutated, raw)
			mutated[i] ^= flip

			_, err := decodeBytes(mutated)
			require.Error(t, err, "byte %d flip %x", i, flip)
			assert.True(t, errors.Is(err, ErrInvalidChecksum), "byte %d flip %x", i, flip)
		}
	}
}

func TestChecksumLengthTable(t *testing.T) {
	expectedBuckets := map[int]int{
		3: 1, 4: 1, 6: 1, 10: 1,
		5: 2, 7: 2, 11: 2, 35: 2, 36: 2,
		8: 3, 12: 3,
		9: 4, 13: 4,
		14: 5, 15: 6, 16: 7, 17: 8,
	}
	for totalLength, expected := range expectedBuckets {
		actual, err := checksumLength(totalLength, 1)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "total length %d", totalLength)
	}

	// the public key buckets shift with a two byte prefix
	for _, totalLength := range []int{36, 37} {
		actual, err := checksumLength(totalLength, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, actual, "total length %d", totalLength)
	}

	for _, totalLength := range []int{0, 1, 2, 18, 34, 37, 100} {
		_, err := checksumLength(totalLength, 1)
		require.Error(t, err, "total length %d", totalLength)
		assert.True(t, errors.Is(err, ErrInvalidLength), "total length %d", totalLength)
	}
}

func TestFormatPrefixBoundaries(t *testing.T) {
	for _, format := range []Format{0, 42, 63} {
		prefix := encodeFormatPrefix(format)
		require.Len(t, prefix, 1)

		parsed := parseFormatPrefix(prefix)
		assert.Equal(t, 1, parsed.length)
		assert.Equal(t, format, parsed.format)
	}

	for _, format := range []Format{64, 255, 256, 16383} {
		prefix := encodeFormatPrefix(format)
		require.Len(t, prefix, 2)

		parsed := parseFormatPrefix(prefix)
		assert.Equal(t, 2, parsed.length)
		assert.Equal(t, format, parsed.format)
	}
}

func TestEncodeRejectsInvalidInputs(t *testing.T) {
	accountID := make([]byte, 32)

	_, err := Encode(MaxFormat+1, accountID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	// a 3 byte identifier has no consistent checksum bucket behind a single byte prefix, a 2 byte identifier has
	// none behind a two byte prefix
	_, err = Encode(SubstrateFormat, make([]byte, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLength))

	_, err = Encode(Format(64), make([]byte, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestDecodeOptionalAccountID(t *testing.T) {
	encoded, err := DecodeOptionalAccountID("")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, encoded)

	encoded, err = DecodeOptionalAccountID(knownAddress)
	require.NoError(t, err)
	require.Len(t, encoded, 33)
	assert.EqualValues(t, 0x01, encoded[0])

	accountID, err := DecodeAccountID(knownAddress)
	require.NoError(t, err)
	assert.Equal(t, accountID, encoded[1:])
}

func TestFormatNetwork(t *testing.T) {
	assert.Equal(t, "polkadot", PolkadotFormat.Network())
	assert.Equal(t, "kusama", KusamaFormat.Network())
	assert.Equal(t, "substrate", SubstrateFormat.Network())
	assert.Equal(t, "unknown", Format(7).Network())
}

func TestAddressEqualsAndClone(t *testing.T) {
	address, err := Decode(knownAddress)
	require.NoError(t, err)

	cloned := address.Clone()
	assert.True(t, address.Equals(cloned))
	assert.Equal(t, address.Bytes(), cloned.Bytes())

	other, err := Encode(KusamaFormat, address.AccountID())
	require.NoError(t, err)
	otherAddress, err := Decode(other)
	require.NoError(t, err)
	assert.False(t, address.Equals(otherAddress))
}
