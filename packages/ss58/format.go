package ss58

import (
	"strconv"
)

// region Format ///////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// PolkadotFormat identifies addresses of the Polkadot relay chain.
	PolkadotFormat Format = 0

	// KusamaFormat identifies addresses of the Kusama canary network.
	KusamaFormat Format = 2

	// SubstrateFormat identifies addresses of generic Substrate chains.
	SubstrateFormat Format = 42

	// MaxFormat is the highest format identifier that fits the 14 bit prefix scheme.
	MaxFormat Format = 16383
)

// Format represents the network identifier embedded in the prefix of an SS58 address. Identifiers 0-63 occupy a single
// prefix byte, identifiers 64-16383 occupy two bit-packed prefix bytes.
type Format uint16

// Reserved returns true if the Format belongs to the reserved set that addresses may never carry.
func (f Format) Reserved() bool {
	return f == 46 || f == 47
}

// Network returns the name of the network the Format is registered for, or "unknown" for unregistered identifiers.
func (f Format) Network() string {
	switch f {
	case PolkadotFormat:
		return "polkadot"
	case KusamaFormat:
		return "kusama"
	case SubstrateFormat:
		return "substrate"
	default:
		return "unknown"
	}
}

// String returns a human readable version of the Format for debug purposes.
func (f Format) String() string {
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region formatPrefix /////////////////////////////////////////////////////////////////////////////////////////////////

// formatPrefix is the parsed leading prefix of a raw SS58 address: how many bytes it occupies and the Format it
// reconstructs.
type formatPrefix struct {
	length int
	format Format
}

// parseFormatPrefix reads the variable-length format prefix from the given raw address bytes. Bit 0x40 of the first
// byte selects between the single-byte form (identifiers 0-63) and the two-byte bit-packed form (identifiers 64-16383).
// The reconstructed identifier spans up to 14 bits and therefore lives in a uint16-backed Format.
func parseFormatPrefix(raw []byte) formatPrefix {
	if raw[0]&0b0100_0000 == 0 {
		return formatPrefix{
			length: 1,
			format: Format(raw[0]),
		}
	}

	return formatPrefix{
		length: 2,
		format: Format(raw[0]&0b0011_1111)<<2 | Format(raw[1]>>6) | Format(raw[1]&0b0011_1111)<<8,
	}
}

// encodeFormatPrefix returns the canonical minimal prefix bytes for the given Format.
func encodeFormatPrefix(format Format) []byte {
	if format <= 63 {
		return []byte{byte(format)}
	}

	return []byte{
		byte(format&0b0000_0000_1111_1100)>>2 | 0b0100_0000,
		byte(format>>8) | byte(format&0b0000_0000_0000_0011)<<6,
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
