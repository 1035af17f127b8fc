package ss58

import (
	"bytes"

	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// Address is a validated SS58 address: the network Format it was issued for, the raw account identifier it carries and
// the checksummed raw bytes it was decoded from.
type Address struct {
	format    Format
	accountID []byte
	raw       []byte
}

// Format returns the network Format the Address belongs to.
func (a *Address) Format() Format {
	return a.format
}

// AccountID returns the raw account identifier bytes between the format prefix and the checksum suffix.
func (a *Address) AccountID() []byte {
	return a.accountID
}

// Bytes returns the checksummed raw byte representation of the Address (format prefix, account identifier, checksum).
func (a *Address) Bytes() []byte {
	return a.raw
}

// Base58 returns the base58 encoded version of the Address.
func (a *Address) Base58() string {
	return base58.Encode(a.raw)
}

// Equals returns true if the two Addresses carry the same Format and account identifier.
func (a *Address) Equals(other *Address) bool {
	return a.format == other.format && bytes.Equal(a.accountID, other.accountID)
}

// Clone creates a copy of the Address.
func (a *Address) Clone() *Address {
	clonedAccountID := make([]byte, len(a.accountID))
	copy(clonedAccountID, a.accountID)
	clonedRaw := make([]byte, len(a.raw))
	copy(clonedRaw, a.raw)

	return &Address{
		format:    a.format,
		accountID: clonedAccountID,
		raw:       clonedRaw,
	}
}

// String returns a human readable version of the Address for debug purposes.
func (a *Address) String() string {
	return stringify.Struct("Address",
		stringify.StructField("Format", a.format),
		stringify.StructField("AccountID", a.accountID),
		stringify.StructField("Base58", a.Base58()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
