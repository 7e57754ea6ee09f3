package protocol

import "encoding/hex"

// KeyID references the public key hash of a registering party.
type KeyID [20]byte

// ZeroKeyID is the null key reference. A registered protocol never carries
// it as owner.
var ZeroKeyID = KeyID{}

// String returns the hex string representation of the key hash.
func (k KeyID) String() string {
	return hex.EncodeToString(k[:])
}

// IsZero returns whether the key reference is unset.
func (k KeyID) IsZero() bool {
	return k == ZeroKeyID
}
