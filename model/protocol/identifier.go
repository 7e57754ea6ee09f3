package protocol

import (
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
	"golang.org/x/crypto/sha3"
)

// Identifier represents a 32-byte content hash used to reference blocks and
// transactions throughout the registry.
type Identifier [32]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero returns whether the identifier equals the zero sentinel.
func (id Identifier) IsZero() bool {
	return id == ZeroID
}

// HashToID copies a raw hash into an Identifier.
func HashToID(hash []byte) Identifier {
	var id Identifier
	copy(id[:], hash)
	return id
}

// MakeID derives the identifier of an arbitrary entity by hashing its
// canonical msgpack encoding with SHA3-256. Entities used with MakeID must
// have a deterministic encoding.
func MakeID(entity interface{}) Identifier {
	data, err := msgpack.Marshal(entity)
	if err != nil {
		panic(fmt.Sprintf("could not encode entity for hashing: %v", err))
	}
	hash := sha3.Sum256(data)
	return HashToID(hash[:])
}
