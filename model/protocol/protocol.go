package protocol

import "fmt"

// UnknownProtocolID is the reserved sentinel for a missing or unparsed
// protocol identifier. It can never be registered.
const UnknownProtocolID uint64 = 0

// Protocol describes one registered on-chain protocol. The record is
// immutable once accepted into the registry; a chain reorganization removes
// the whole index entry rather than mutating the record in place.
type Protocol struct {
	// ProtocolID is the unique numeric identity of the protocol, derived
	// from its ticker by the transaction parser.
	ProtocolID uint64
	// OwnerID is the key hash of the party that registered the protocol.
	OwnerID KeyID

	// protocol payload, opaque to the registry
	Name              string
	MetadataMimeType  string
	MetadataSchemaURI string
	Transferable      bool
	MaxMetadataSize   uint16
}

// Validate checks the structural preconditions for registration.
func (p *Protocol) Validate() error {
	if p.ProtocolID == UnknownProtocolID {
		return fmt.Errorf("protocol id is the unknown sentinel")
	}
	if p.OwnerID.IsZero() {
		return fmt.Errorf("protocol owner is not set")
	}
	return nil
}
