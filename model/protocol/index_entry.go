package protocol

// Anchor records the chain provenance of a registration: the block and the
// transaction that introduced it. An entry's anchor never changes after
// insertion; if the anchoring block is reorganized out, the whole entry is
// deleted instead of being re-anchored.
type Anchor struct {
	Height  uint64
	BlockID Identifier
	TxID    Identifier
}

// IndexEntry joins an anchor with the registered protocol record. It is the
// unit held by the in-memory index and by the persistent store. The protocol
// payload is immutable after construction and may be shared between both
// without synchronization.
type IndexEntry struct {
	Anchor   Anchor
	Protocol *Protocol
}

// NewIndexEntry anchors a protocol record at the block and transaction that
// registered it.
func NewIndexEntry(proto *Protocol, txID Identifier, header *Header) *IndexEntry {
	return &IndexEntry{
		Anchor: Anchor{
			Height:  header.Height,
			BlockID: header.ID(),
			TxID:    txID,
		},
		Protocol: proto,
	}
}
