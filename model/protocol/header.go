package protocol

import "time"

// Header is the minimal chain position the consensus engine hands to the
// registry on every block connect and disconnect. It stands in for the full
// block index maintained by chain state.
type Header struct {
	Height      uint64
	ParentID    Identifier
	PayloadHash Identifier
	Timestamp   time.Time
}

// ID returns a collision-resistant identifier of the header.
func (h Header) ID() Identifier {
	return MakeID(h)
}
