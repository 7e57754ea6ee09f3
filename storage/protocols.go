package storage

import (
	"github.com/meridianchain/protoregistry/model/protocol"
)

// ProtocolEntries persists the registry's index entries together with the
// total entry count. Implementations must keep both durable; the registry
// mirrors them in memory and writes through on every mutation.
type ProtocolEntries interface {

	// TotalCount returns the persisted number of stored entries.
	// It returns ErrNotFound if no count was ever written.
	TotalCount() (uint64, error)

	// UpdateTotalCount persists the total entry count, inserting the key on
	// first use.
	UpdateTotalCount(count uint64) error

	// Store persists a new index entry keyed by its protocol id.
	// It returns ErrAlreadyExists if an entry with that id is already stored.
	Store(entry *protocol.IndexEntry) error

	// ByProtocolID returns the stored entry for the given protocol id.
	// It returns ErrNotFound if no such entry exists.
	ByProtocolID(protocolID uint64) (*protocol.IndexEntry, error)

	// Remove deletes the entry with the given protocol id.
	// It returns ErrNotFound if no such entry exists.
	Remove(protocolID uint64) error

	// ForEach streams every stored entry exactly once, in ascending protocol
	// id order. It is used to rebuild the in-memory index at startup.
	ForEach(handle func(entry *protocol.IndexEntry) error) error
}
