package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/meridianchain/protoregistry/model/protocol"
)

// InsertProtocolEntry stores a new index entry keyed by its protocol id.
func InsertProtocolEntry(protocolID uint64, entry *protocol.IndexEntry) func(*badger.Txn) error {
	return insert(makePrefix(codeProtocolEntry, protocolID), entry)
}

// RetrieveProtocolEntry retrieves the index entry for a protocol id.
func RetrieveProtocolEntry(protocolID uint64, entry *protocol.IndexEntry) func(*badger.Txn) error {
	return retrieve(makePrefix(codeProtocolEntry, protocolID), entry)
}

// RemoveProtocolEntry removes the index entry for a protocol id.
func RemoveProtocolEntry(protocolID uint64) func(*badger.Txn) error {
	return remove(makePrefix(codeProtocolEntry, protocolID))
}

// ExistsProtocolEntry checks whether an index entry for the protocol id is
// stored.
func ExistsProtocolEntry(protocolID uint64, result *bool) func(*badger.Txn) error {
	return exists(makePrefix(codeProtocolEntry, protocolID), result)
}

// TraverseProtocolEntries iterates over all stored index entries in
// ascending protocol id order.
func TraverseProtocolEntries(handle func(entry *protocol.IndexEntry) error) func(*badger.Txn) error {
	return traverse(makePrefix(codeProtocolEntry), func() (createFunc, handleFunc) {
		var entry *protocol.IndexEntry
		create := func() interface{} {
			entry = &protocol.IndexEntry{}
			return entry
		}
		handleEntry := func() error {
			return handle(entry)
		}
		return create, handleEntry
	})
}

// UpdateTotalProtocolCount persists the total number of stored protocol
// entries, inserting the key on first use.
func UpdateTotalProtocolCount(count uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeTotalCount), count)
}

// RetrieveTotalProtocolCount retrieves the total number of stored protocol
// entries.
func RetrieveTotalProtocolCount(count *uint64) func(*badger.Txn) error {
	return retrieve(makePrefix(codeTotalCount), count)
}
