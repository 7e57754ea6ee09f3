package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/meridianchain/protoregistry/model/protocol"
	"github.com/meridianchain/protoregistry/module"
	"github.com/meridianchain/protoregistry/module/metrics"
	"github.com/meridianchain/protoregistry/storage"
	"github.com/meridianchain/protoregistry/storage/badger/operation"
)

// ProtocolEntries implements storage.ProtocolEntries on top of a badger DB,
// with an LRU read cache in front of the disk index.
type ProtocolEntries struct {
	db    *badger.DB
	cache *Cache[uint64, *protocol.IndexEntry]
}

var _ storage.ProtocolEntries = (*ProtocolEntries)(nil)

func NewProtocolEntries(collector module.CacheMetrics, db *badger.DB) *ProtocolEntries {

	retrieve := func(protocolID uint64) func(*badger.Txn) (*protocol.IndexEntry, error) {
		return func(tx *badger.Txn) (*protocol.IndexEntry, error) {
			var entry protocol.IndexEntry
			err := operation.RetrieveProtocolEntry(protocolID, &entry)(tx)
			if err != nil {
				return nil, err
			}
			return &entry, nil
		}
	}

	p := &ProtocolEntries{
		db: db,
		cache: newCache[uint64, *protocol.IndexEntry](collector, metrics.ResourceProtocolEntry,
			withLimit[uint64, *protocol.IndexEntry](10_000),
			withRetrieve(retrieve),
		),
	}

	return p
}

// TotalCount returns the persisted entry count, or storage.ErrNotFound if it
// was never written.
func (p *ProtocolEntries) TotalCount() (uint64, error) {
	var count uint64
	err := p.db.View(operation.RetrieveTotalProtocolCount(&count))
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateTotalCount persists the entry count, inserting the key on first use.
func (p *ProtocolEntries) UpdateTotalCount(count uint64) error {
	err := p.db.Update(operation.UpdateTotalProtocolCount(count))
	if err != nil {
		return fmt.Errorf("could not persist total protocol count: %w", err)
	}
	return nil
}

// Store persists a new index entry keyed by its protocol id and warms the
// read cache. A duplicate id errors with storage.ErrAlreadyExists.
func (p *ProtocolEntries) Store(entry *protocol.IndexEntry) error {
	protocolID := entry.Protocol.ProtocolID
	err := p.db.Update(operation.InsertProtocolEntry(protocolID, entry))
	if err != nil {
		return fmt.Errorf("could not store protocol entry %d: %w", protocolID, err)
	}
	p.cache.Insert(protocolID, entry)
	return nil
}

// ByProtocolID returns the stored entry for the protocol id, reading through
// the cache. An absent id errors with storage.ErrNotFound.
func (p *ProtocolEntries) ByProtocolID(protocolID uint64) (*protocol.IndexEntry, error) {
	tx := p.db.NewTransaction(false)
	defer tx.Discard()
	return p.cache.Get(protocolID)(tx)
}

// Remove deletes the stored entry for the protocol id and drops it from the
// cache. An absent id errors with storage.ErrNotFound.
func (p *ProtocolEntries) Remove(protocolID uint64) error {
	err := p.db.Update(operation.RemoveProtocolEntry(protocolID))
	if err != nil {
		return err
	}
	p.cache.Remove(protocolID)
	return nil
}

// ForEach streams all stored entries in ascending protocol id order. It
// bypasses the cache; it is only used to rebuild the in-memory index at
// startup.
func (p *ProtocolEntries) ForEach(handle func(entry *protocol.IndexEntry) error) error {
	return p.db.View(operation.TraverseProtocolEntries(handle))
}
