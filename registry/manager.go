package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/meridianchain/protoregistry/model/protocol"
	"github.com/meridianchain/protoregistry/module"
	"github.com/meridianchain/protoregistry/storage"
)

// Manager is the authoritative registry of on-chain protocol records. It
// mirrors the persistent store in memory, writes through on every mutation,
// and answers identity, ownership and pagination queries consistently with
// the validated chain tip, including across reorganizations.
//
// The node constructs a single Manager and passes it by reference to the
// consensus engine (block connect/disconnect) and to query callers. All
// public methods are safe for concurrent use; they serialize on one mutex
// and never block while holding it.
type Manager struct {
	mu      sync.Mutex
	log     zerolog.Logger
	metrics module.RegistryMetrics
	entries storage.ProtocolEntries

	index *protoIndex
	total *atomic.Uint64

	tipHeight uint64
	tipID     protocol.Identifier
}

// NewManager restores the registry state from the persistent store: the
// total count is read once and the in-memory index is rebuilt from a full
// entry stream. A duplicate protocol id in stored data indicates store
// corruption and fails the restore rather than continuing with an
// inconsistent index.
func NewManager(log zerolog.Logger, collector module.RegistryMetrics, entries storage.ProtocolEntries) (*Manager, error) {

	m := &Manager{
		log:     log.With().Str("component", "protocol_registry").Logger(),
		metrics: collector,
		entries: entries,
		index:   newProtoIndex(),
		total:   atomic.NewUint64(0),
	}

	count, err := entries.TotalCount()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("could not read total protocol count: %w", err)
	}
	m.total.Store(count)

	err = entries.ForEach(func(entry *protocol.IndexEntry) error {
		if !m.index.add(entry) {
			return fmt.Errorf("duplicate protocol id %d in stored index", entry.Protocol.ProtocolID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not restore protocol index: %w", err)
	}

	if count != uint64(m.index.size()) {
		m.log.Warn().
			Uint64("stored_count", count).
			Int("index_size", m.index.size()).
			Msg("stored protocol count differs from number of stored entries")
	}

	m.metrics.RegistryEntries(uint(m.index.size()))

	return m, nil
}

// Register indexes a protocol record introduced by the given transaction in
// the given block, and writes it through to the persistent store together
// with the incremented total count. It returns false without side effects if
// the protocol id is already registered. Precondition violations and store
// failures are returned as errors.
func (m *Manager) Register(proto *protocol.Protocol, txID protocol.Identifier, header *protocol.Header) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if proto == nil {
		return false, fmt.Errorf("protocol record missing")
	}
	err := proto.Validate()
	if err != nil {
		return false, fmt.Errorf("invalid protocol record: %w", err)
	}
	if header == nil {
		return false, fmt.Errorf("anchor block missing")
	}
	if txID.IsZero() {
		return false, fmt.Errorf("registering transaction hash missing")
	}

	entry := protocol.NewIndexEntry(proto, txID, header)
	if !m.index.add(entry) {
		m.log.Debug().
			Uint64("protocol_id", proto.ProtocolID).
			Msg("protocol already registered")
		return false, nil
	}

	err = m.entries.Store(entry)
	if err != nil {
		// withdraw the in-memory insertion so cache and store stay equivalent
		m.index.remove(proto.ProtocolID)
		return false, fmt.Errorf("could not persist protocol entry: %w", err)
	}

	total := m.total.Add(1)
	err = m.entries.UpdateTotalCount(total)
	if err != nil {
		return false, fmt.Errorf("could not persist total protocol count: %w", err)
	}

	m.metrics.ProtocolRegistered()
	m.metrics.RegistryEntries(uint(m.index.size()))

	m.log.Info().
		Uint64("protocol_id", proto.ProtocolID).
		Uint64("height", entry.Anchor.Height).
		Hex("tx_id", txID[:]).
		Msg("protocol registered")

	return true, nil
}

// Contains reports whether the protocol is registered as of the current
// chain tip.
func (m *Manager) Contains(protocolID uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.containsAt(protocolID, m.tipHeight)
}

// ContainsAt reports whether the protocol was registered as of the given
// historical height: it is true only if an entry exists and its anchor
// height is at or below the bound.
func (m *Manager) ContainsAt(protocolID uint64, height uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.containsAt(protocolID, height)
}

// Entry returns the index entry for the protocol id, consulting the
// in-memory index first and falling back to the persistent store. Absence is
// not an error.
func (m *Manager) Entry(protocolID uint64) (*protocol.IndexEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if protocolID == protocol.UnknownProtocolID {
		return nil, false
	}
	return m.lookup(protocolID)
}

// OwnerOf returns the key hash that registered the protocol. Unlike
// Contains, absence is an error wrapping storage.ErrNotFound: the contract
// presumes the caller already knows the id exists.
func (m *Manager) OwnerOf(protocolID uint64) (protocol.KeyID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if protocolID == protocol.UnknownProtocolID {
		return protocol.ZeroKeyID, fmt.Errorf("protocol id is the unknown sentinel")
	}

	entry, ok := m.lookup(protocolID)
	if !ok {
		return protocol.ZeroKeyID, fmt.Errorf("owner of protocol %d unknown: %w", protocolID, storage.ErrNotFound)
	}
	return entry.Protocol.OwnerID, nil
}

// Remove deletes the registration as part of disconnecting a block at the
// current tip. See RemoveAt.
func (m *Manager) Remove(protocolID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeAt(protocolID, m.tipHeight)
}

// RemoveAt deletes the registration only if it is held in the in-memory
// index and anchored at or below the given height. The height guard keeps a
// rollback from deleting an entry anchored above the block being
// disconnected. It returns whether a deletion occurred; absence is not an
// error.
func (m *Manager) RemoveAt(protocolID uint64, height uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeAt(protocolID, height)
}

// UpdateBlockTip records the latest validated chain position. The consensus
// engine calls it on every block connect and disconnect, after the
// corresponding Register/Remove calls. It does not mutate the entry set.
func (m *Manager) UpdateBlockTip(header *protocol.Header) error {
	if header == nil {
		return fmt.Errorf("tip header missing")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tipHeight = header.Height
	m.tipID = header.ID()

	m.log.Debug().
		Uint64("height", m.tipHeight).
		Hex("block_id", m.tipID[:]).
		Msg("block tip updated")

	return nil
}

// ForEach visits every live entry in ascending (height, insertion) order. A
// visitor failure is logged and does not stop the traversal.
func (m *Manager) ForEach(visit func(entry *protocol.IndexEntry) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visitRange(0, m.index.size(), visit)
}

// ForEachByHeight visits one reverse-chronological page of the entries
// anchored at or below the given height: the startFrom most recent ones are
// skipped and up to count older ones are visited, in ascending order. The
// visitor failure policy matches ForEach.
func (m *Manager) ForEachByHeight(height uint64, count int, startFrom int, visit func(entry *protocol.IndexEntry) error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtered := m.index.heightBound(height)
	begin, end := pageBounds(filtered, startFrom, count)
	m.visitRange(begin, end, visit)
}

// TotalCount returns the number of live registrations mirrored from the
// persistent store. It does not take the registry lock.
func (m *Manager) TotalCount() uint64 {
	return m.total.Load()
}

// Tip returns the latest validated chain position known to the registry.
func (m *Manager) Tip() (uint64, protocol.Identifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tipHeight, m.tipID
}

func (m *Manager) containsAt(protocolID uint64, height uint64) bool {
	if protocolID == protocol.UnknownProtocolID {
		return false
	}
	entry, ok := m.lookup(protocolID)
	if !ok {
		return false
	}
	return entry.Anchor.Height <= height
}

func (m *Manager) removeAt(protocolID uint64, height uint64) (bool, error) {
	if protocolID == protocol.UnknownProtocolID {
		return false, fmt.Errorf("protocol id is the unknown sentinel")
	}

	// deletions only consider the in-memory index: an entry absent from it
	// was not introduced by any block being disconnected
	entry, ok := m.index.get(protocolID)
	if !ok || entry.Anchor.Height > height {
		return false, nil
	}

	err := m.entries.Remove(protocolID)
	if err != nil {
		return false, fmt.Errorf("could not erase protocol entry: %w", err)
	}
	m.index.remove(protocolID)

	total := m.total.Sub(1)
	err = m.entries.UpdateTotalCount(total)
	if err != nil {
		return false, fmt.Errorf("could not persist total protocol count: %w", err)
	}

	m.metrics.ProtocolRemoved()
	m.metrics.RegistryEntries(uint(m.index.size()))

	m.log.Info().
		Uint64("protocol_id", protocolID).
		Uint64("height", entry.Anchor.Height).
		Msg("protocol registration rolled back")

	return true, nil
}

// lookup returns the entry from the in-memory index, falling back to the
// persistent store and promoting the loaded entry on a miss. Promotion never
// touches the total count. Store failures other than absence are logged and
// reported as absence; the read-only query surfaces never error on them.
func (m *Manager) lookup(protocolID uint64) (*protocol.IndexEntry, bool) {
	entry, ok := m.index.get(protocolID)
	if ok {
		return entry, true
	}

	entry, err := m.entries.ByProtocolID(protocolID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Error().
				Err(err).
				Uint64("protocol_id", protocolID).
				Msg("could not load protocol entry from store")
		}
		return nil, false
	}

	if !m.index.add(entry) {
		// unreachable while all mutations hold the lock
		m.log.Error().
			Uint64("protocol_id", protocolID).
			Msg("promoted protocol entry already indexed")
	}

	return entry, true
}

func (m *Manager) visitRange(begin int, end int, visit func(entry *protocol.IndexEntry) error) {
	for i := begin; i < end; i++ {
		entry := m.index.at(i)
		err := visit(entry)
		if err != nil {
			m.log.Warn().
				Err(err).
				Uint64("protocol_id", entry.Protocol.ProtocolID).
				Msg("protocol index visitor failed")
		}
	}
}
