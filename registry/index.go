package registry

import (
	"sort"

	"github.com/meridianchain/protoregistry/model/protocol"
)

// indexedEntry pairs an entry with its insertion sequence number. The
// sequence breaks ties between entries anchored at the same height, so range
// scans see a stable order.
type indexedEntry struct {
	entry *protocol.IndexEntry
	seq   uint64
}

// protoIndex is the dual-keyed in-memory working set of index entries:
// unique by protocol id, and ordered by (anchor height, insertion sequence)
// for bounded range scans. It is not safe for concurrent use; the Manager
// serializes all access.
type protoIndex struct {
	byID     map[uint64]*protocol.IndexEntry
	byHeight []indexedEntry
	nextSeq  uint64
}

func newProtoIndex() *protoIndex {
	return &protoIndex{
		byID: make(map[uint64]*protocol.IndexEntry),
	}
}

// add inserts the entry into both orderings, unless its protocol id is
// already present. A rejected insertion leaves the index untouched.
func (x *protoIndex) add(entry *protocol.IndexEntry) bool {
	protocolID := entry.Protocol.ProtocolID
	_, ok := x.byID[protocolID]
	if ok {
		return false
	}
	x.byID[protocolID] = entry

	ie := indexedEntry{entry: entry, seq: x.nextSeq}
	x.nextSeq++

	// entries arrive mostly in ascending height order, but cache promotion
	// can re-insert an entry anchored below the current maximum
	pos := x.searchHeight(entry.Anchor.Height, ie.seq)
	x.byHeight = append(x.byHeight, indexedEntry{})
	copy(x.byHeight[pos+1:], x.byHeight[pos:])
	x.byHeight[pos] = ie

	return true
}

// get returns the entry with the given protocol id, if present.
func (x *protoIndex) get(protocolID uint64) (*protocol.IndexEntry, bool) {
	entry, ok := x.byID[protocolID]
	return entry, ok
}

// remove erases the entry with the given protocol id from both orderings.
func (x *protoIndex) remove(protocolID uint64) bool {
	entry, ok := x.byID[protocolID]
	if !ok {
		return false
	}
	delete(x.byID, protocolID)

	// find the entry within the run of equal heights
	pos := x.searchHeight(entry.Anchor.Height, 0)
	for ; pos < len(x.byHeight); pos++ {
		if x.byHeight[pos].entry == entry {
			break
		}
	}
	x.byHeight = append(x.byHeight[:pos], x.byHeight[pos+1:]...)

	return true
}

// size returns the number of live entries.
func (x *protoIndex) size() int {
	return len(x.byID)
}

// heightBound returns the number of entries anchored at or below the given
// height. Since entries are ordered by height, the bounded range is the
// slice prefix of that length.
func (x *protoIndex) heightBound(height uint64) int {
	return sort.Search(len(x.byHeight), func(i int) bool {
		return x.byHeight[i].entry.Anchor.Height > height
	})
}

// at returns the entry at the given position of the height ordering.
func (x *protoIndex) at(i int) *protocol.IndexEntry {
	return x.byHeight[i].entry
}

// searchHeight returns the smallest position whose (height, seq) key is at
// or above the given key.
func (x *protoIndex) searchHeight(height uint64, seq uint64) int {
	return sort.Search(len(x.byHeight), func(i int) bool {
		ie := x.byHeight[i]
		if ie.entry.Anchor.Height != height {
			return ie.entry.Anchor.Height > height
		}
		return ie.seq >= seq
	})
}
