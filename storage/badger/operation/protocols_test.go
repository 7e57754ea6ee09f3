package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianchain/protoregistry/model/protocol"
	"github.com/meridianchain/protoregistry/storage"
	"github.com/meridianchain/protoregistry/utils/unittest"
)

func TestInsertRetrieveProtocolEntry(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		expected := unittest.IndexEntryFixture(10)
		protocolID := expected.Protocol.ProtocolID

		err := db.Update(InsertProtocolEntry(protocolID, expected))
		require.NoError(t, err)

		var actual protocol.IndexEntry
		err = db.View(RetrieveProtocolEntry(protocolID, &actual))
		require.NoError(t, err)

		assert.Equal(t, expected.Anchor, actual.Anchor)
		assert.Equal(t, *expected.Protocol, *actual.Protocol)
	})
}

func TestInsertProtocolEntryTwice(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		entry := unittest.IndexEntryFixture(10)
		protocolID := entry.Protocol.ProtocolID

		err := db.Update(InsertProtocolEntry(protocolID, entry))
		require.NoError(t, err)

		err = db.Update(InsertProtocolEntry(protocolID, entry))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}

func TestRetrieveProtocolEntryMissing(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var entry protocol.IndexEntry
		err := db.View(RetrieveProtocolEntry(unittest.Uint64Fixture(), &entry))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestRemoveProtocolEntry(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		entry := unittest.IndexEntryFixture(10)
		protocolID := entry.Protocol.ProtocolID

		err := db.Update(RemoveProtocolEntry(protocolID))
		require.ErrorIs(t, err, storage.ErrNotFound)

		err = db.Update(InsertProtocolEntry(protocolID, entry))
		require.NoError(t, err)

		err = db.Update(RemoveProtocolEntry(protocolID))
		require.NoError(t, err)

		var exists bool
		err = db.View(ExistsProtocolEntry(protocolID, &exists))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTraverseProtocolEntriesOrdered(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		ids := []uint64{42, 7, 100, 3}
		for _, protocolID := range ids {
			entry := unittest.IndexEntryFixture(10)
			entry.Protocol.ProtocolID = protocolID
			err := db.Update(InsertProtocolEntry(protocolID, entry))
			require.NoError(t, err)
		}

		var streamed []uint64
		err := db.View(TraverseProtocolEntries(func(entry *protocol.IndexEntry) error {
			streamed = append(streamed, entry.Protocol.ProtocolID)
			return nil
		}))
		require.NoError(t, err)

		// keys are big-endian encoded, so iteration is ascending by id
		assert.Equal(t, []uint64{3, 7, 42, 100}, streamed)
	})
}

func TestTotalProtocolCount(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var count uint64
		err := db.View(RetrieveTotalProtocolCount(&count))
		require.ErrorIs(t, err, storage.ErrNotFound)

		err = db.Update(UpdateTotalProtocolCount(12))
		require.NoError(t, err)

		err = db.View(RetrieveTotalProtocolCount(&count))
		require.NoError(t, err)
		assert.Equal(t, uint64(12), count)

		err = db.Update(UpdateTotalProtocolCount(13))
		require.NoError(t, err)

		err = db.View(RetrieveTotalProtocolCount(&count))
		require.NoError(t, err)
		assert.Equal(t, uint64(13), count)
	})
}
