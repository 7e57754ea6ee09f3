package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianchain/protoregistry/model/protocol"
	"github.com/meridianchain/protoregistry/utils/unittest"
)

func TestProtocolValidate(t *testing.T) {
	proto := unittest.ProtocolFixture()
	require.NoError(t, proto.Validate())

	unknown := unittest.ProtocolFixture(unittest.WithProtocolID(protocol.UnknownProtocolID))
	assert.Error(t, unknown.Validate())

	unowned := unittest.ProtocolFixture(unittest.WithOwner(protocol.ZeroKeyID))
	assert.Error(t, unowned.Validate())
}

func TestMakeIDDeterministic(t *testing.T) {
	header := unittest.HeaderFixture(42)

	assert.Equal(t, header.ID(), header.ID())

	other := *header
	other.Height = 43
	assert.NotEqual(t, header.ID(), other.ID())
}

func TestNewIndexEntryAnchorsProvenance(t *testing.T) {
	proto := unittest.ProtocolFixture()
	txID := unittest.IdentifierFixture()
	header := unittest.HeaderFixture(100)

	entry := protocol.NewIndexEntry(proto, txID, header)

	assert.Equal(t, uint64(100), entry.Anchor.Height)
	assert.Equal(t, header.ID(), entry.Anchor.BlockID)
	assert.Equal(t, txID, entry.Anchor.TxID)
	assert.Same(t, proto, entry.Protocol)
}
