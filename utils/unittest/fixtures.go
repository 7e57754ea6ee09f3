package unittest

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/meridianchain/protoregistry/model/protocol"
)

func IdentifierFixture() protocol.Identifier {
	var id protocol.Identifier
	_, _ = rand.Read(id[:])
	return id
}

func KeyIDFixture() protocol.KeyID {
	var key protocol.KeyID
	_, _ = rand.Read(key[:])
	return key
}

func Uint64Fixture() uint64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
	return n.Uint64() + 1
}

func ProtocolFixture(opts ...func(*protocol.Protocol)) *protocol.Protocol {
	proto := &protocol.Protocol{
		ProtocolID:        Uint64Fixture(),
		OwnerID:           KeyIDFixture(),
		Name:              fmt.Sprintf("proto-%d", Uint64Fixture()%100000),
		MetadataMimeType:  "application/json",
		MetadataSchemaURI: "https://example.com/schema.json",
		Transferable:      true,
		MaxMetadataSize:   255,
	}
	for _, opt := range opts {
		opt(proto)
	}
	return proto
}

func WithProtocolID(protocolID uint64) func(*protocol.Protocol) {
	return func(proto *protocol.Protocol) {
		proto.ProtocolID = protocolID
	}
}

func WithOwner(owner protocol.KeyID) func(*protocol.Protocol) {
	return func(proto *protocol.Protocol) {
		proto.OwnerID = owner
	}
}

func HeaderFixture(height uint64) *protocol.Header {
	return &protocol.Header{
		Height:      height,
		ParentID:    IdentifierFixture(),
		PayloadHash: IdentifierFixture(),
		Timestamp:   time.Unix(1600000000+int64(height), 0).UTC(),
	}
}

func IndexEntryFixture(height uint64) *protocol.IndexEntry {
	return protocol.NewIndexEntry(ProtocolFixture(), IdentifierFixture(), HeaderFixture(height))
}
