package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/meridianchain/protoregistry/model/protocol"
)

const (
	// codeProtocolEntry indexes one protocol registration per protocol id.
	codeProtocolEntry = 10

	// codeTotalCount holds the scalar count of stored protocol entries.
	codeTotalCount = 11
)

// makePrefix builds a storage key from a prefix code and a sequence of typed
// key parts, encoded so that lexicographic key order matches numeric order.
func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case protocol.Identifier:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
