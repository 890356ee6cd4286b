package badger

import (
	"fmt"

	"github.com/prajna-labs/prajna/core"
)

// Key prefixes for different data types
const (
	chunkRecordPrefix = "chkrec"
	chunkRecordIDSeq  = "chkrecseq"
	chunkDimensionKey = "chkdim"
)

// makeChunkKey generates a key for a chunk record by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkRecordPrefix, id))
}

// makeDimensionKey generates the key holding the pinned vector dimension.
func makeDimensionKey() []byte {
	return []byte(chunkDimensionKey)
}
