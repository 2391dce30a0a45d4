package component

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// RowID identifies one logged batch in a value store.
type RowID = uuid.UUID

// NewRowID returns a fresh random row id.
func NewRowID() RowID {
	return uuid.New()
}

// RowCacheKey derives a CacheKey from a row id. Rows are immutable once
// logged, so the id identifies the content as well as a hash would.
func RowCacheKey(id RowID) CacheKey {
	if id == uuid.Nil {
		return 0
	}
	k := binary.BigEndian.Uint64(id[:8]) ^ binary.BigEndian.Uint64(id[8:])
	if k == 0 {
		k = 1
	}
	return CacheKey(k)
}
