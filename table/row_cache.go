package table

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"RowDB/types"
)

// rowCache keeps decoded rows keyed by row number. Rows are never rewritten
// once inserted, so an entry cannot go stale within a session. A nil
// rowCache is valid and caches nothing.
type rowCache struct {
	cache *ristretto.Cache[uint32, types.Row]
}

func newRowCache(maxRows int64) (*rowCache, error) {
	if maxRows <= 0 {
		return nil, nil
	}
	// cost counts rows, not bytes
	cache, err := ristretto.NewCache(&ristretto.Config[uint32, types.Row]{
		NumCounters:        maxRows * 10,
		MaxCost:            maxRows,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create row cache: %w", err)
	}
	return &rowCache{cache: cache}, nil
}

func (rc *rowCache) get(rowNum uint32) (types.Row, bool) {
	if rc == nil {
		return types.Row{}, false
	}
	return rc.cache.Get(rowNum)
}

func (rc *rowCache) set(rowNum uint32, row types.Row) {
	if rc == nil {
		return
	}
	rc.cache.Set(rowNum, row, 1)
}

// wait blocks until buffered writes are visible to get
func (rc *rowCache) wait() {
	if rc == nil {
		return
	}
	rc.cache.Wait()
}

func (rc *rowCache) close() {
	if rc == nil {
		return
	}
	rc.cache.Close()
}
