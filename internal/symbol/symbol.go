// Package symbol interns identifier names into small comparable IDs, the
// way the rest of this module expects a name resolver to have already
// tagged every identifier before the analyzer sees it.
package symbol

import (
	"sync"
	"sync/atomic"

	"github.com/grailbio/base/log"

	"github.com/loadgraph/loadgraph/internal/xhash"
)

// ID represents an interned symbol. The zero value, Invalid, never names a
// real symbol.
type ID int32

// Invalid is a sentinel ID.
const Invalid = ID(0)

type idInfo struct {
	name string
	hash xhash.Hash
}

// table is the process-wide intern table. Reads take the fast path via an
// atomically loaded snapshot slice; writes go through mu and swap in a new
// snapshot. Intern always takes mu before looking a name up; it has no
// lock-free lookup path.
type table struct {
	mu sync.Mutex

	byName map[string]ID // guarded by mu

	idsPtr atomic.Pointer[[]idInfo]
}

var symbols table

func init() {
	ids := []idInfo{{"(invalid)", xhash.String("(invalid)")}}
	symbols.idsPtr.Store(&ids)
	symbols.byName = map[string]ID{"(invalid)": Invalid}
}

func (t *table) ids() []idInfo {
	return *t.idsPtr.Load()
}

// Hash returns the structural hash of the symbol's name.
func (id ID) Hash() xhash.Hash {
	return symbols.ids()[id].hash
}

// String returns the interned name. Panics if id was never produced by
// Intern — this is an internal-invariant failure, not a recoverable error.
func (id ID) String() string {
	ids := symbols.ids()
	if int(id) < 0 || int(id) >= len(ids) || ids[id].name == "" {
		log.Panicf("symbol: id %d not found", id)
	}
	return ids[id].name
}

// Intern finds or creates the ID for v. Interning the same string always
// returns the same ID within one process.
func Intern(v string) ID {
	if v == "" {
		log.Panicf("symbol: empty name")
	}
	t := &symbols
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byName[v]; ok {
		return id
	}
	ids := t.ids()
	id := ID(len(ids))
	if id == Invalid {
		id++
	}
	newIDs := make([]idInfo, len(ids), len(ids)+1)
	copy(newIDs, ids)
	for len(newIDs) <= int(id) {
		newIDs = append(newIDs, idInfo{})
	}
	newIDs[id] = idInfo{name: v, hash: xhash.String(v)}
	t.idsPtr.Store(&newIDs)

	newByName := make(map[string]ID, len(t.byName)+1)
	for k, v := range t.byName {
		newByName[k] = v
	}
	newByName[v] = id
	t.byName = newByName
	return id
}
