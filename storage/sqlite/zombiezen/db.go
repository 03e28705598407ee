// Package zombiezen stores dialogue corpora in SQLite through
// zombiezen.com/go/sqlite. A database file is a convenient single-file
// form of a corpus directory, cheap to ship around and to reread.
package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a SQLite connection pool for the given database
// file, sized to the number of CPUs. The sqlitex defaults apply, WAL
// mode included.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database %s: %w", dbPath, err)
	}
	return pool, nil
}
