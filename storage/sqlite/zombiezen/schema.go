package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/dialogues.sql
var sqlFiles embed.FS

// CreateSchema executes the embedded corpus schema script against the
// pool. Safe to run on an existing database; all statements are
// IF NOT EXISTS.
func CreateSchema(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/dialogues.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to create corpus schema: %w", err)
	}
	return nil
}
