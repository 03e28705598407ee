package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/discoursekit/disco/stac"
	"github.com/discoursekit/disco/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DialogueStore struct {
	pool *sqlitex.Pool
}

var _ storage.DialogueRepository = (*DialogueStore)(nil)

func NewDialogueStore(pool *sqlitex.Pool) *DialogueStore {
	return &DialogueStore{pool: pool}
}

func (s *DialogueStore) List() ([]stac.Dialogue, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var dialogues []stac.Dialogue
	err = sqlitex.Execute(conn, "SELECT id, name FROM dialogues ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			dialogues = append(dialogues, stac.Dialogue{
				Id:   stmt.ColumnInt(0),
				Name: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return dialogues, nil
}

func (s *DialogueStore) Read(id int) (stac.Dialogue, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return stac.Dialogue{}, err
	}
	defer s.pool.Put(conn)

	d := stac.Dialogue{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT name FROM dialogues WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			d.Name = stmt.ColumnText(0)
			return nil
		},
	})
	if err != nil {
		return stac.Dialogue{}, err
	}
	if !found {
		return stac.Dialogue{}, fmt.Errorf("dialogue not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM edus WHERE dialogue_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var edu stac.EDU
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &edu); err != nil {
				return err
			}
			d.Edus = append(d.Edus, edu)
			return nil
		},
	})
	if err != nil {
		return stac.Dialogue{}, err
	}

	err = sqlitex.Execute(conn, "SELECT data FROM relations WHERE dialogue_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var rel stac.Relation
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &rel); err != nil {
				return err
			}
			d.Relations = append(d.Relations, rel)
			return nil
		},
	})
	if err != nil {
		return stac.Dialogue{}, err
	}

	return d, nil
}

func (s *DialogueStore) Write(d stac.Dialogue) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO dialogues (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{d.Name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert dialogue: %w", err)
	}
	dialogueID := conn.LastInsertRowID()

	for _, edu := range d.Edus {
		data, marshalErr := json.Marshal(edu)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO edus (dialogue_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{dialogueID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert edu: %w", err)
		}
	}

	for _, rel := range d.Relations {
		data, marshalErr := json.Marshal(rel)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO relations (dialogue_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{dialogueID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert relation: %w", err)
		}
	}

	return nil
}
