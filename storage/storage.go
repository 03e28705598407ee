package storage

import (
	"github.com/discoursekit/disco/stac"
)

// DialogueReader defines read operations for dialogue corpus storage
type DialogueReader interface {
	// List returns the metadata (Id, Name) of the corpus dialogues.
	// Content (Edus, Relations) is not loaded.
	List() ([]stac.Dialogue, error)

	// Read returns a dialogue by ID, with content
	Read(id int) (stac.Dialogue, error)
}

// DialogueWriter defines write operations for dialogue corpus storage
type DialogueWriter interface {
	// Write persists a dialogue to storage
	Write(d stac.Dialogue) error
}

// DialogueRepository combines read and write operations
type DialogueRepository interface {
	DialogueReader
	DialogueWriter
}

// ReadAll loads every dialogue of a corpus, calling cb (if non-nil)
// once per dialogue for progress reporting.
func ReadAll(r DialogueReader, cb func(total int, name string)) ([]*stac.Dialogue, error) {
	metas, err := r.List()
	if err != nil {
		return nil, err
	}

	dialogues := make([]*stac.Dialogue, 0, len(metas))
	for _, meta := range metas {
		if cb != nil {
			cb(len(metas), meta.Name)
		}

		d, err := r.Read(meta.Id)
		if err != nil {
			return nil, err
		}
		d.Id = meta.Id
		d.Name = meta.Name
		dialogues = append(dialogues, &d)
	}

	return dialogues, nil
}
