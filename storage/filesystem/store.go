package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/discoursekit/disco/stac"
	"github.com/discoursekit/disco/storage"
)

// DialogueStore reads a corpus laid out as one JSON file per dialogue
// in a directory. Ids are assigned by position in the sorted directory
// listing.
type DialogueStore struct {
	dir string

	// metadata cache, filled at construction
	dialogues []stac.Dialogue
}

var _ storage.DialogueRepository = (*DialogueStore)(nil)

// NewDialogueStore creates a filesystem dialogue store over dir.
func NewDialogueStore(dir string) (*DialogueStore, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	dialogues := make([]stac.Dialogue, 0, len(files))

	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		dialogues = append(dialogues, stac.Dialogue{
			Id:   idx,
			Name: strings.TrimSuffix(file.Name(), ".json"),
		})
		idx++
	}

	return &DialogueStore{dir: dir, dialogues: dialogues}, nil
}

func (s *DialogueStore) List() ([]stac.Dialogue, error) {
	return s.dialogues, nil
}

func (s *DialogueStore) Read(id int) (stac.Dialogue, error) {
	if id < 0 || id >= len(s.dialogues) {
		return stac.Dialogue{}, fmt.Errorf("dialogue id out of range: %d", id)
	}

	meta := s.dialogues[id]
	d, err := ReadDialogue(filepath.Join(s.dir, meta.Name+".json"))
	if err != nil {
		return stac.Dialogue{}, err
	}

	d.Id = meta.Id
	if d.Name == "" {
		d.Name = meta.Name
	}
	return d, nil
}

func (s *DialogueStore) Write(d stac.Dialogue) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, d.Name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	s.dialogues = append(s.dialogues, stac.Dialogue{
		Id:   len(s.dialogues),
		Name: d.Name,
	})
	return nil
}

// ReadDialogue reads a dialogue JSON from the given path and
// unmarshals it.
func ReadDialogue(path string) (stac.Dialogue, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return stac.Dialogue{}, fmt.Errorf("IO error: %w", err)
	}

	var d stac.Dialogue
	if err := json.Unmarshal(f, &d); err != nil {
		return stac.Dialogue{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return d, nil
}
