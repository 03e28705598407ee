package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/discoursekit/disco/stac"
	"github.com/discoursekit/disco/storage"
	"github.com/discoursekit/disco/storage/filesystem"
	"github.com/discoursekit/disco/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool lazily opens a single sqlite pool per invocation.
type Pool struct {
	p *sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

// NewDialogueRepository picks the backend by path: a directory is a
// filesystem corpus of JSON dialogues, a file a sqlite corpus.
func NewDialogueRepository(p *Pool, path string) (storage.DialogueRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("corpus not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDialogueStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDialogueStore(pool), nil
}

// corpusLibrary loads all dialogues of the corpus behind a progress
// bar.
func corpusLibrary(dr storage.DialogueReader) ([]*stac.Dialogue, error) {
	metas, err := dr.List()
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, nil
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(metas))
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		i := b.Current() - 1
		if i < 0 || i >= len(metas) {
			return ""
		}
		return metas[i].Name
	})

	dialogues, err := storage.ReadAll(dr, func(total int, name string) {
		bar.Incr()
	})

	uiprogress.Stop()
	return dialogues, err
}
