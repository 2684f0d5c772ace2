// Package audit keeps append-only records of deleted catalog entities.
// Every delete appends one JSON object per line to deleted_categories.json
// or deleted_products.json. The write happens before the store delete and
// its failure aborts the delete.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	categoriesFile = "deleted_categories.json"
	productsFile   = "deleted_products.json"
)

type entry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Log struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Log {
	if dir == "" {
		dir = "."
	}
	return &Log{dir: dir}
}

func (l *Log) RecordCategory(id uint, name string) error {
	return l.append(categoriesFile, entry{ID: id, Name: name})
}

func (l *Log) RecordProduct(id uint, name string) error {
	return l.append(productsFile, entry{ID: id, Name: name})
}

func (l *Log) append(file string, e entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(filepath.Join(l.dir, file), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("audit: open %s: %w", file, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(e); err != nil {
		return fmt.Errorf("audit: write %s: %w", file, err)
	}
	return nil
}
