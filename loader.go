package costperuse

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DataFilename is the name of the item collection file inside the data
// directory.
const DataFilename = "items.json"

// LoadItems reads the item collection persisted at path. A missing file is
// not an error, it is simply an empty collection; unreadable or malformed
// content is discarded with a warning, matching the fail-soft contract of
// the store.
func LoadItems(path string) []Item {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		log.Printf("warning: cannot read item file %q, starting empty: %v", path, err)
		return nil
	}
	return DecodeItems(bytes.NewReader(data))
}

// SaveItems writes the full item collection to path, replacing the previous
// content in a single atomic rename.
func SaveItems(path string, items []Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create data directory for %q: %w", path, err)
	}

	var buf bytes.Buffer
	if err := EncodeItems(&buf, items); err != nil {
		return fmt.Errorf("could not encode items: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write item file %q: %w", path, err)
	}
	return os.Rename(tmp, path)
}

// FileSaver returns a SaveFunc bound to the given path, suitable for wiring
// an Inventory to its data file.
func FileSaver(path string) SaveFunc {
	return func(items []Item) error { return SaveItems(path, items) }
}

// OpenInventory loads the collection stored in dir and returns an inventory
// that persists every mutation back to it.
func OpenInventory(dir string) *Inventory {
	path := filepath.Join(dir, DataFilename)
	return NewInventory(LoadItems(path), FileSaver(path))
}
