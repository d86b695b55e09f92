package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/tidwall/buntdb"
	"github.com/yorrLorenz/eggprice/pkg/core"
)

const idIndex = "id_index"

// BuntStorage implements core.HistoryStorage using BuntDB
type BuntStorage struct {
	lastID int64
	db     *buntdb.DB
}

// FromMemory creates an in-memory history log
func FromMemory() (*BuntStorage, error) {
	return NewBuntStorage(":memory:")
}

// FromFile creates a file-based history log
func FromFile(file string) (*BuntStorage, error) {
	return NewBuntStorage(file)
}

// NewBuntStorage opens a BuntDB history log. Existing entries are kept and
// new IDs continue after the highest stored one.
func NewBuntStorage(sourceFile string) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(idIndex, "*", buntdb.IndexJSON("id"))
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	storage := &BuntStorage{db: db}

	err = db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("", func(key, _ string) bool {
			if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > storage.lastID {
				storage.lastID = id
			}
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history: %w", err)
	}

	return storage, nil
}

// getID generates a unique ID for entries
func (b *BuntStorage) getID() int64 {
	return atomic.AddInt64(&b.lastID, 1)
}

// Record stores a new entry in the log
func (b *BuntStorage) Record(entry *core.HistoryEntry) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		entry.ID = b.getID()
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = time.Now().UTC()
		}

		content, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		_, _, err = tx.Set(strconv.FormatInt(entry.ID, 10), string(content), nil)
		if err != nil {
			return fmt.Errorf("failed to store entry: %w", err)
		}

		return nil
	})
}

// Entries retrieves entries in recording order based on provided filters
func (b *BuntStorage) Entries(filters ...core.HistoryFilter) ([]core.HistoryEntry, error) {
	entries := make([]core.HistoryEntry, 0)

	err := b.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.Ascend(idIndex, func(_, value string) bool {
			var entry core.HistoryEntry
			if decodeErr = json.Unmarshal([]byte(value), &entry); decodeErr != nil {
				return false
			}

			for _, filter := range filters {
				if !filter(entry) {
					return true
				}
			}

			entries = append(entries, entry)
			return true
		})
		if err != nil {
			return fmt.Errorf("failed to iterate over history: %w", err)
		}
		if decodeErr != nil {
			return fmt.Errorf("failed to unmarshal entry: %w", decodeErr)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Close closes the database connection
func (b *BuntStorage) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
