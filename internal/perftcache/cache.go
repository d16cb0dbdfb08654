package perftcache

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Cache wraps BadgerDB for persistent perft result memoization, keyed on
// the (FEN, depth) pair that produced a node count.
type Cache struct {
	db *badger.DB
}

// Open opens or creates a perft cache database at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable Badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// key builds the storage key for a (FEN, depth) pair. FEN text is used
// directly rather than a hash so the database stays human-inspectable.
func key(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%d\x00%s", depth, fen))
}

// Get returns the cached node count for (fen, depth), if present.
func (c *Cache) Get(fen string, depth int) (nodes int64, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("perftcache: corrupt entry for depth %d", depth)
			}
			nodes = int64(binary.LittleEndian.Uint64(val))
			ok = true
			return nil
		})
	})
	return nodes, ok, err
}

// Set stores the node count for (fen, depth).
func (c *Cache) Set(fen string, depth int, nodes int64) error {
	var val [8]byte
	binary.LittleEndian.PutUint64(val[:], uint64(nodes))

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(fen, depth), val[:])
	})
}
