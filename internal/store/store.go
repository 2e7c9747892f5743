// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

// Package store implements the document store on BadgerDB.
//
// Each entity type lives in its own collection. A document key is the
// collection name plus the zero-padded integer id, so key order equals id
// order equals insertion order (ids are allocated monotonically and never
// reused). The document body is the JSON-encoded entity without the id.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/biblio/internal/metrics"
)

// Collection names. These match the wire vocabulary of the API.
const (
	CollectionAuthors    = "auteurs"
	CollectionPublishers = "editeurs"
	CollectionCategories = "categories"
	CollectionBooks      = "livres"
	CollectionLoans      = "emprunts"
)

// Collections lists every known collection.
var Collections = []string{
	CollectionAuthors,
	CollectionPublishers,
	CollectionCategories,
	CollectionBooks,
	CollectionLoans,
}

// Sentinel errors returned by store operations.
var (
	// ErrNotFound is returned when a document id does not exist in a collection.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateID is returned when inserting a document whose id already
	// exists. This is how the non-transactional id allocation race surfaces.
	ErrDuplicateID = errors.New("duplicate document id")
)

// publisherIDFloor is the first publisher id handed out for an empty
// collection. Every other collection starts at 1.
const publisherIDFloor = 1000

// idWidth is the zero-padding width of ids inside keys. Wide enough that
// lexicographic key order always equals numeric id order.
const idWidth = 12

// Config holds store settings.
type Config struct {
	// Path is the BadgerDB data directory. Ignored when InMemory is set.
	Path string

	// InMemory runs Badger without disk persistence (tests, throwaway envs).
	InMemory bool
}

// Store is a document store with one collection per entity type.
// It provides per-document atomicity only; there are no cross-document
// transactions, by design.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store.
func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path).WithLogger(newBadgerLogger())
	if cfg.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Connected reports whether the store is usable.
func (s *Store) Connected() bool {
	return s.db != nil && !s.db.IsClosed()
}

// Document is a raw stored document together with its id.
type Document struct {
	ID   int64
	Data []byte
}

// Decode unmarshals the document body into out.
func (d Document) Decode(out interface{}) error {
	return json.Unmarshal(d.Data, out)
}

// key builds the storage key for a document.
func key(collection string, id int64) []byte {
	return []byte(fmt.Sprintf("%s/%0*d", collection, idWidth, id))
}

// collectionPrefix builds the key prefix shared by all documents of a collection.
func collectionPrefix(collection string) []byte {
	return []byte(collection + "/")
}

// idFromKey extracts the numeric id from a storage key.
func idFromKey(k []byte) (int64, error) {
	idx := strings.LastIndexByte(string(k), '/')
	if idx < 0 {
		return 0, fmt.Errorf("malformed key %q", k)
	}
	id, err := strconv.ParseInt(string(k[idx+1:]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed key %q: %w", k, err)
	}
	return id, nil
}

// idFloor returns the first id handed out for an empty collection.
func idFloor(collection string) int64 {
	if collection == CollectionPublishers {
		return publisherIDFloor
	}
	return 1
}

// NextID computes the next identifier for a collection: max(existing)+1, or
// the collection floor when empty.
//
// Not transactional: two concurrent callers can receive the same id, and the
// loser's Insert fails with ErrDuplicateID. The single-writer deployment
// accepts this.
func (s *Store) NextID(collection string) (int64, error) {
	start := time.Now()

	var next int64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse-seek just past the collection prefix; the first valid key
		// is the maximum id (keys are zero-padded).
		prefix := collectionPrefix(collection)
		seek := append(append([]byte{}, prefix...), 0xFF)
		it.Seek(seek)

		if !it.ValidForPrefix(prefix) {
			next = idFloor(collection)
			return nil
		}

		maxID, err := idFromKey(it.Item().Key())
		if err != nil {
			return err
		}
		next = maxID + 1
		return nil
	})

	metrics.RecordStoreOperation("next_id", collection, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", collection, err)
	}
	return next, nil
}

// Insert persists a document under the given id.
// Returns ErrDuplicateID if the id is already taken.
func (s *Store) Insert(collection string, id int64, doc interface{}) error {
	start := time.Now()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", collection, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		k := key(collection, id)
		_, getErr := txn.Get(k)
		if getErr == nil {
			return ErrDuplicateID
		}
		if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return getErr
		}
		return txn.Set(k, data)
	})

	metrics.RecordStoreOperation("insert", collection, time.Since(start), err)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return fmt.Errorf("insert into %s id %d: %w", collection, id, ErrDuplicateID)
		}
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

// Get loads the document with the given id into out.
// Returns ErrNotFound if the id does not exist.
func (s *Store) Get(collection string, id int64, out interface{}) error {
	start := time.Now()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(collection, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})

	metrics.RecordStoreOperation("get", collection, time.Since(start), err)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s id %d: %w", collection, id, err)
	}
	return nil
}

// All returns every document of a collection in insertion order.
func (s *Store) All(collection string) ([]Document, error) {
	start := time.Now()

	var docs []Document
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := collectionPrefix(collection)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, err := idFromKey(item.Key())
			if err != nil {
				return err
			}
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			docs = append(docs, Document{ID: id, Data: data})
		}
		return nil
	})

	metrics.RecordStoreOperation("all", collection, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return docs, nil
}

// Delete removes the document with the given id.
// Returns ErrNotFound if the id does not exist.
func (s *Store) Delete(collection string, id int64) error {
	start := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		k := key(collection, id)
		if _, err := txn.Get(k); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(k)
	})

	metrics.RecordStoreOperation("delete", collection, time.Since(start), err)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete %s id %d: %w", collection, id, err)
	}
	return nil
}

// Count returns the number of documents in a collection.
func (s *Store) Count(collection string) (int, error) {
	start := time.Now()

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := collectionPrefix(collection)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	metrics.RecordStoreOperation("count", collection, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return count, nil
}
