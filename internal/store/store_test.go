// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/biblio/internal/models"
)

// newTestStore opens an in-memory store that is torn down with the test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestNextID_EmptyCollections(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		collection string
		want       int64
	}{
		{CollectionAuthors, 1},
		{CollectionCategories, 1},
		{CollectionBooks, 1},
		{CollectionLoans, 1},
		{CollectionPublishers, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			id, err := s.NextID(tt.collection)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestNextID_MaxPlusOne(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(CollectionAuthors, 1, models.Author{Nom: "A", Nationalite: "X", Naissance: 1900}))
	require.NoError(t, s.Insert(CollectionAuthors, 7, models.Author{Nom: "B", Nationalite: "Y", Naissance: 1910}))

	id, err := s.NextID(CollectionAuthors)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id, "next id is max+1, gaps are not filled")
}

func TestNextID_NotReusedAfterDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(CollectionLoans, 1, models.Loan{LivreID: 1, Emprunteur: "A", DateEmprunt: "2024-01-01"}))
	require.NoError(t, s.Insert(CollectionLoans, 2, models.Loan{LivreID: 2, Emprunteur: "B", DateEmprunt: "2024-01-02"}))
	require.NoError(t, s.Delete(CollectionLoans, 2))

	// Deleting the max id exposes the previous max again; ids below it are
	// still never revisited once a higher id is allocated.
	id, err := s.NextID(CollectionLoans)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	require.NoError(t, s.Insert(CollectionLoans, 5, models.Loan{LivreID: 3, Emprunteur: "C", DateEmprunt: "2024-01-03"}))
	id, err = s.NextID(CollectionLoans)
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
}

func TestInsert_DuplicateID(t *testing.T) {
	s := newTestStore(t)

	doc := models.Category{Nom: "Dystopie"}
	require.NoError(t, s.Insert(CollectionCategories, 1, doc))

	err := s.Insert(CollectionCategories, 1, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := models.Book{Titre: "1984", AuteurID: 1, CategorieID: 11, EditeurID: 1000, Annee: 1949}
	require.NoError(t, s.Insert(CollectionBooks, 101, in))

	var out models.Book
	require.NoError(t, s.Get(CollectionBooks, 101, &out))
	assert.Equal(t, in, out)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	var out models.Book
	err := s.Get(CollectionBooks, 42, &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAll_InsertionOrder(t *testing.T) {
	s := newTestStore(t)

	titles := []string{"premier", "deuxième", "troisième"}
	for i, titre := range titles {
		book := models.Book{Titre: titre, AuteurID: 1, CategorieID: 1, EditeurID: 1000, Annee: 2000 + i}
		require.NoError(t, s.Insert(CollectionBooks, int64(i+1), book))
	}

	docs, err := s.All(CollectionBooks)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	for i, doc := range docs {
		assert.Equal(t, int64(i+1), doc.ID)

		var book models.Book
		require.NoError(t, doc.Decode(&book))
		assert.Equal(t, titles[i], book.Titre)
	}
}

func TestAll_DoesNotLeakOtherCollections(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(CollectionAuthors, 1, models.Author{Nom: "A", Nationalite: "X", Naissance: 1900}))
	require.NoError(t, s.Insert(CollectionBooks, 1, models.Book{Titre: "T", AuteurID: 1, CategorieID: 1, EditeurID: 1000, Annee: 2000}))

	docs, err := s.All(CollectionAuthors)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(CollectionLoans, 9000, models.Loan{LivreID: 101, Emprunteur: "Alice", DateEmprunt: "2024-06-01"}))
	require.NoError(t, s.Delete(CollectionLoans, 9000))

	var out models.Loan
	assert.ErrorIs(t, s.Get(CollectionLoans, 9000, &out), ErrNotFound)

	assert.ErrorIs(t, s.Delete(CollectionLoans, 9000), ErrNotFound)
}

func TestCount(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Count(CollectionCategories)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.Insert(CollectionCategories, 1, models.Category{Nom: "SF"}))
	require.NoError(t, s.Insert(CollectionCategories, 2, models.Category{Nom: "Policier"}))

	n, err = s.Count(CollectionCategories)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestConnected(t *testing.T) {
	s, err := Open(Config{InMemory: true})
	require.NoError(t, err)
	assert.True(t, s.Connected())

	require.NoError(t, s.Close())
	assert.False(t, s.Connected())
}

func TestSeedSampleData(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SeedSampleData())

	counts := map[string]int{
		CollectionAuthors:    3,
		CollectionPublishers: 3,
		CollectionCategories: 3,
		CollectionBooks:      3,
		CollectionLoans:      2,
	}
	for collection, want := range counts {
		n, err := s.Count(collection)
		require.NoError(t, err)
		assert.Equal(t, want, n, collection)
	}

	// Allocation continues above the seeded ids.
	id, err := s.NextID(CollectionBooks)
	require.NoError(t, err)
	assert.Equal(t, int64(104), id)

	id, err = s.NextID(CollectionPublishers)
	require.NoError(t, err)
	assert.Equal(t, int64(1003), id)
}

func TestSeedSampleData_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SeedSampleData())
	require.NoError(t, s.SeedSampleData())

	n, err := s.Count(CollectionBooks)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSeedSampleData_SkipsNonEmptyStore(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(CollectionAuthors, 50, models.Author{Nom: "X", Nationalite: "Y", Naissance: 1950}))
	require.NoError(t, s.SeedSampleData())

	n, err := s.Count(CollectionBooks)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "seed must not run against a store with existing data")
}
