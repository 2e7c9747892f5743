// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package store

import (
	"fmt"

	"github.com/tomtom215/biblio/internal/logging"
	"github.com/tomtom215/biblio/internal/models"
)

// SeedSampleData inserts the sample catalog dataset when the store is empty.
// It is a no-op when any collection already has documents, so restarts never
// duplicate data. The fixed ids intentionally leave gaps (books start at 101,
// loans at 9000); the allocator is gap-tolerant and continues from the max.
func (s *Store) SeedSampleData() error {
	for _, collection := range Collections {
		count, err := s.Count(collection)
		if err != nil {
			return fmt.Errorf("seed precheck: %w", err)
		}
		if count > 0 {
			logging.Debug().Str("collection", collection).Msg("store not empty, skipping sample data seed")
			return nil
		}
	}

	authors := map[int64]models.Author{
		1: {Nom: "George Orwell", Nationalite: "Britannique", Naissance: 1903},
		2: {Nom: "Ray Bradbury", Nationalite: "Américain", Naissance: 1920},
		3: {Nom: "Margaret Atwood", Nationalite: "Canadienne", Naissance: 1939},
	}
	publishers := map[int64]models.Publisher{
		1000: {Nom: "Secker & Warburg", Pays: "UK"},
		1001: {Nom: "Ballantine Books", Pays: "USA"},
		1002: {Nom: "McClelland & Stewart", Pays: "Canada"},
	}
	categories := map[int64]models.Category{
		10: {Nom: "Science-fiction"},
		11: {Nom: "Dystopie"},
		12: {Nom: "Anticipation"},
	}
	books := map[int64]models.Book{
		101: {Titre: "1984", AuteurID: 1, CategorieID: 11, EditeurID: 1000, Annee: 1949},
		102: {Titre: "Fahrenheit 451", AuteurID: 2, CategorieID: 10, EditeurID: 1001, Annee: 1953},
		103: {Titre: "The Handmaid's Tale", AuteurID: 3, CategorieID: 12, EditeurID: 1002, Annee: 1985},
	}
	loans := map[int64]models.Loan{
		9000: {LivreID: 101, Emprunteur: "Alice", DateEmprunt: "2024-06-01"},
		9001: {LivreID: 103, Emprunteur: "Bob", DateEmprunt: "2024-06-05"},
	}

	for id, doc := range authors {
		if err := s.Insert(CollectionAuthors, id, doc); err != nil {
			return fmt.Errorf("seed authors: %w", err)
		}
	}
	for id, doc := range publishers {
		if err := s.Insert(CollectionPublishers, id, doc); err != nil {
			return fmt.Errorf("seed publishers: %w", err)
		}
	}
	for id, doc := range categories {
		if err := s.Insert(CollectionCategories, id, doc); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}
	for id, doc := range books {
		if err := s.Insert(CollectionBooks, id, doc); err != nil {
			return fmt.Errorf("seed books: %w", err)
		}
	}
	for id, doc := range loans {
		if err := s.Insert(CollectionLoans, id, doc); err != nil {
			return fmt.Errorf("seed loans: %w", err)
		}
	}

	logging.Info().
		Int("authors", len(authors)).
		Int("publishers", len(publishers)).
		Int("categories", len(categories)).
		Int("books", len(books)).
		Int("loans", len(loans)).
		Msg("sample data seeded")
	return nil
}
