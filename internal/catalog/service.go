// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

// Package catalog implements the domain operations of the library catalog:
// entity creation with id allocation, the join/projection views, loan
// lifecycle rules and the statistics aggregation.
//
// All failures are reported as *Error values carrying a Kind, which the API
// boundary maps to HTTP status codes.
package catalog

import (
	"errors"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/tomtom215/biblio/internal/logging"
	"github.com/tomtom215/biblio/internal/models"
	"github.com/tomtom215/biblio/internal/store"
)

// loanDateFormat is the wire format of date_emprunt.
const loanDateFormat = "2006-01-02"

// Service exposes the catalog domain operations on top of the document store.
// The store client is injected once at construction and shared by all
// handlers; there is no other mutable state.
type Service struct {
	store *store.Store

	// now is the clock used for loan date defaulting; swappable in tests.
	now func() time.Time
}

// NewService creates a catalog service backed by the given store.
func NewService(st *store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// record pairs a decoded document with its id.
type record[T any] struct {
	id  int64
	doc T
}

// decodeAll loads a collection and decodes every document, preserving
// insertion order.
func decodeAll[T any](st *store.Store, collection string) ([]record[T], error) {
	docs, err := st.All(collection)
	if err != nil {
		return nil, err
	}

	recs := make([]record[T], 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := doc.Decode(&v); err != nil {
			return nil, err
		}
		recs = append(recs, record[T]{id: doc.ID, doc: v})
	}
	return recs, nil
}

// ListRaw returns the raw stored documents of a collection in insertion
// order. The documents do not contain their id, matching the raw list
// contract of the read endpoints.
func (s *Service) ListRaw(collection string) ([]json.RawMessage, error) {
	docs, err := s.store.All(collection)
	if err != nil {
		return nil, Internal("failed to list "+collection, err)
	}

	out := make([]json.RawMessage, len(docs))
	for i, doc := range docs {
		out[i] = json.RawMessage(doc.Data)
	}
	return out, nil
}

// BookDetails returns every book joined with its author, category and
// publisher. Books with an unresolved reference are silently dropped
// (inner-join semantics); output keeps store insertion order.
func (s *Service) BookDetails() ([]models.BookDetail, error) {
	books, err := decodeAll[models.Book](s.store, store.CollectionBooks)
	if err != nil {
		return nil, Internal("failed to load books", err)
	}
	authors, err := decodeAll[models.Author](s.store, store.CollectionAuthors)
	if err != nil {
		return nil, Internal("failed to load authors", err)
	}
	categories, err := decodeAll[models.Category](s.store, store.CollectionCategories)
	if err != nil {
		return nil, Internal("failed to load categories", err)
	}
	publishers, err := decodeAll[models.Publisher](s.store, store.CollectionPublishers)
	if err != nil {
		return nil, Internal("failed to load publishers", err)
	}

	authorByID := lo.Associate(authors, func(r record[models.Author]) (int64, models.Author) { return r.id, r.doc })
	categoryByID := lo.Associate(categories, func(r record[models.Category]) (int64, models.Category) { return r.id, r.doc })
	publisherByID := lo.Associate(publishers, func(r record[models.Publisher]) (int64, models.Publisher) { return r.id, r.doc })

	details := lo.FilterMap(books, func(b record[models.Book], _ int) (models.BookDetail, bool) {
		author, okAuthor := authorByID[b.doc.AuteurID]
		category, okCategory := categoryByID[b.doc.CategorieID]
		publisher, okPublisher := publisherByID[b.doc.EditeurID]
		if !okAuthor || !okCategory || !okPublisher {
			return models.BookDetail{}, false
		}
		return models.BookDetail{
			ID:                b.id,
			Titre:             b.doc.Titre,
			Annee:             b.doc.Annee,
			Auteur:            author.Nom,
			AuteurNationalite: author.Nationalite,
			Categorie:         category.Nom,
			Editeur:           publisher.Nom,
			EditeurPays:       publisher.Pays,
		}, true
	})

	return details, nil
}

// LoanDetails returns every active loan joined with the borrowed book's
// title and publication year. Loans whose book is missing are dropped.
func (s *Service) LoanDetails() ([]models.LoanDetail, error) {
	loans, err := decodeAll[models.Loan](s.store, store.CollectionLoans)
	if err != nil {
		return nil, Internal("failed to load loans", err)
	}
	books, err := decodeAll[models.Book](s.store, store.CollectionBooks)
	if err != nil {
		return nil, Internal("failed to load books", err)
	}

	bookByID := lo.Associate(books, func(r record[models.Book]) (int64, models.Book) { return r.id, r.doc })

	details := lo.FilterMap(loans, func(l record[models.Loan], _ int) (models.LoanDetail, bool) {
		book, ok := bookByID[l.doc.LivreID]
		if !ok {
			return models.LoanDetail{}, false
		}
		return models.LoanDetail{
			ID:          l.id,
			LivreID:     l.doc.LivreID,
			Emprunteur:  l.doc.Emprunteur,
			DateEmprunt: l.doc.DateEmprunt,
			Titre:       book.Titre,
			Annee:       book.Annee,
		}, true
	})

	return details, nil
}

// Stats aggregates collection counts and the per-category book breakdown.
func (s *Service) Stats() (*models.Stats, error) {
	stats := &models.Stats{}

	counts := []struct {
		collection string
		target     *int
	}{
		{store.CollectionBooks, &stats.NombreLivres},
		{store.CollectionAuthors, &stats.NombreAuteurs},
		{store.CollectionPublishers, &stats.NombreEditeurs},
		{store.CollectionCategories, &stats.NombreCategories},
		{store.CollectionLoans, &stats.NombreEmpruntsActifs},
	}
	for _, c := range counts {
		n, err := s.store.Count(c.collection)
		if err != nil {
			return nil, Internal("failed to count "+c.collection, err)
		}
		*c.target = n
	}

	breakdown, err := s.booksPerCategory()
	if err != nil {
		return nil, err
	}
	stats.LivresParCategorie = breakdown

	return stats, nil
}

// booksPerCategory groups books by category name. Books whose category is
// missing are dropped, mirroring the detail view's inner-join semantics.
// Entries are sorted by count descending; ties keep group-encounter order.
func (s *Service) booksPerCategory() ([]models.CategoryCount, error) {
	books, err := decodeAll[models.Book](s.store, store.CollectionBooks)
	if err != nil {
		return nil, Internal("failed to load books", err)
	}
	categories, err := decodeAll[models.Category](s.store, store.CollectionCategories)
	if err != nil {
		return nil, Internal("failed to load categories", err)
	}

	categoryByID := lo.Associate(categories, func(r record[models.Category]) (int64, models.Category) { return r.id, r.doc })

	breakdown := make([]models.CategoryCount, 0)
	indexByName := make(map[string]int)
	for _, b := range books {
		category, ok := categoryByID[b.doc.CategorieID]
		if !ok {
			continue
		}
		if i, seen := indexByName[category.Nom]; seen {
			breakdown[i].Count++
			continue
		}
		indexByName[category.Nom] = len(breakdown)
		breakdown = append(breakdown, models.CategoryCount{Categorie: category.Nom, Count: 1})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})

	return breakdown, nil
}

// allocateAndInsert allocates the next id for a collection and persists the
// document. The allocate/insert pair is not atomic: concurrent writers can
// collide on the same id, in which case the insert fails and the failure is
// surfaced as an internal error. The single-writer deployment accepts this.
func (s *Service) allocateAndInsert(collection string, doc interface{}) (int64, error) {
	id, err := s.store.NextID(collection)
	if err != nil {
		return 0, Internal("failed to allocate id for "+collection, err)
	}
	if err := s.store.Insert(collection, id, doc); err != nil {
		return 0, Internal("failed to insert into "+collection, err)
	}

	logging.Debug().Str("collection", collection).Int64("id", id).Msg("document inserted")
	return id, nil
}

// CreateAuthor persists a new author and returns its id.
func (s *Service) CreateAuthor(author models.Author) (int64, error) {
	return s.allocateAndInsert(store.CollectionAuthors, author)
}

// CreatePublisher persists a new publisher and returns its id.
// Publisher ids start at 1000 when the collection is empty.
func (s *Service) CreatePublisher(publisher models.Publisher) (int64, error) {
	return s.allocateAndInsert(store.CollectionPublishers, publisher)
}

// CreateCategory persists a new category and returns its id.
func (s *Service) CreateCategory(category models.Category) (int64, error) {
	return s.allocateAndInsert(store.CollectionCategories, category)
}

// CreateBook persists a new book and returns its id. Parent references are
// not verified; an unresolved reference only hides the book from the joined
// detail view.
func (s *Service) CreateBook(book models.Book) (int64, error) {
	return s.allocateAndInsert(store.CollectionBooks, book)
}

// CreateLoan persists a new loan and returns its id.
//
// Rules enforced before the write:
//   - the referenced book must exist (not-found otherwise)
//   - the book must not already be on loan (conflict otherwise)
//
// An omitted or empty date_emprunt defaults to the current date. The
// existence and uniqueness checks are not atomic with the insert; see
// allocateAndInsert.
func (s *Service) CreateLoan(loan models.Loan) (int64, error) {
	var book models.Book
	if err := s.store.Get(store.CollectionBooks, loan.LivreID, &book); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, NotFound("Livre non trouvé")
		}
		return 0, Internal("failed to load book", err)
	}

	active, err := decodeAll[models.Loan](s.store, store.CollectionLoans)
	if err != nil {
		return 0, Internal("failed to load loans", err)
	}
	if lo.SomeBy(active, func(l record[models.Loan]) bool { return l.doc.LivreID == loan.LivreID }) {
		return 0, Conflict("Ce livre est déjà emprunté")
	}

	if loan.DateEmprunt == "" {
		loan.DateEmprunt = s.now().Format(loanDateFormat)
	}

	return s.allocateAndInsert(store.CollectionLoans, loan)
}

// ReturnLoan deletes the loan with the given id, freeing the book for a new
// loan. Returns a not-found error for unknown ids.
func (s *Service) ReturnLoan(id int64) error {
	if err := s.store.Delete(store.CollectionLoans, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("Emprunt non trouvé")
		}
		return Internal("failed to delete loan", err)
	}

	logging.Debug().Int64("id", id).Msg("loan deleted")
	return nil
}
