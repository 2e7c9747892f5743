// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/biblio/internal/models"
	"github.com/tomtom215/biblio/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	st, err := store.Open(store.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})
	return NewService(st)
}

// seedCatalog inserts one author, category, publisher and book and returns
// the book id.
func seedCatalog(t *testing.T, s *Service) int64 {
	t.Helper()

	authorID, err := s.CreateAuthor(models.Author{Nom: "George Orwell", Nationalite: "Britannique", Naissance: 1903})
	require.NoError(t, err)
	categoryID, err := s.CreateCategory(models.Category{Nom: "Dystopie"})
	require.NoError(t, err)
	publisherID, err := s.CreatePublisher(models.Publisher{Nom: "Secker & Warburg", Pays: "UK"})
	require.NoError(t, err)

	bookID, err := s.CreateBook(models.Book{
		Titre:       "1984",
		AuteurID:    authorID,
		CategorieID: categoryID,
		EditeurID:   publisherID,
		Annee:       1949,
	})
	require.NoError(t, err)
	return bookID
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	s := newTestService(t)

	first, err := s.CreateAuthor(models.Author{Nom: "A", Nationalite: "X", Naissance: 1900})
	require.NoError(t, err)
	second, err := s.CreateAuthor(models.Author{Nom: "B", Nationalite: "Y", Naissance: 1910})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestCreatePublisher_StartsAt1000(t *testing.T) {
	s := newTestService(t)

	id, err := s.CreatePublisher(models.Publisher{Nom: "Gallimard", Pays: "France"})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), id)
}

func TestListRaw_OmitsID(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateCategory(models.Category{Nom: "Policier"})
	require.NoError(t, err)

	raw, err := s.ListRaw(store.CollectionCategories)
	require.NoError(t, err)
	require.Len(t, raw, 1)

	assert.JSONEq(t, `{"nom":"Policier"}`, string(raw[0]))
}

func TestBookDetails_JoinsParents(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	details, err := s.BookDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)

	got := details[0]
	assert.Equal(t, bookID, got.ID)
	assert.Equal(t, "1984", got.Titre)
	assert.Equal(t, 1949, got.Annee)
	assert.Equal(t, "George Orwell", got.Auteur)
	assert.Equal(t, "Britannique", got.AuteurNationalite)
	assert.Equal(t, "Dystopie", got.Categorie)
	assert.Equal(t, "Secker & Warburg", got.Editeur)
	assert.Equal(t, "UK", got.EditeurPays)
}

func TestBookDetails_DropsUnresolvedReferences(t *testing.T) {
	s := newTestService(t)
	seedCatalog(t, s)

	// Dangling author reference: the book never appears in the view.
	_, err := s.CreateBook(models.Book{Titre: "Orphan", AuteurID: 999, CategorieID: 1, EditeurID: 1000, Annee: 2000})
	require.NoError(t, err)

	details, err := s.BookDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "1984", details[0].Titre)
}

func TestBookDetails_InsertionOrder(t *testing.T) {
	s := newTestService(t)
	seedCatalog(t, s)

	for _, titre := range []string{"Animal Farm", "Homage to Catalonia"} {
		_, err := s.CreateBook(models.Book{Titre: titre, AuteurID: 1, CategorieID: 1, EditeurID: 1000, Annee: 1945})
		require.NoError(t, err)
	}

	details, err := s.BookDetails()
	require.NoError(t, err)
	require.Len(t, details, 3)
	assert.Equal(t, "1984", details[0].Titre)
	assert.Equal(t, "Animal Farm", details[1].Titre)
	assert.Equal(t, "Homage to Catalonia", details[2].Titre)
}

func TestCreateLoan_HappyPath(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	id, err := s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Alice", DateEmprunt: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	details, err := s.LoanDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "1984", details[0].Titre)
	assert.Equal(t, 1949, details[0].Annee)
	assert.Equal(t, "Alice", details[0].Emprunteur)
	assert.Equal(t, "2024-06-01", details[0].DateEmprunt)
}

func TestCreateLoan_MissingBook(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateLoan(models.Loan{LivreID: 42, Emprunteur: "Alice"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCreateLoan_BookAlreadyLoaned(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	_, err := s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Alice"})
	require.NoError(t, err)

	_, err = s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Bob"})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestCreateLoan_DefaultsDateToToday(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	fixed := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, err := s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Alice"})
	require.NoError(t, err)

	details, err := s.LoanDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "2024-06-15", details[0].DateEmprunt)
}

func TestReturnLoan_FreesBook(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	loanID, err := s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Alice"})
	require.NoError(t, err)

	require.NoError(t, s.ReturnLoan(loanID))

	details, err := s.LoanDetails()
	require.NoError(t, err)
	assert.Empty(t, details)

	// The book can be loaned again after the return.
	_, err = s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Bob"})
	assert.NoError(t, err)
}

func TestReturnLoan_UnknownID(t *testing.T) {
	s := newTestService(t)

	err := s.ReturnLoan(42)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestLoanDetails_DropsLoanWithMissingBook(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	_, err := s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Alice"})
	require.NoError(t, err)

	// Insert a loan referencing a book that does not exist, bypassing the
	// gateway checks the way pre-existing bad data would.
	require.NoError(t, s.store.Insert(store.CollectionLoans, 99, models.Loan{LivreID: 404, Emprunteur: "Bob", DateEmprunt: "2024-01-01"}))

	details, err := s.LoanDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, bookID, details[0].LivreID)
}

func TestStats(t *testing.T) {
	s := newTestService(t)
	bookID := seedCatalog(t, s)

	scifi, err := s.CreateCategory(models.Category{Nom: "Science-fiction"})
	require.NoError(t, err)
	for _, titre := range []string{"Dune", "Foundation"} {
		_, err := s.CreateBook(models.Book{Titre: titre, AuteurID: 1, CategorieID: scifi, EditeurID: 1000, Annee: 1960})
		require.NoError(t, err)
	}
	_, err = s.CreateLoan(models.Loan{LivreID: bookID, Emprunteur: "Alice"})
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.NombreLivres)
	assert.Equal(t, 1, stats.NombreAuteurs)
	assert.Equal(t, 1, stats.NombreEditeurs)
	assert.Equal(t, 2, stats.NombreCategories)
	assert.Equal(t, 1, stats.NombreEmpruntsActifs)

	// Sorted by count descending.
	require.Len(t, stats.LivresParCategorie, 2)
	assert.Equal(t, models.CategoryCount{Categorie: "Science-fiction", Count: 2}, stats.LivresParCategorie[0])
	assert.Equal(t, models.CategoryCount{Categorie: "Dystopie", Count: 1}, stats.LivresParCategorie[1])

	// Every book has a valid category, so the breakdown sums to the total.
	sum := 0
	for _, entry := range stats.LivresParCategorie {
		sum += entry.Count
	}
	assert.Equal(t, stats.NombreLivres, sum)
}

func TestStats_TiesKeepEncounterOrder(t *testing.T) {
	s := newTestService(t)
	seedCatalog(t, s)

	second, err := s.CreateCategory(models.Category{Nom: "Essai"})
	require.NoError(t, err)
	_, err = s.CreateBook(models.Book{Titre: "Essays", AuteurID: 1, CategorieID: second, EditeurID: 1000, Annee: 1950})
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)

	require.Len(t, stats.LivresParCategorie, 2)
	assert.Equal(t, "Dystopie", stats.LivresParCategorie[0].Categorie)
	assert.Equal(t, "Essai", stats.LivresParCategorie[1].Categorie)
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
}
