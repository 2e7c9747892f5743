// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package api

import (
	"net/http"

	"github.com/tomtom215/biblio/internal/models"
	"github.com/tomtom215/biblio/internal/store"
)

// Books handles GET /livres. Returns the raw stored book documents.
func (h *Handler) Books(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListRaw(store.CollectionBooks)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondList(w, r, books, len(books))
}

// BookDetails handles GET /livres/details. Returns every book joined with
// its author, category and publisher; books with unresolved references are
// omitted.
func (h *Handler) BookDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.catalog.BookDetails()
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondList(w, r, details, len(details))
}

// CreateBook handles POST /livres.
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if !decodeBody(w, r, &book) {
		return
	}
	if apiErr := validateRequest(&book); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	id, err := h.catalog.CreateBook(book)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, models.InsertResult{ID: id, Message: "Livre ajouté avec succès"})
}
