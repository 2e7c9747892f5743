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

// Authors handles GET /auteurs.
func (h *Handler) Authors(w http.ResponseWriter, r *http.Request) {
	h.listRaw(w, r, store.CollectionAuthors)
}

// CreateAuthor handles POST /auteurs.
func (h *Handler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var author models.Author
	if !decodeBody(w, r, &author) {
		return
	}
	if apiErr := validateRequest(&author); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	id, err := h.catalog.CreateAuthor(author)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, models.InsertResult{ID: id, Message: "Auteur ajouté avec succès"})
}

// Publishers handles GET /editeurs.
func (h *Handler) Publishers(w http.ResponseWriter, r *http.Request) {
	h.listRaw(w, r, store.CollectionPublishers)
}

// CreatePublisher handles POST /editeurs.
func (h *Handler) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	var publisher models.Publisher
	if !decodeBody(w, r, &publisher) {
		return
	}
	if apiErr := validateRequest(&publisher); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	id, err := h.catalog.CreatePublisher(publisher)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, models.InsertResult{ID: id, Message: "Éditeur ajouté avec succès"})
}

// Categories handles GET /categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	h.listRaw(w, r, store.CollectionCategories)
}

// CreateCategory handles POST /categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeBody(w, r, &category) {
		return
	}
	if apiErr := validateRequest(&category); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	id, err := h.catalog.CreateCategory(category)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, models.InsertResult{ID: id, Message: "Catégorie ajoutée avec succès"})
}

// listRaw serves the raw document list of a collection.
func (h *Handler) listRaw(w http.ResponseWriter, r *http.Request, collection string) {
	docs, err := h.catalog.ListRaw(collection)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondList(w, r, docs, len(docs))
}
