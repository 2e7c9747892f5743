// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/biblio/internal/models"
)

// Loans handles GET /emprunts. Returns every active loan joined with the
// borrowed book's title and year.
func (h *Handler) Loans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.catalog.LoanDetails()
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondList(w, r, loans, len(loans))
}

// CreateLoan handles POST /emprunts. Fails with 404 when the book does not
// exist and 400 when it is already on loan.
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var loan models.Loan
	if !decodeBody(w, r, &loan) {
		return
	}
	if apiErr := validateRequest(&loan); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	id, err := h.catalog.CreateLoan(loan)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, models.InsertResult{ID: id, Message: "Emprunt ajouté avec succès"})
}

// ReturnLoan handles DELETE /emprunts/{id}. Deleting the loan marks the book
// as returned and frees it for a new loan.
func (h *Handler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Loan id must be an integer", nil)
		return
	}

	if err := h.catalog.ReturnLoan(id); err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, map[string]string{"message": "Livre retourné avec succès"})
}
