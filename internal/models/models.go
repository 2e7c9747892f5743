// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

// Package models defines the catalog entities, joined read views and the
// API response envelope.
//
// Wire names are French (livres, auteurs, emprunts, ...), matching the
// dataset this service manages. Entity identifiers live in the store key,
// not in the document body, so raw list responses carry only the stored
// fields; joined views add the id explicitly.
package models

// Author represents an author document in the "auteurs" collection.
type Author struct {
	Nom         string `json:"nom" validate:"required"`
	Nationalite string `json:"nationalite" validate:"required"`
	Naissance   int    `json:"naissance" validate:"required"`
}

// Publisher represents a publisher document in the "editeurs" collection.
type Publisher struct {
	Nom  string `json:"nom" validate:"required"`
	Pays string `json:"pays" validate:"required"`
}

// Category represents a category document in the "categories" collection.
type Category struct {
	Nom string `json:"nom" validate:"required"`
}

// Book represents a book document in the "livres" collection.
//
// The parent references (auteur_id, categorie_id, editeur_id) are not
// verified on insert; a book whose parent never existed is simply dropped
// from the joined detail view.
type Book struct {
	Titre       string `json:"titre" validate:"required"`
	AuteurID    int64  `json:"auteur_id" validate:"required"`
	CategorieID int64  `json:"categorie_id" validate:"required"`
	EditeurID   int64  `json:"editeur_id" validate:"required"`
	Annee       int    `json:"annee" validate:"required"`
}

// Loan represents an active loan document in the "emprunts" collection.
// Returning a book deletes its loan; there is no returned-loan archive.
type Loan struct {
	LivreID     int64  `json:"livre_id" validate:"required"`
	Emprunteur  string `json:"emprunteur" validate:"required"`
	DateEmprunt string `json:"date_emprunt" validate:"omitempty,datetime=2006-01-02"`
}
