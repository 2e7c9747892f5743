// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package models

// BookDetail is the joined book view: a book flattened with its author,
// category and publisher fields. Books with an unresolved reference are
// dropped from the view (inner-join semantics).
type BookDetail struct {
	ID                int64  `json:"id"`
	Titre             string `json:"titre"`
	Annee             int    `json:"annee"`
	Auteur            string `json:"auteur"`
	AuteurNationalite string `json:"auteur_nationalite"`
	Categorie         string `json:"categorie"`
	Editeur           string `json:"editeur"`
	EditeurPays       string `json:"editeur_pays"`
}

// LoanDetail is the joined loan view: a loan flattened with the title and
// publication year of the borrowed book.
type LoanDetail struct {
	ID          int64  `json:"id"`
	LivreID     int64  `json:"livre_id"`
	Emprunteur  string `json:"emprunteur"`
	DateEmprunt string `json:"date_emprunt"`
	Titre       string `json:"titre"`
	Annee       int    `json:"annee"`
}

// CategoryCount is one entry of the per-category book breakdown.
// The group key keeps the "_id" wire name of the original aggregation output.
type CategoryCount struct {
	Categorie string `json:"_id"`
	Count     int    `json:"count"`
}

// Stats aggregates per-collection counts plus the category breakdown,
// sorted by count descending (ties stable by group-encounter order).
type Stats struct {
	NombreLivres         int             `json:"nombre_livres"`
	NombreAuteurs        int             `json:"nombre_auteurs"`
	NombreEditeurs       int             `json:"nombre_editeurs"`
	NombreCategories     int             `json:"nombre_categories"`
	NombreEmpruntsActifs int             `json:"nombre_emprunts_actifs"`
	LivresParCategorie   []CategoryCount `json:"livres_par_categorie"`
}
