// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/biblio/internal/models"
)

func TestValidateStruct_Valid(t *testing.T) {
	book := models.Book{
		Titre:       "1984",
		AuteurID:    1,
		CategorieID: 10,
		EditeurID:   1000,
		Annee:       1949,
	}

	assert.Nil(t, ValidateStruct(&book))
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	author := models.Author{Nationalite: "Britannique", Naissance: 1903}

	err := ValidateStruct(&author)
	require.NotNil(t, err)
	require.Len(t, err.Errors(), 1)
	assert.Equal(t, "Nom", err.Errors()[0].Field())
	assert.Equal(t, "required", err.Errors()[0].Tag())
}

func TestValidateStruct_LoanDateFormat(t *testing.T) {
	tests := []struct {
		name string
		date string
		ok   bool
	}{
		{"empty date is allowed", "", true},
		{"iso date", "2026-08-28", true},
		{"slash date", "28/08/2026", false},
		{"datetime not date", "2026-08-28T10:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := models.Loan{LivreID: 101, Emprunteur: "Alice", DateEmprunt: tt.date}

			err := ValidateStruct(&loan)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, "datetime", err.Errors()[0].Tag())
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&models.Category{})
	require.NotNil(t, err)

	apiErr := err.ToAPIError()
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Equal(t, "Nom is required", apiErr.Message)
	assert.Equal(t, "Nom", apiErr.Details["field"])
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&models.Book{})
	require.NotNil(t, err)
	require.Greater(t, len(err.Errors()), 1)

	apiErr := err.ToAPIError()
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Contains(t, apiErr.Message, "Titre: Titre is required")
	assert.Contains(t, apiErr.Details, "fields")
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
