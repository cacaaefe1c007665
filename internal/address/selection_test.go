package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"velour_storefront/internal/address"
	"velour_storefront/internal/models"
)

func fullAddress() models.Address {
	return models.Address{
		ID:      "addr1",
		Street:  "12 Rue des Lilas",
		City:    "Lyon",
		State:   "Rhône",
		ZipCode: "69003",
		Country: "France",
		Phone:   "+33 6 12 34 56 78",
	}
}

func TestSelection_SelectSaved(t *testing.T) {
	var s address.Selection
	s.SelectSaved(fullAddress())

	assert.Equal(t, "addr1", s.SavedID)
	assert.Equal(t, "Lyon", s.Address.City)
	assert.True(t, s.Complete())
}

func TestSelection_EditClearsSavedMarker(t *testing.T) {
	var s address.Selection
	s.SelectSaved(fullAddress())

	edited := fullAddress()
	edited.Street = "34 Avenue de la République"
	s.SetForm(edited)

	// Une saisie manuelle ne doit pas être écrasée par une sélection périmée.
	assert.Empty(t, s.SavedID)
	assert.Empty(t, s.Address.ID)
	assert.False(t, s.Address.IsDefault)
	assert.Equal(t, "34 Avenue de la République", s.Address.Street)
}

func TestSelection_AutoSelectDefault(t *testing.T) {
	other := fullAddress()
	other.ID = "addr2"
	def := fullAddress()
	def.ID = "addr3"
	def.IsDefault = true

	t.Run("picks_the_default", func(t *testing.T) {
		var s address.Selection
		s.AutoSelectDefault([]models.Address{other, def})
		assert.Equal(t, "addr3", s.SavedID)
	})

	t.Run("no_default_no_selection", func(t *testing.T) {
		var s address.Selection
		s.AutoSelectDefault([]models.Address{other})
		assert.Empty(t, s.SavedID)
		assert.False(t, s.Complete())
	})
}

func TestSelection_Complete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Address)
		want   bool
	}{
		{name: "all_fields", mutate: func(a *models.Address) {}, want: true},
		{name: "missing_phone", mutate: func(a *models.Address) { a.Phone = "" }, want: false},
		{name: "whitespace_zip", mutate: func(a *models.Address) { a.ZipCode = "  " }, want: false},
		{name: "missing_country", mutate: func(a *models.Address) { a.Country = "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := fullAddress()
			tt.mutate(&addr)
			var s address.Selection
			s.SetForm(addr)
			assert.Equal(t, tt.want, s.Complete())
		})
	}
}
