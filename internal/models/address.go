package models

import "strings"

type Address struct {
	ID        string `json:"_id,omitempty"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// Complete vérifie que les six champs obligatoires sont remplis.
// Pas de validation de format (téléphone/code postal libres) : le serveur reste
// l'autorité, côté passerelle c'est uniquement une aide à la saisie.
func (a Address) Complete() bool {
	for _, field := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country, a.Phone} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
