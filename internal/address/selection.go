// Package address maintient l'adresse de livraison de travail du checkout :
// soit une adresse enregistrée sélectionnée, soit une saisie libre, les deux
// convergeant vers la même valeur.
package address

import "velour_storefront/internal/models"

// Selection est la copie de travail utilisée par la tentative de checkout
// courante. SavedID trace l'adresse enregistrée d'origine ; il est effacé dès
// que le formulaire est édité, pour qu'une sélection périmée n'écrase pas une
// saisie manuelle.
type Selection struct {
	Address models.Address `json:"address"`
	SavedID string         `json:"savedId,omitempty"`
}

// SelectSaved recopie une adresse enregistrée comme valeur de travail et
// quitte le mode formulaire.
func (s *Selection) SelectSaved(addr models.Address) {
	s.Address = addr
	s.SavedID = addr.ID
}

// SetForm remplace la valeur de travail par une saisie libre. Toute marque de
// sélection précédente saute.
func (s *Selection) SetForm(addr models.Address) {
	addr.ID = ""
	addr.IsDefault = false
	s.Address = addr
	s.SavedID = ""
}

// AutoSelectDefault choisit l'adresse par défaut de la liste enregistrée,
// s'il y en a une (il y en a zéro ou une, le serveur s'en porte garant).
func (s *Selection) AutoSelectDefault(saved []models.Address) {
	for _, addr := range saved {
		if addr.IsDefault {
			s.SelectSaved(addr)
			return
		}
	}
}

// Complete indique si l'adresse de travail permet de passer commande.
func (s Selection) Complete() bool {
	return s.Address.Complete()
}
