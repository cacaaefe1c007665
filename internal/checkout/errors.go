package checkout

import (
	"errors"
	"strings"

	"velour_storefront/internal/gateway"
)

var (
	// ErrEmptyCart : on ne démarre pas une revue de commande sur un panier
	// vide ; aucun appel réseau n'est tenté.
	ErrEmptyCart = errors.New("Your cart is empty")

	// ErrAddressIncomplete : les six champs d'adresse doivent être remplis
	// avant de créer une intention de paiement.
	ErrAddressIncomplete = errors.New("Please add a delivery address before placing the order")

	// ErrBadState : opération demandée depuis un état qui ne la permet pas.
	ErrBadState = errors.New("opération impossible dans l'état courant")

	// ErrReceiptReplay : ce reçu a déjà été soumis à la vérification.
	ErrReceiptReplay = errors.New("ce reçu de paiement a déjà été traité")

	// ErrNoAttempt : aucune tentative de checkout en cours pour cet
	// utilisateur.
	ErrNoAttempt = errors.New("aucune tentative de checkout en cours")
)

// Message affiché quand le prestataire refuse le domaine de la boutique :
// c'est une erreur de configuration côté opérateur, pas côté client.
const domainMisconfiguredMessage = "Payment Error: This website domain is not registered with the payment provider account. Please contact the administrator to add this domain in the payment provider settings."

// Message générique quand le serveur commerce ne répond pas du tout.
const unreachableMessage = "Cannot reach the server. Please try again."

// Code structuré renvoyé par les serveurs récents pour ce cas ; les anciens
// n'envoient qu'un texte libre, d'où le repli sur la recherche de sous-chaînes.
const codeDomainNotRegistered = "domain_not_registered"

// classifyPaymentError traduit une erreur d'appel paiement en message
// affichable. On privilégie le code structuré ; la détection par sous-chaîne
// ne sert que de repli pour les serveurs qui n'en renvoient pas.
func classifyPaymentError(err error) string {
	if errors.Is(err, gateway.ErrUnreachable) {
		return unreachableMessage
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == codeDomainNotRegistered {
			return domainMisconfiguredMessage
		}
		lower := strings.ToLower(apiErr.Message)
		if strings.Contains(lower, "website") ||
			strings.Contains(lower, "domain") ||
			strings.Contains(lower, "not registered") {
			return domainMisconfiguredMessage
		}
		return apiErr.Error()
	}

	return err.Error()
}
