package models

// PaymentIntent est la réservation de paiement créée chez le prestataire pour
// le montant courant du panier. Éphémère : une intention par tentative de
// checkout, jamais réutilisée.
type PaymentIntent struct {
	GatewayOrderID string `json:"id"`
	Amount         int64  `json:"amount"` // en centimes/paise, côté prestataire
	Currency       string `json:"currency"`
	Key            string `json:"key"` // clé publique à passer au widget
}

// Receipt est le reçu signé renvoyé par le widget de paiement quand
// l'autorisation aboutit. La validité de la signature est vérifiée
// exclusivement par le serveur.
type Receipt struct {
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	Signature        string `json:"razorpay_signature"`
}
