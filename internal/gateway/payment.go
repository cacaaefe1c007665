package gateway

import (
	"context"
	"log"
	"net/http"

	"velour_storefront/internal/models"
)

// CreatePaymentOrder crée une intention de paiement chez le prestataire pour
// le total courant du panier. Appel NON idempotent : jamais retenté
// automatiquement, l'utilisateur doit relancer lui-même.
func (c *Client) CreatePaymentOrder(ctx context.Context) (*models.PaymentIntent, error) {
	var resp struct {
		envelope
		Order models.PaymentIntent `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/payment/create-order", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	log.Printf("💳 Intention de paiement créée : %s (%d %s)", resp.Order.GatewayOrderID, resp.Order.Amount, resp.Order.Currency)
	return &resp.Order, nil
}

type verifyRequest struct {
	models.Receipt
	Address models.Address `json:"address"`
}

// VerifyPayment soumet le reçu signé et l'adresse de livraison. Le serveur
// est seul juge de la signature et persiste la commande exactement une fois
// par reçu valide ; cet appel ne doit donc être émis qu'une fois par reçu.
func (c *Client) VerifyPayment(ctx context.Context, receipt models.Receipt, addr models.Address) (*models.Order, error) {
	var resp struct {
		envelope
		Order *models.Order `json:"order"`
	}
	body := verifyRequest{Receipt: receipt, Address: addr}
	if err := c.do(ctx, http.MethodPost, "/payment/verify", body, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	log.Printf("✅ Paiement vérifié : %s", receipt.GatewayPaymentID)
	return resp.Order, nil
}
