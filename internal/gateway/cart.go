package gateway

import (
	"context"
	"net/http"

	"velour_storefront/internal/models"
)

// CartDetails récupère le panier courant. Toujours rappelé après chaque
// mutation : l'état local est remplacé intégralement, jamais fusionné.
func (c *Client) CartDetails(ctx context.Context) ([]models.CartItem, error) {
	var resp struct {
		envelope
		Cart []models.CartItem `json:"cart"`
	}
	if err := c.do(ctx, http.MethodGet, "/cart/getDetails", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// AddToCart incrémente la quantité d'un produit.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	var resp envelope
	body := map[string]int{"quantity": quantity}
	if err := c.do(ctx, http.MethodPost, "/cart/add/"+productID, body, &resp); err != nil {
		return err
	}
	return resp.reject()
}

// ReduceQuantity décrémente la quantité d'un produit. Le serveur reste seul
// garant du minimum à 1.
func (c *Client) ReduceQuantity(ctx context.Context, productID string) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPatch, "/cart/reduce/"+productID, nil, &resp); err != nil {
		return err
	}
	return resp.reject()
}

// RemoveFromCart supprime une ligne du panier.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) error {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, "/cart/delete/"+productID, nil, &resp); err != nil {
		return err
	}
	return resp.reject()
}
