package gateway

import (
	"context"
	"net/http"

	"velour_storefront/internal/models"
)

// Orders liste les commandes de l'utilisateur connecté.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		envelope
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/order/getOrders", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// Order récupère une commande par son identifiant.
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var resp struct {
		envelope
		Order *models.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodGet, "/order/getOrder/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// AllOrders liste toutes les commandes (back-office, jeton admin requis).
func (c *Client) AllOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		envelope
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/getAllOrders", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// UpdateOrderStatus fait évoluer le statut de livraison d'une commande
// (back-office uniquement, le parcours client ne l'appelle jamais).
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	var resp envelope
	body := map[string]string{"orderStatus": status}
	if err := c.do(ctx, http.MethodPatch, "/admin/updateOrderStatus/"+id, body, &resp); err != nil {
		return err
	}
	return resp.reject()
}
