package gateway

import (
	"context"
	"net/http"

	"velour_storefront/internal/models"
)

// Addresses liste les adresses enregistrées de l'utilisateur.
func (c *Client) Addresses(ctx context.Context) ([]models.Address, error) {
	var resp struct {
		envelope
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, "/address/getAddresses", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// AddAddress enregistre une nouvelle adresse.
func (c *Client) AddAddress(ctx context.Context, addr models.Address) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, "/address/addAddress", addr, &resp); err != nil {
		return err
	}
	return resp.reject()
}

// UpdateAddress met à jour une adresse existante.
func (c *Client) UpdateAddress(ctx context.Context, id string, addr models.Address) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPatch, "/address/updateAddress/"+id, addr, &resp); err != nil {
		return err
	}
	return resp.reject()
}
