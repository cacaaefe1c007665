package gateway

import (
	"context"
	"log"
	"net/http"

	"velour_storefront/internal/models"
)

// Products liste le catalogue complet de la boutique.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		envelope
		AllProduct []models.Product `json:"allProduct"`
	}
	if err := c.do(ctx, http.MethodGet, "/getAllProducts", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.AllProduct, nil
}

// Product récupère une fiche produit par son identifiant.
func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var resp struct {
		envelope
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/getProduct/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// CreateProduct crée une fiche produit (back-office, jeton admin requis).
func (c *Client) CreateProduct(ctx context.Context, p models.Product) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, "/admin/createProduct", p, &resp); err != nil {
		return err
	}
	if err := resp.reject(); err != nil {
		return err
	}
	log.Printf("📦 Produit créé : %s", p.Name)
	return nil
}

// UpdateProduct met à jour une fiche produit (back-office).
func (c *Client) UpdateProduct(ctx context.Context, id string, p models.Product) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPatch, "/admin/updateProduct/"+id, p, &resp); err != nil {
		return err
	}
	return resp.reject()
}

// DeleteProduct supprime une fiche produit (back-office).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, "/admin/deleteProduct/"+id, nil, &resp); err != nil {
		return err
	}
	return resp.reject()
}
