package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/config"
	"velour_storefront/internal/gateway"
	"velour_storefront/internal/models"
)

// Le catalogue est public : pas de jeton, client anonyme.
func catalogGateway() *gateway.Client {
	return gateway.New(config.CommerceAPIURL())
}

// 🟢 GET /api/products
func GetProducts(c *gin.Context) {
	products, err := catalogGateway().Products(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// 🟢 GET /api/products/:id
func GetProductByID(c *gin.Context) {
	product, err := catalogGateway().Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}
