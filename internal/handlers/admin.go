package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/middleware"
	"velour_storefront/internal/models"
)

// 🟢 GET /api/admin/orders
func GetAllOrders(c *gin.Context) {
	orders, err := middleware.Gateway(c).AllOrders(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type updateStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

var validOrderStatuses = map[string]bool{
	models.OrderPending:        true,
	models.OrderConfirmed:      true,
	models.OrderShipping:       true,
	models.OrderOutForDelivery: true,
	models.OrderDelivered:      true,
	models.OrderCancelled:      true,
}

// 🟡 PATCH /api/admin/orders/:id/status
// Seul canal de mutation du statut de livraison ; le parcours client n'y
// touche jamais.
func UpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !validOrderStatuses[req.OrderStatus] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu: " + req.OrderStatus})
		return
	}

	if err := middleware.Gateway(c).UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.OrderStatus); err != nil {
		respondGatewayError(c, err)
		return
	}

	log.Printf("✅ Statut de la commande %s → %s", c.Param("id"), req.OrderStatus)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// 🟢 POST /api/admin/products
func CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom du produit est requis"})
		return
	}

	if err := middleware.Gateway(c).CreateProduct(c.Request.Context(), product); err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// 🟡 PATCH /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := middleware.Gateway(c).UpdateProduct(c.Request.Context(), c.Param("id"), product); err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ❌ DELETE /api/admin/products/:id
func DeleteProduct(c *gin.Context) {
	if err := middleware.Gateway(c).DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondGatewayError(c, err)
		return
	}
	log.Printf("🗑️ Produit %s supprimé", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
