package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/middleware"
	"velour_storefront/internal/models"
)

// 🟢 GET /api/addresses
func ListAddresses(c *gin.Context) {
	addresses, err := middleware.Gateway(c).Addresses(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// 🟢 POST /api/addresses
func AddAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := middleware.Gateway(c).AddAddress(c.Request.Context(), addr); err != nil {
		respondGatewayError(c, err)
		return
	}
	log.Printf("📦 Adresse ajoutée pour user %s", c.GetString("user_id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// 🟡 PATCH /api/addresses/:id
func UpdateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := middleware.Gateway(c).UpdateAddress(c.Request.Context(), c.Param("id"), addr); err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
