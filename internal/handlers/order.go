package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/middleware"
	"velour_storefront/internal/models"
)

// ✅ Récupère toutes les commandes de l'utilisateur connecté
func GetMyOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := middleware.Gateway(c).Orders(ctx)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	log.Printf("✅ %d commandes trouvées pour user %s", len(orders), c.GetString("user_id"))
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ✅ Récupère une commande spécifique par ID, avec sa position sur la
// timeline de livraison (projection pure, aucune mutation possible d'ici)
func GetOrderByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := middleware.Gateway(c).Order(ctx, c.Param("id"))
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":     order,
		"stage":     order.StatusStage(),
		"stages":    models.FulfillmentStages,
		"cancelled": order.Cancelled(),
	})
}
