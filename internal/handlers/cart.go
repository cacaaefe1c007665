package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/cache"
	"velour_storefront/internal/cart"
	"velour_storefront/internal/middleware"
	"velour_storefront/internal/models"
)

func cartService(c *gin.Context) *cart.Service {
	return cart.NewService(
		middleware.Gateway(c),
		cache.CartBroadcaster{},
		cache.Locker{},
		c.GetString("user_id"),
	)
}

func cartResponse(items []models.CartItem) gin.H {
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items":      items,
		"subtotal":   cart.Subtotal(items),
		"totalItems": cart.TotalItems(items),
	}
}

// 🟢 GET /api/cart
func GetCart(c *gin.Context) {
	items, err := cartService(c).Fetch(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

// 🟢 POST /api/cart/add/:productId
func AddToCart(c *gin.Context) {
	items, err := cartService(c).Add(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

// 🟡 PATCH /api/cart/reduce/:productId
func ReduceQuantity(c *gin.Context) {
	items, err := cartService(c).Reduce(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

// ❌ DELETE /api/cart/delete/:productId
func DeleteCartItem(c *gin.Context) {
	items, err := cartService(c).Remove(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrMinQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrMutationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		respondGatewayError(c, err)
	}
}
