package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/gateway"
)

// respondGatewayError traduit une erreur du client commerce en réponse HTTP.
// Le cas 401 est uniforme : identifiants déjà purgés par le point
// d'interception, on renvoie la redirection vers la connexion.
func respondGatewayError(c *gin.Context, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée", "redirect": "/login"})
		return
	}
	if errors.Is(err, gateway.ErrUnreachable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Cannot reach the server. Please try again."})
		return
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": apiErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
