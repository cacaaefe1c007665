package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/cache"
	"velour_storefront/internal/cart"
	"velour_storefront/internal/checkout"
	"velour_storefront/internal/gateway"
	"velour_storefront/internal/middleware"
	"velour_storefront/internal/models"
)

func checkoutStore() *checkout.Store {
	return checkout.NewStore(cache.RedisClient)
}

// Verrou par utilisateur le temps d'une opération de checkout. Sans lui, deux
// soumissions concurrentes du même reçu chargeraient chacune sa propre copie
// de la tentative et passeraient toutes deux le contrôle de rejeu.
var checkoutLocker cart.Locker = cache.Locker{}

func lockCheckout(c *gin.Context, userID string) (release func(), ok bool) {
	key := "checkout:inflight:" + userID
	locked, err := checkoutLocker.TryLock(c.Request.Context(), key, 30*time.Second)
	if err != nil {
		log.Printf("⚠️ Verrou checkout indisponible: %v", err)
		return func() {}, true
	}
	if !locked {
		c.JSON(http.StatusConflict, gin.H{"error": "une opération de checkout est déjà en cours"})
		return nil, false
	}
	return func() { checkoutLocker.Unlock(c.Request.Context(), key) }, true
}

func attemptResponse(a *checkout.Attempt) gin.H {
	return gin.H{
		"id":           a.ID,
		"state":        a.State,
		"items":        a.Items,
		"subtotal":     a.Subtotal(),
		"totalItems":   cart.TotalItems(a.Items),
		"delivery":     a.Delivery,
		"errorMessage": a.ErrorMessage,
	}
}

// 🟢 POST /api/checkout/begin
// Ouvre la revue de commande. Recommencer pendant qu'une tentative existe
// l'écrase : dernière tentative gagne, l'intention précédente est abandonnée.
func BeginCheckout(c *gin.Context) {
	gw := middleware.Gateway(c)
	ctx := c.Request.Context()

	items, err := gw.CartDetails(ctx)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	// Les adresses enregistrées sont un confort : leur échec de chargement
	// n'empêche pas la revue de s'ouvrir.
	saved, err := gw.Addresses(ctx)
	if err != nil {
		log.Printf("⚠️ Chargement des adresses échoué, revue sans présélection: %v", err)
		saved = nil
	}

	orch := checkout.New(gw)
	attempt, err := orch.Begin(items, saved)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	if err := checkoutStore().Save(ctx, userID, attempt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde tentative"})
		return
	}
	c.JSON(http.StatusOK, attemptResponse(attempt))
}

// 🟢 GET /api/checkout
// Tentative courante, pour re-rendre la revue.
func GetCheckout(c *gin.Context) {
	attempt, err := checkoutStore().Load(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, checkout.ErrNoAttempt) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture tentative"})
		return
	}
	c.JSON(http.StatusOK, attemptResponse(attempt))
}

type checkoutAddressRequest struct {
	AddressID string          `json:"addressId"`
	Address   *models.Address `json:"address"`
}

// 🟡 POST /api/checkout/address
// Sélection d'une adresse enregistrée OU saisie libre. Les deux modes
// convergent vers la même valeur de travail.
func SetCheckoutAddress(c *gin.Context) {
	var req checkoutAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := middleware.Gateway(c)
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	store := checkoutStore()

	attempt, err := store.Load(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": checkout.ErrNoAttempt.Error()})
		return
	}

	orch := checkout.New(gw)
	switch {
	case req.AddressID != "":
		saved, err := gw.Addresses(ctx)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		var found *models.Address
		for i := range saved {
			if saved[i].ID == req.AddressID {
				found = &saved[i]
				break
			}
		}
		if found == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Adresse introuvable"})
			return
		}
		err = orch.SelectAddress(attempt, *found)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	case req.Address != nil:
		if err := orch.EditAddress(attempt, *req.Address); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "addressId ou address requis"})
		return
	}

	if err := store.Save(ctx, userID, attempt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde tentative"})
		return
	}
	c.JSON(http.StatusOK, attemptResponse(attempt))
}

// 🟢 POST /api/checkout/confirm
// Valide la revue, crée l'intention de paiement, et renvoie les paramètres à
// passer au widget prestataire.
func ConfirmCheckout(c *gin.Context) {
	gw := middleware.Gateway(c)
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	store := checkoutStore()

	release, ok := lockCheckout(c, userID)
	if !ok {
		return
	}
	defer release()

	attempt, err := store.Load(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": checkout.ErrNoAttempt.Error()})
		return
	}

	orch := checkout.New(gw)
	confirmErr := orch.Confirm(ctx, attempt)

	// Session expirée : réponse uniforme avec redirection, la tentative en
	// Redis reste telle quelle.
	if errors.Is(confirmErr, gateway.ErrUnauthorized) {
		respondGatewayError(c, confirmErr)
		return
	}

	// L'échec comme le succès laissent une tentative à re-rendre : on la
	// sauvegarde dans les deux cas (panier et adresse préservés).
	if err := store.Save(ctx, userID, attempt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde tentative"})
		return
	}

	if confirmErr != nil {
		switch {
		case errors.Is(confirmErr, checkout.ErrAddressIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": confirmErr.Error(), "showAddressForm": true})
		case errors.Is(confirmErr, checkout.ErrBadState):
			c.JSON(http.StatusConflict, gin.H{"error": confirmErr.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": attempt.ErrorMessage, "state": attempt.State})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": attempt.State,
		"payment": gin.H{
			"key":         attempt.Intent.Key,
			"amount":      attempt.Intent.Amount,
			"currency":    attempt.Intent.Currency,
			"order_id":    attempt.Intent.GatewayOrderID,
			"description": fmt.Sprintf("Order for %d item(s)", cart.TotalItems(attempt.Items)),
			"contact":     attempt.Delivery.Address.Phone,
		},
	})
}

// 🟢 POST /api/checkout/complete
// Retour du widget avec le reçu signé.
func CompleteCheckout(c *gin.Context) {
	var receipt models.Receipt
	if err := c.ShouldBindJSON(&receipt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := middleware.Gateway(c)
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	store := checkoutStore()

	release, ok := lockCheckout(c, userID)
	if !ok {
		return
	}
	defer release()

	attempt, err := store.Load(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": checkout.ErrNoAttempt.Error()})
		return
	}

	orch := checkout.New(gw)
	completeErr := orch.CompletePayment(ctx, attempt, receipt)

	if completeErr != nil {
		switch {
		case errors.Is(completeErr, gateway.ErrUnauthorized):
			respondGatewayError(c, completeErr)
		case errors.Is(completeErr, checkout.ErrReceiptReplay), errors.Is(completeErr, checkout.ErrBadState):
			c.JSON(http.StatusConflict, gin.H{"error": completeErr.Error()})
		default:
			if err := store.Save(ctx, userID, attempt); err == nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": attempt.ErrorMessage, "state": attempt.State})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde tentative"})
			}
		}
		return
	}

	// Commande persistée côté serveur : la tentative est close, le panier a
	// été vidé, on prévient les vues abonnées.
	_ = store.Delete(ctx, userID)
	if items, err := gw.CartDetails(ctx); err == nil {
		cache.CartBroadcaster{}.CartChanged(userID, items)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order":    attempt.Order,
		"redirect": "/orders",
	})
}

// 🟡 POST /api/checkout/dismiss
// Widget fermé sans payer : annulation silencieuse, retour à la revue,
// aucun message.
func DismissCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	store := checkoutStore()

	attempt, err := store.Load(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": checkout.ErrNoAttempt.Error()})
		return
	}

	orch := checkout.New(middleware.Gateway(c))
	if err := orch.Dismiss(attempt); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := store.Save(ctx, userID, attempt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde tentative"})
		return
	}
	c.JSON(http.StatusOK, attemptResponse(attempt))
}

// 🟡 POST /api/checkout/cancel
// Fermeture de la revue.
func CancelCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	store := checkoutStore()

	attempt, err := store.Load(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": checkout.ErrNoAttempt.Error()})
		return
	}

	orch := checkout.New(middleware.Gateway(c))
	if err := orch.Cancel(attempt); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	_ = store.Delete(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
