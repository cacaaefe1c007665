package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"velour_storefront/internal/models"
)

// CartEvent est le message poussé aux vues abonnées quand le panier change :
// de quoi rafraîchir un compteur sans refetch complet côté navigateur.
type CartEvent struct {
	Type     string  `json:"type"`
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

func cartChannel(userID string) string {
	return "cartwatch:" + userID
}

// CartBroadcaster publie les changements de panier sur un canal Redis par
// utilisateur. C'est le sujet explicite qui remplace l'ancien événement
// global ambiant ; plusieurs abonnés peuvent écouter, chacun relit ce qu'il
// veut.
type CartBroadcaster struct{}

func (CartBroadcaster) CartChanged(userID string, items []models.CartItem) {
	count := 0
	subtotal := 0.0
	for _, item := range items {
		count += item.Quantity
		subtotal += float64(item.Quantity) * item.Product.Price
	}

	event := CartEvent{Type: "cart_updated", Count: count, Subtotal: subtotal}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := RedisClient.Publish(context.Background(), cartChannel(userID), payload).Err(); err != nil {
		log.Printf("⚠️ Publication changement panier échouée: %v", err)
	}
}

// SubscribeCart s'abonne aux changements de panier d'un utilisateur.
func SubscribeCart(ctx context.Context, userID string) *redis.PubSub {
	return RedisClient.Subscribe(ctx, cartChannel(userID))
}
