// Package cart expose le panier côté vitrine : totaux recalculés à partir des
// prix serveur les plus frais, et mutations en "écrire puis relire" : on ne
// patche jamais l'état local, on le remplace par le panier refetché.
package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"velour_storefront/internal/models"
)

// ErrMinQuantity : on ne descend pas sous 1 article depuis la vitrine.
// Le serveur garde son propre garde-fou, celui-ci n'est qu'une commodité.
var ErrMinQuantity = errors.New("la quantité minimale est de 1")

// ErrMutationInFlight : une mutation est déjà en cours sur ce produit
// (double-clic rapide) : on refuse la seconde tant que la première n'est pas
// résolue.
var ErrMutationInFlight = errors.New("une opération est déjà en cours sur cet article")

// API est la partie du client commerce dont le panier a besoin.
type API interface {
	CartDetails(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	ReduceQuantity(ctx context.Context, productID string) error
	RemoveFromCart(ctx context.Context, productID string) error
}

// Notifier diffuse "le panier a changé" aux vues qui affichent un compteur.
// Remplace l'événement global ambiant par un sujet explicite.
type Notifier interface {
	CartChanged(userID string, items []models.CartItem)
}

// Locker pose un verrou court par utilisateur+produit le temps d'une
// mutation, pour absorber les doubles soumissions.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string)
}

type Service struct {
	api      API
	notifier Notifier
	locker   Locker
	userID   string
}

func NewService(api API, notifier Notifier, locker Locker, userID string) *Service {
	return &Service{api: api, notifier: notifier, locker: locker, userID: userID}
}

// Subtotal recalcule le sous-total à partir des prix produits courants,
// jamais à partir d'un total mémorisé côté serveur.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Product.Price
	}
	return total
}

// TotalItems compte les articles toutes lignes confondues.
func TotalItems(items []models.CartItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// Fetch relit le panier. Le résultat remplace tout état antérieur.
func (s *Service) Fetch(ctx context.Context) ([]models.CartItem, error) {
	return s.api.CartDetails(ctx)
}

// Add incrémente la quantité puis relit le panier.
func (s *Service) Add(ctx context.Context, productID string) ([]models.CartItem, error) {
	return s.mutate(ctx, productID, func() error {
		return s.api.AddToCart(ctx, productID, 1)
	})
}

// Reduce décrémente la quantité puis relit le panier. Refuse localement de
// passer sous 1.
func (s *Service) Reduce(ctx context.Context, productID string) ([]models.CartItem, error) {
	items, err := s.api.CartDetails(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Product.ID == productID && item.Quantity <= 1 {
			return nil, ErrMinQuantity
		}
	}
	return s.mutate(ctx, productID, func() error {
		return s.api.ReduceQuantity(ctx, productID)
	})
}

// Remove supprime la ligne puis relit le panier.
func (s *Service) Remove(ctx context.Context, productID string) ([]models.CartItem, error) {
	return s.mutate(ctx, productID, func() error {
		return s.api.RemoveFromCart(ctx, productID)
	})
}

// mutate sérialise les mutations par produit, applique l'écriture, puis
// refetche le panier complet et notifie les observateurs.
func (s *Service) mutate(ctx context.Context, productID string, op func() error) ([]models.CartItem, error) {
	if s.locker != nil {
		key := "cart:inflight:" + s.userID + ":" + productID
		ok, err := s.locker.TryLock(ctx, key, 10*time.Second)
		if err != nil {
			log.Printf("⚠️ Verrou panier indisponible: %v", err)
		} else if !ok {
			return nil, ErrMutationInFlight
		} else {
			defer s.locker.Unlock(ctx, key)
		}
	}

	if err := op(); err != nil {
		return nil, err
	}

	items, err := s.api.CartDetails(ctx)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.CartChanged(s.userID, items)
	}
	return items, nil
}
