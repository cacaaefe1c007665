// Package checkout séquence la tentative de commande : revue du panier,
// création de l'intention de paiement, remise au widget prestataire, puis
// vérification du reçu signé. Chaque échec ramène l'utilisateur à la revue
// avec son panier et son adresse intacts ; rien n'est retenté
// automatiquement.
package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"velour_storefront/internal/address"
	"velour_storefront/internal/gateway"
	"velour_storefront/internal/models"
)

// PaymentAPI est la partie du client commerce dont l'orchestrateur a besoin.
type PaymentAPI interface {
	CreatePaymentOrder(ctx context.Context) (*models.PaymentIntent, error)
	VerifyPayment(ctx context.Context, receipt models.Receipt, addr models.Address) (*models.Order, error)
}

// Attempt est une tentative de checkout. Sa durée de vie est bornée : créée à
// l'ouverture de la revue, abandonnée à l'annulation, close à la
// confirmation. L'intention de paiement qu'elle porte n'est jamais réutilisée
// d'une tentative à l'autre.
type Attempt struct {
	ID       string            `json:"id"`
	State    State             `json:"state"`
	Items    []models.CartItem `json:"items"`
	Delivery address.Selection `json:"delivery"`
	Intent   *models.PaymentIntent `json:"intent,omitempty"`
	Order    *models.Order         `json:"order,omitempty"`

	// SeenReceipts retient les identifiants de paiement déjà soumis à la
	// vérification : un reçu ne part jamais deux fois vers le serveur.
	SeenReceipts []string `json:"seenReceipts,omitempty"`

	// ErrorMessage est le message affiché dans la revue ; vide après une
	// annulation silencieuse du widget.
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *Attempt) Subtotal() float64 {
	var total float64
	for _, item := range a.Items {
		total += float64(item.Quantity) * item.Product.Price
	}
	return total
}

type Orchestrator struct {
	api PaymentAPI
}

func New(api PaymentAPI) *Orchestrator {
	return &Orchestrator{api: api}
}

// Begin ouvre la revue de commande. Panier vide → refus immédiat, sans appel
// réseau. L'adresse par défaut de l'utilisateur est présélectionnée quand
// elle existe.
func (o *Orchestrator) Begin(items []models.CartItem, saved []models.Address) (*Attempt, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	a := &Attempt{
		ID:        uuid.NewString(),
		State:     StateIdle,
		Items:     items,
		CreatedAt: time.Now(),
	}
	a.Delivery.AutoSelectDefault(saved)
	if err := a.transition(StateReviewing); err != nil {
		return nil, err
	}

	log.Printf("🛒 Revue de commande ouverte (%s) : %d article(s)", a.ID, len(items))
	return a, nil
}

// SelectAddress recopie une adresse enregistrée comme adresse de livraison.
// Uniquement en revue : une fois le widget ouvert, l'adresse est figée jusqu'à
// son retour, sinon la tentative quitterait l'attente de paiement et le reçu
// du widget serait orphelin.
func (o *Orchestrator) SelectAddress(a *Attempt, addr models.Address) error {
	if a.State != StateReviewing {
		return ErrBadState
	}
	a.Delivery.SelectSaved(addr)
	a.ErrorMessage = ""
	return nil
}

// EditAddress remplace l'adresse de livraison par une saisie libre. Même
// restriction que SelectAddress : revue uniquement.
func (o *Orchestrator) EditAddress(a *Attempt, addr models.Address) error {
	if a.State != StateReviewing {
		return ErrBadState
	}
	a.Delivery.SetForm(addr)
	a.ErrorMessage = ""
	return nil
}

// Confirm valide la revue et crée l'intention de paiement. L'adresse est
// vérifiée AVANT l'appel : on ne réserve pas de capacité de paiement pour une
// commande inlivrable. En cas d'échec, retour à la revue avec le message,
// jamais de nouvel essai automatique contre l'endpoint d'intention.
func (o *Orchestrator) Confirm(ctx context.Context, a *Attempt) error {
	if a.State != StateReviewing {
		return ErrBadState
	}
	if !a.Delivery.Complete() {
		a.ErrorMessage = ErrAddressIncomplete.Error()
		return ErrAddressIncomplete
	}

	if err := a.transition(StateCreatingIntent); err != nil {
		return err
	}
	a.ErrorMessage = ""

	intent, err := o.api.CreatePaymentOrder(ctx)
	if err != nil {
		_ = a.transition(StateReviewing)
		// Une session expirée n'est pas une erreur de revue : pas de message
		// client, le handler répond par la redirection de connexion.
		if !errors.Is(err, gateway.ErrUnauthorized) {
			a.ErrorMessage = classifyPaymentError(err)
		}
		log.Printf("❌ Création d'intention échouée (%s) : %v", a.ID, err)
		return err
	}

	a.Intent = intent
	if err := a.transition(StateAwaitingPayment); err != nil {
		return err
	}
	log.Printf("⏳ En attente du widget de paiement (%s) : intention %s", a.ID, intent.GatewayOrderID)
	return nil
}

// CompletePayment reprend la main au retour du widget avec un reçu signé, et
// soumet reçu + adresse à la vérification serveur. Chaque reçu ne part qu'une
// seule fois ; un échec de vérification ramène à la revue avec le message
// classifié.
func (o *Orchestrator) CompletePayment(ctx context.Context, a *Attempt, receipt models.Receipt) error {
	if a.State != StateAwaitingPayment {
		return ErrBadState
	}
	for _, seen := range a.SeenReceipts {
		if seen == receipt.GatewayPaymentID {
			return ErrReceiptReplay
		}
	}

	if err := a.transition(StateVerifying); err != nil {
		return err
	}
	a.SeenReceipts = append(a.SeenReceipts, receipt.GatewayPaymentID)

	order, err := o.api.VerifyPayment(ctx, receipt, a.Delivery.Address)
	if err != nil {
		_ = a.transition(StateReviewing)
		if !errors.Is(err, gateway.ErrUnauthorized) {
			a.ErrorMessage = classifyPaymentError(err)
		}
		log.Printf("❌ Vérification de paiement échouée (%s) : %v", a.ID, err)
		return err
	}

	a.Order = order
	if err := a.transition(StateConfirmed); err != nil {
		return err
	}
	a.ErrorMessage = ""
	log.Printf("🎉 Commande confirmée (%s) : paiement %s", a.ID, receipt.GatewayPaymentID)
	return nil
}

// Dismiss : l'utilisateur a fermé le widget sans payer. Annulation
// silencieuse : retour à la revue, pas de message, aucun effet de bord.
// L'intention déjà créée est simplement abandonnée chez le prestataire.
func (o *Orchestrator) Dismiss(a *Attempt) error {
	if a.State != StateAwaitingPayment {
		return ErrBadState
	}
	if err := a.transition(StateReviewing); err != nil {
		return err
	}
	a.ErrorMessage = ""
	if a.Intent != nil {
		// TODO: annuler explicitement l'intention côté prestataire quand
		// l'API commerce exposera un endpoint de void.
		log.Printf("🚪 Widget fermé sans paiement (%s) — intention %s abandonnée", a.ID, a.Intent.GatewayOrderID)
	}
	return nil
}

// Cancel ferme la revue. La tentative retourne au repos et sera jetée.
func (o *Orchestrator) Cancel(a *Attempt) error {
	if a.State != StateReviewing {
		return ErrBadState
	}
	if err := a.transition(StateIdle); err != nil {
		return err
	}
	a.ErrorMessage = ""
	log.Printf("🚫 Revue de commande annulée (%s)", a.ID)
	return nil
}
