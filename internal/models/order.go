package models

import "time"

// Statuts de paiement (fixés à la création de la commande, côté serveur).
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Statuts de livraison. Seul un administrateur les fait évoluer.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderShipping       = "shipping"
	OrderOutForDelivery = "out for delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// FulfillmentStages est la timeline affichée sur la page de suivi, dans
// l'ordre. "cancelled" n'en fait pas partie : c'est un état absorbant rendu à
// part.
var FulfillmentStages = []string{
	OrderPending,
	OrderConfirmed,
	OrderShipping,
	OrderOutForDelivery,
	OrderDelivered,
}

type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type Order struct {
	ID               string      `json:"_id"`
	User             string      `json:"user"`
	Address          Address     `json:"address"`
	OrderDetails     []OrderItem `json:"orderDetails"`
	TotalAmount      float64     `json:"totalAmount"`
	PaymentStatus    string      `json:"paymentStatus"`
	OrderStatus      string      `json:"orderStatus"`
	GatewayOrderID   string      `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string      `json:"gatewayPaymentId,omitempty"`
	OrderDate        time.Time   `json:"orderDate"`
}

// StatusStage renvoie l'index de l'étape courante dans FulfillmentStages, ou
// -1 si la commande est annulée (ou le statut inconnu).
func (o Order) StatusStage() int {
	for i, stage := range FulfillmentStages {
		if o.OrderStatus == stage {
			return i
		}
	}
	return -1
}

func (o Order) Cancelled() bool {
	return o.OrderStatus == OrderCancelled
}
