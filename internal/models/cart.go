package models

// Product tel que renvoyé par l'API commerce. Le prix est toujours
// celui du serveur, jamais une copie locale. Les champs catalogue au-delà du
// prix ne servent qu'à l'affichage boutique et au back-office.
type Product struct {
	ID              string   `json:"_id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	BasePrice       *float64 `json:"basePrice,omitempty"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	Image           []string `json:"image,omitempty"`
	Quantity        int      `json:"quantity,omitempty"`
	InStock         bool     `json:"instock,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Volume          float64  `json:"volume,omitempty"`
	Concentration   string   `json:"concentration,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Featured        bool     `json:"featured,omitempty"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
