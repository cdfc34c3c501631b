package cart

import cartpkg "github.com/aamart/storefront/pkg/cart"

// AddItemInput is the request body for adding a line to the cart. Price
// tolerates numeric and textual representations; anything unparseable
// normalizes to zero rather than rejecting the line.
type AddItemInput struct {
	Name     string        `json:"name" validate:"required"`
	SKU      string        `json:"sku"`
	Price    cartpkg.Price `json:"price"`
	Quantity int           `json:"quantity" validate:"gte=0"`
	Image    string        `json:"image"`
}

// CartDTO is the cart view returned to the order and cart pages.
type CartDTO struct {
	Items []cartpkg.LineItem `json:"items"`
	Total string             `json:"total"`
}
