package models

// Product is a catalog entry. The `id` field is the stable storefront
// identifier; Mongo's own _id is left to the driver.
type Product struct {
	ID          string   `json:"id" bson:"id" binding:"required"`
	Name        string   `json:"name" bson:"name" binding:"required"`
	Price       float64  `json:"price" bson:"price" binding:"required"`
	Category    string   `json:"category" bson:"category"`
	Description string   `json:"description" bson:"description"`
	Image       string   `json:"image" bson:"image"`
	Rating      float64  `json:"rating" bson:"rating"`
	Stock       int      `json:"stock" bson:"stock"`
	Features    []string `json:"features" bson:"features"`
}

// CartLine is a product snapshot plus the quantity a session intends to buy.
// The embedded product flattens on the wire, matching the backend's item shape.
type CartLine struct {
	Product  `bson:",inline"`
	Quantity int `json:"quantity" bson:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
