package domain

import "time"

// Product is the catalog aggregate root. OwnerID references the admin
// user that created the record.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Brand       string    `json:"brand" bson:"brand"`
	Stock       int       `json:"stock" bson:"stock"`
	OwnerID     string    `json:"user" bson:"user"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Validate enforces the catalog schema invariants. It runs on create and
// again on every update (full-document updates re-apply validation).
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidProduct
	}
	if p.Price < 0 {
		return ErrInvalidProduct
	}
	if p.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}
