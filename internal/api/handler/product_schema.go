package handler

import "github.com/northmart/commerce-system/internal/core/domain"

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}

type productResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product"`
}

// productListResponse carries the pre-pagination total, the size of this
// page, and the page arithmetic.
type productListResponse struct {
	Success       bool              `json:"success"`
	TotalProducts int64             `json:"totalProducts"`
	Count         int               `json:"count"`
	CurrentPage   int               `json:"currentPage"`
	TotalPages    int               `json:"totalPages"`
	Products      []*domain.Product `json:"products"`
}
