package models

import "time"

type Category string

const (
	CategoryRunning    Category = "Running"
	CategoryCasual     Category = "Casual"
	CategoryBasketball Category = "Basketball"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRunning, CategoryCasual, CategoryBasketball:
		return true
	}

	return false
}

// LowStockThreshold is the quantity at or below which an item counts as low stock.
const LowStockThreshold = 10

type Sneaker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Category  Category  `json:"category"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Sneaker) IsLowStock() bool {
	return s.Quantity <= LowStockThreshold
}

// SneakerFormData carries the user-editable fields of a new item.
type SneakerFormData struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Price    float64  `json:"price" validate:"gt=0"`
	Quantity int      `json:"quantity" validate:"gte=0"`
	Category Category `json:"category" validate:"required,oneof=Running Casual Basketball"`
	Image    string   `json:"image,omitempty" validate:"omitempty,url"`
}

// UpdateSneakerRequest is a partial update; nil fields are left untouched.
type UpdateSneakerRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Price    *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Quantity *int      `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Category *Category `json:"category,omitempty" validate:"omitempty,oneof=Running Casual Basketball"`
	// "" clears the image; other values are checked as URLs by the store
	Image    *string   `json:"image,omitempty"`
}

type DashboardStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalStock    int     `json:"totalStock"`
	TotalValue    float64 `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
	LowStockCount int     `json:"lowStockCount"`
}
