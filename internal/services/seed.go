package service

import (
	"time"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
)

// SampleSneakers is the catalog written once into a new user's namespace.
func SampleSneakers(now time.Time) []models.Sneaker {
	return []models.Sneaker{
		{
			ID:        "1",
			Name:      "Air Max 90",
			Price:     12999,
			Quantity:  50,
			Category:  models.CategoryRunning,
			Image:     "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Jordan 1 Retro",
			Price:     24999,
			Quantity:  30,
			Category:  models.CategoryBasketball,
			Image:     "https://images.unsplash.com/photo-1584735175315-9d5df23860e6?w=400&h=300&fit=crop",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "3",
			Name:      "Yeezy Boost 350",
			Price:     29999,
			Quantity:  5,
			Category:  models.CategoryCasual,
			Image:     "https://images.unsplash.com/photo-1600185365483-26d7a4cc7519?w=400&h=300&fit=crop",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "4",
			Name:      "Converse All Star",
			Price:     4499,
			Quantity:  100,
			Category:  models.CategoryCasual,
			Image:     "https://images.unsplash.com/photo-1539185441755-769473a23570?w=400&h=300&fit=crop",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "5",
			Name:      "Puma RS-X",
			Price:     9999,
			Quantity:  40,
			Category:  models.CategoryRunning,
			Image:     "https://images.unsplash.com/photo-1608667508764-33cf0726b13a?w=400&h=300&fit=crop",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
