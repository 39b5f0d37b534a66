package service

import "github.com/aaravmahajanofficial/sneaker-inventory/internal/models"

// ComputeStats derives the dashboard figures from a collection without
// touching storage. AveragePrice is value per unit in stock, not per
// product, and is 0 when nothing is in stock.
func ComputeStats(sneakers []models.Sneaker) models.DashboardStats {

	stats := models.DashboardStats{TotalProducts: len(sneakers)}

	for i := range sneakers {
		stats.TotalStock += sneakers[i].Quantity
		stats.TotalValue += sneakers[i].Price * float64(sneakers[i].Quantity)

		if sneakers[i].IsLowStock() {
			stats.LowStockCount++
		}
	}

	if stats.TotalStock > 0 {
		stats.AveragePrice = stats.TotalValue / float64(stats.TotalStock)
	}

	return stats
}
