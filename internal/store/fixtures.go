package store

import "yellow-mart/internal/models"

// FallbackProducts returns the fixture catalog used when the backend is
// unreachable, and pushed as the seed set when the remote catalog is empty.
func FallbackProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Yellow Mart Pro Headphones",
			Price:       12500,
			Category:    "Electronics",
			Description: "High-fidelity noise cancelling headphones with 40h battery life.",
			Image:       "https://picsum.photos/400/400?random=1",
			Rating:      4.8,
			Stock:       45,
			Features:    []string{"Noise Cancellation", "Bluetooth 5.3", "Fast Charging"},
		},
		{
			ID:          "2",
			Name:        "Urban Runner Sneakers",
			Price:       4500,
			Category:    "Fashion",
			Description: "Lightweight, breathable running shoes for the modern athlete.",
			Image:       "https://picsum.photos/400/400?random=2",
			Rating:      4.5,
			Stock:       120,
			Features:    []string{"Memory Foam", "Breathable Mesh", "Non-slip Sole"},
		},
		{
			ID:          "3",
			Name:        "Smart Watch Series Y",
			Price:       8500,
			Category:    "Electronics",
			Description: "Track your fitness, sleep, and notifications on the go.",
			Image:       "https://picsum.photos/400/400?random=3",
			Rating:      4.9,
			Stock:       15,
			Features:    []string{"ECG Monitor", "Water Resistant", "Always-on Display"},
		},
		{
			ID:          "4",
			Name:        "Vintage Denim Jacket",
			Price:       3200,
			Category:    "Fashion",
			Description: "Classic style meets modern comfort. 100% cotton.",
			Image:       "https://picsum.photos/400/400?random=4",
			Rating:      4.2,
			Stock:       8,
			Features:    []string{"Premium Denim", "Unisex Fit", "Vintage Wash"},
		},
		{
			ID:          "5",
			Name:        "4K Drone Camera",
			Price:       45000,
			Category:    "Electronics",
			Description: "Professional grade drone with 3-axis gimbal and 4K video.",
			Image:       "https://picsum.photos/400/400?random=5",
			Rating:      4.9,
			Stock:       5,
			Features:    []string{"4K 60fps", "30min Flight Time", "Obstacle Avoidance"},
		},
		{
			ID:          "6",
			Name:        "Ergonomic Office Chair",
			Price:       15000,
			Category:    "Furniture",
			Description: "Work in comfort with lumbar support and adjustable height.",
			Image:       "https://picsum.photos/400/400?random=6",
			Rating:      4.7,
			Stock:       22,
			Features:    []string{"Lumbar Support", "Mesh Back", "360 Swivel"},
		},
	}
}
