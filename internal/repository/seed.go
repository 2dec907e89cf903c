package repository

import (
	"github.com/shopspring/decimal"

	"harmony-store/internal/auth"
	"harmony-store/internal/models"
)

// Demo credentials for the offline fallback store:
//
//	admin@musicstore.com / admin123   (admin)
//	john@example.com     / password123
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:           "admin-1",
			Name:         "Admin User",
			Email:        "admin@musicstore.com",
			PasswordHash: mustHash("admin123"),
			IsAdmin:      true,
		},
		{
			ID:           "user-1",
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: mustHash("password123"),
			IsAdmin:      false,
		},
	}
}

// SeedProducts returns the fixed demo catalog served when no database is
// reachable.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Fender Stratocaster",
			Category:    "Guitars",
			Price:       decimal.NewFromInt(1299),
			Image:       "https://images.unsplash.com/photo-1564186763535-ebb21ef5277f?w=600&h=600&fit=crop",
			Description: "The iconic Fender Stratocaster delivers versatile tones with its three single-coil pickups, comfortable contoured body, and smooth tremolo system. A timeless choice for any guitarist.",
			Stock:       12,
		},
		{
			ID:          "2",
			Name:        "Gibson Les Paul Standard",
			Category:    "Guitars",
			Price:       decimal.NewFromInt(2499),
			Image:       "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=600&h=600&fit=crop",
			Description: "The Gibson Les Paul Standard features a mahogany body with a maple top, dual humbucker pickups, and legendary sustain. The gold standard of rock guitars.",
			Stock:       6,
		},
		{
			ID:          "3",
			Name:        "Yamaha Grand Piano C3X",
			Category:    "Pianos & Keyboards",
			Price:       decimal.NewFromInt(4999),
			Image:       "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=600&h=600&fit=crop",
			Description: "The Yamaha C3X Grand Piano offers rich, expressive tone with a responsive touch. Handcrafted with precision, it's perfect for concert halls and studios.",
			Stock:       3,
		},
		{
			ID:          "4",
			Name:        "Roland RD-2000 Stage Piano",
			Category:    "Pianos & Keyboards",
			Price:       decimal.NewFromInt(2699),
			Image:       "https://images.unsplash.com/photo-1552422535-c45813c61732?w=600&h=600&fit=crop",
			Description: "The Roland RD-2000 combines authentic piano sounds with cutting-edge technology. Weighted keys and dual sound engines make it ideal for live performance.",
			Stock:       8,
		},
		{
			ID:          "5",
			Name:        "Pearl Masters Maple Complete",
			Category:    "Drums & Percussion",
			Price:       decimal.NewFromInt(1899),
			Image:       "https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=600&h=600&fit=crop",
			Description: "The Pearl Masters Maple Complete drum kit delivers warm, resonant tones from premium maple shells. Professional-grade hardware and stunning finish.",
			Stock:       5,
		},
		{
			ID:          "6",
			Name:        "Zildjian A Custom Cymbal Pack",
			Category:    "Drums & Percussion",
			Price:       decimal.NewFromInt(899),
			Image:       "https://images.unsplash.com/photo-1524230659092-07f99a75c013?w=600&h=600&fit=crop",
			Description: "Zildjian A Custom cymbals deliver bright, cutting tones perfect for modern music. This pack includes hi-hats, crash, and ride cymbals.",
			Stock:       15,
		},
		{
			ID:          "7",
			Name:        "Yamaha YAS-875EX Alto Saxophone",
			Category:    "Wind Instruments",
			Price:       decimal.NewFromInt(3499),
			Image:       "https://images.unsplash.com/photo-1546539782-6fc531453083?w=600&h=600&fit=crop",
			Description: "The Yamaha YAS-875EX alto saxophone offers a warm, rich tone with excellent projection. Hand-engraved and built for professional performers.",
			Stock:       4,
		},
		{
			ID:          "8",
			Name:        "Bach Stradivarius Trumpet",
			Category:    "Wind Instruments",
			Price:       decimal.NewFromInt(2899),
			Image:       "https://images.unsplash.com/photo-1511192336575-5a79af67a629?w=600&h=600&fit=crop",
			Description: "The Bach Stradivarius trumpet is the benchmark for professional trumpets. Brilliant tone, precise intonation, and superb craftsmanship.",
			Stock:       7,
		},
		{
			ID:          "9",
			Name:        "Stradivarius Violin Replica",
			Category:    "String Instruments",
			Price:       decimal.NewFromInt(1599),
			Image:       "https://images.unsplash.com/photo-1465821185615-20b3c2fbf41b?w=600&h=600&fit=crop",
			Description: "This meticulously crafted Stradivarius replica delivers warm, singing tones with excellent projection. Hand-carved spruce top and maple back.",
			Stock:       9,
		},
		{
			ID:          "10",
			Name:        "Taylor 814ce Acoustic Guitar",
			Category:    "Guitars",
			Price:       decimal.NewFromInt(3299),
			Image:       "https://images.unsplash.com/photo-1558098329-a11cff621064?w=600&h=600&fit=crop",
			Description: "The Taylor 814ce pairs solid rosewood back and sides with a Sitka spruce top for a balanced, articulate voice. Premium electronics included.",
			Stock:       10,
		},
	}
}

// Categories offered by the demo catalog, "All" meaning no filter.
var Categories = []string{
	"All",
	"Guitars",
	"Pianos & Keyboards",
	"Drums & Percussion",
	"Wind Instruments",
	"String Instruments",
}

func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}
