package catalog

import (
	"catalog-browser-api/internal/models"
)

func fp(v float64) *float64 { return &v }

func seedColors() []models.Color {
	return []models.Color{
		{ID: "black", Name: "Black", Hex: "#1A1A1A"},
		{ID: "white", Name: "White", Hex: "#F5F5F5"},
		{ID: "silver", Name: "Silver", Hex: "#C0C0C0"},
		{ID: "navy", Name: "Navy", Hex: "#1B2A4A"},
		{ID: "red", Name: "Red", Hex: "#C0392B"},
		{ID: "green", Name: "Green", Hex: "#27AE60"},
		{ID: "beige", Name: "Beige", Hex: "#D9C7A7"},
		{ID: "rose-gold", Name: "Rose Gold", Hex: "#B76E79"},
	}
}

func color(id string) models.Color {
	for _, c := range seedColors() {
		if c.ID == id {
			return c
		}
	}
	return models.Color{ID: id, Name: id}
}

func colors(ids ...string) []models.Color {
	out := make([]models.Color, 0, len(ids))
	for _, id := range ids {
		out = append(out, color(id))
	}
	return out
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID: "elec-001", Name: "Aurora Wireless Headphones",
			Price: 249, DiscountPrice: fp(199), DiscountPercent: 20,
			RatingValue: 4.7, RatingCount: 1843, IsHot: true,
			Colors:   colors("black", "white", "rose-gold"),
			Category: "Electronics", Subcategory: "Audio", InStock: true,
			Description: "Over-ear noise cancelling headphones with 40h battery life.",
		},
		{
			ID: "elec-002", Name: "Pulse Smart Watch",
			Price: 329, RatingValue: 4.4, RatingCount: 976,
			Colors:   colors("black", "silver"),
			Category: "Electronics", Subcategory: "Wearables", InStock: true,
			Description: "AMOLED display, GPS, heart-rate and sleep tracking.",
		},
		{
			ID: "elec-003", Name: "Nimbus Bluetooth Speaker",
			Price: 119, DiscountPrice: fp(89), DiscountPercent: 25,
			RatingValue: 4.2, RatingCount: 2210,
			Colors:   colors("black", "navy", "red"),
			Category: "Electronics", Subcategory: "Audio", InStock: true,
			Description: "Waterproof portable speaker with 360-degree sound.",
		},
		{
			ID: "elec-004", Name: "Vertex 4K Action Camera",
			Price: 449, RatingValue: 4.6, RatingCount: 531, IsHot: true,
			Colors:   colors("black"),
			Category: "Electronics", Subcategory: "Cameras", InStock: false,
			Description: "4K60 capture, hypersmooth stabilisation, dive housing included.",
		},
		{
			ID: "elec-005", Name: "Ion Mechanical Keyboard",
			Price: 159, DiscountPrice: fp(129), DiscountPercent: 19,
			RatingValue: 4.8, RatingCount: 1420,
			Colors:   colors("black", "white"),
			Category: "Electronics", Subcategory: "Accessories", InStock: true,
			Description: "Hot-swappable switches with per-key RGB.",
		},
		{
			ID: "cloth-001", Name: "Harbor Linen Shirt",
			Price: 79, RatingValue: 4.3, RatingCount: 642,
			Colors:   colors("white", "navy", "beige"),
			Category: "Clothing", Subcategory: "Shirts", InStock: true,
			Description: "Relaxed-fit shirt in washed European linen.",
		},
		{
			ID: "cloth-002", Name: "Summit Down Jacket",
			Price: 289, DiscountPrice: fp(219), DiscountPercent: 24,
			RatingValue: 4.9, RatingCount: 388, IsHot: true,
			Colors:   colors("black", "navy", "green"),
			Category: "Clothing", Subcategory: "Outerwear", InStock: true,
			Description: "800-fill recycled down, packs into its own pocket.",
		},
		{
			ID: "cloth-003", Name: "Coast Organic Tee",
			Price: 35, RatingValue: 4.1, RatingCount: 1954,
			Colors:   colors("white", "black", "green", "beige"),
			Category: "Clothing", Subcategory: "Shirts", InStock: true,
			Description: "Heavyweight organic cotton, garment dyed.",
		},
		{
			ID: "cloth-004", Name: "Drift Merino Sweater",
			Price: 145, RatingValue: 4.5, RatingCount: 287,
			Colors:   colors("navy", "beige"),
			Category: "Clothing", Subcategory: "Knitwear", InStock: false,
			Description: "Extra-fine merino crewneck, fully fashioned seams.",
		},
		{
			ID: "foot-001", Name: "Stride Road Runner",
			Price: 139, DiscountPrice: fp(109), DiscountPercent: 22,
			RatingValue: 4.6, RatingCount: 3102, IsHot: true,
			Colors:   colors("white", "black", "red"),
			Category: "Footwear", Subcategory: "Running", InStock: true,
			Description: "Nitrogen-infused midsole, 8mm drop daily trainer.",
		},
		{
			ID: "foot-002", Name: "Terra Trail Boot",
			Price: 189, RatingValue: 4.4, RatingCount: 765,
			Colors:   colors("beige", "green"),
			Category: "Footwear", Subcategory: "Hiking", InStock: true,
			Description: "Waterproof leather boot with a grippy lug outsole.",
		},
		{
			ID: "foot-003", Name: "Plaza Court Sneaker",
			Price: 95, RatingValue: 4.0, RatingCount: 1287,
			Colors:   colors("white", "navy"),
			Category: "Footwear", Subcategory: "Casual", InStock: true,
			Description: "Minimal leather sneaker on a cupsole.",
		},
		{
			ID: "acc-001", Name: "Meridian Leather Wallet",
			Price: 59, DiscountPrice: fp(45), DiscountPercent: 24,
			RatingValue: 4.5, RatingCount: 893,
			Colors:   colors("black", "beige"),
			Category: "Accessories", InStock: true,
			Description: "Full-grain bifold with RFID shielding.",
		},
		{
			ID: "acc-002", Name: "Atlas Travel Backpack",
			Price: 175, RatingValue: 4.7, RatingCount: 1560, IsHot: true,
			Colors:   colors("black", "navy", "green"),
			Category: "Accessories", InStock: true,
			Description: "35L carry-on backpack with clamshell opening.",
		},
		{
			ID: "acc-003", Name: "Solstice Sunglasses",
			Price: 129, RatingValue: 4.2, RatingCount: 412,
			Colors:   colors("black", "silver"),
			Category: "Accessories", InStock: false,
			Description: "Polarised lenses in a bio-acetate frame.",
		},
		{
			ID: "acc-004", Name: "Ridge Canvas Belt",
			Price: 29, RatingValue: 3.9, RatingCount: 238,
			Colors:   colors("beige", "navy", "black"),
			Category: "Accessories", InStock: true,
			Description: "Woven canvas belt with a forged buckle.",
		},
	}
}
