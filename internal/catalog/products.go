package catalog

import "modernliving-backend/internal/models"

// defaultProducts is the Modern Living catalog. Hardcoded in-memory data;
// there is no inventory system behind it.
var defaultProducts = []models.Product{
	{
		ID:           "1",
		Name:         "Horizon Specs",
		Brand:        "Modern Living",
		Description:  "Gafas de realidad aumentada con montura clásica de acetato.",
		Price:        299,
		Rating:       4.8,
		ReviewsCount: 128,
		Image:        "https://images.unsplash.com/photo-1572635196237-14b3f281503f?auto=format&fit=crop&q=80&w=800",
		Category:     "Wearables",
		IsNew:        true,
	},
	{
		ID:           "2",
		Name:         "Lumina Hub",
		Brand:        "Modern Living",
		Description:  "Centro de control inteligente con diseño minimalista.",
		Price:        149,
		Rating:       5,
		ReviewsCount: 84,
		Image:        "https://images.unsplash.com/photo-1558002038-103792e1972d?auto=format&fit=crop&q=80&w=800",
		Category:     "Home Security",
	},
	{
		ID:           "3",
		Name:         "Aura Speaker",
		Brand:        "Modern Living",
		Description:  "Altavoz de alta fidelidad con acabado en cristal templado.",
		Price:        199,
		Rating:       4.5,
		ReviewsCount: 56,
		Image:        "https://images.unsplash.com/photo-1545454675-3531b543be5d?auto=format&fit=crop&q=80&w=800",
		Category:     "Home Audio",
	},
	{
		ID:           "4",
		Name:         "Gradient Lightstrip V2",
		Brand:        "Philips Hue",
		Description:  "Tira LED inteligente con gradiente de color dinámico.",
		Price:        129,
		Rating:       4.8,
		ReviewsCount: 128,
		Image:        "https://images.unsplash.com/photo-1550537687-c91072c4792d?auto=format&fit=crop&q=80&w=800",
		Category:     "Lighting & Decor",
		IsBestSeller: true,
	},
	{
		ID:            "5",
		Name:          "A19 Smart Bulb Color",
		Brand:         "LIFX",
		Description:   "Bombilla inteligente con espectro completo de color.",
		Price:         39,
		OriginalPrice: 49,
		Rating:        5,
		ReviewsCount:  450,
		Image:         "https://images.unsplash.com/photo-1550985543-f47f38aee65e?auto=format&fit=crop&q=80&w=800",
		Category:      "Lighting & Decor",
	},
	{
		ID:           "6",
		Name:         "Shapes Triangles Kit",
		Brand:        "Nanoleaf",
		Description:  "Paneles de luz modulares triangulares para pared.",
		Price:        199,
		Rating:       4,
		ReviewsCount: 89,
		Image:        "https://images.unsplash.com/photo-1507646227570-511a767468e5?auto=format&fit=crop&q=80&w=800",
		Category:     "Lighting & Decor",
	},
	{
		ID:            "7",
		Name:          "Lyra Floor Lamp",
		Brand:         "Govee",
		Description:   "Lámpara de pie moderna con efectos de iluminación RGBIC.",
		Price:         149,
		OriginalPrice: 179,
		Rating:        5,
		ReviewsCount:  214,
		Image:         "https://images.unsplash.com/photo-1513506491745-1d262f3c23e6?auto=format&fit=crop&q=80&w=800",
		Category:      "Lighting & Decor",
	},
	{
		ID:           "8",
		Name:         "Smart Glass Pane",
		Brand:        "Modern Living",
		Description:  "Cristal inteligente con transparencia conmutable.",
		Price:        399,
		Rating:       4.9,
		ReviewsCount: 34,
		Image:        "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&q=80&w=800",
		Category:     "Lighting & Decor",
		IsNew:        true,
	},
}
