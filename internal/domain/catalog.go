package domain

func int64Ptr(v int64) *int64 { return &v }

// DefaultCatalog возвращает стартовый каталог, которым заполняется
// хранилище при первом запуске.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:            "p-1001",
			Name:          "Fresh Bananas",
			Price:         4900,
			OriginalPrice: int64Ptr(6000),
			Category:      CategoryFruits,
			Image:         "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400",
			Description:   "Sweet ripe bananas, sourced from local farms.",
			Nutrition:     "Energy 89 kcal, Carbs 23g, Fiber 2.6g per 100g",
			Unit:          "1 dozen",
			Featured:      true,
		},
		{
			ID:          "p-1002",
			Name:        "Red Apples",
			Price:       18000,
			Category:    CategoryFruits,
			Image:       "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400",
			Description: "Crisp and juicy premium red apples.",
			Nutrition:   "Energy 52 kcal, Carbs 14g, Fiber 2.4g per 100g",
			Unit:        "1 kg",
		},
		{
			ID:            "p-2001",
			Name:          "Organic Tomatoes",
			Price:         4000,
			OriginalPrice: int64Ptr(5500),
			Category:      CategoryVegetables,
			Image:         "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400",
			Description:   "Vine-ripened organic tomatoes.",
			Nutrition:     "Energy 18 kcal, Carbs 3.9g, Vitamin C 14% DV per 100g",
			Unit:          "500 g",
			Featured:      true,
		},
		{
			ID:          "p-2002",
			Name:        "Baby Spinach",
			Price:       3500,
			Category:    CategoryVegetables,
			Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400",
			Description: "Tender baby spinach leaves, washed and ready.",
			Nutrition:   "Energy 23 kcal, Protein 2.9g, Iron 15% DV per 100g",
			Unit:        "250 g",
		},
		{
			ID:          "p-3001",
			Name:        "Farm Fresh Milk",
			Price:       6800,
			Category:    CategoryDairy,
			Image:       "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
			Description: "Full-cream pasteurized milk.",
			Nutrition:   "Energy 64 kcal, Protein 3.3g, Calcium 12% DV per 100ml",
			Unit:        "1 L",
			Featured:    true,
		},
		{
			ID:          "p-3002",
			Name:        "Greek Yogurt",
			Price:       12000,
			Category:    CategoryDairy,
			Image:       "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400",
			Description: "Thick and creamy plain greek yogurt.",
			Nutrition:   "Energy 59 kcal, Protein 10g per 100g",
			Unit:        "400 g",
		},
		{
			ID:            "p-4001",
			Name:          "Basmati Rice",
			Price:         45000,
			OriginalPrice: int64Ptr(52000),
			Category:      CategoryStaples,
			Image:         "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
			Description:   "Long-grain aged basmati rice.",
			Nutrition:     "Energy 130 kcal, Carbs 28g per 100g cooked",
			Unit:          "5 kg",
		},
		{
			ID:          "p-5001",
			Name:        "Turmeric Powder",
			Price:       9000,
			Category:    CategorySpices,
			Image:       "https://images.unsplash.com/photo-1615485500704-8e990f9900f7?w=400",
			Description: "Pure ground turmeric with rich color and aroma.",
			Nutrition:   "Curcumin 3-5%",
			Unit:        "200 g",
		},
		{
			ID:          "p-6001",
			Name:        "Salted Potato Chips",
			Price:       5000,
			Category:    CategorySnacks,
			Image:       "https://images.unsplash.com/photo-1566478989037-eec170784d0b?w=400",
			Description: "Classic salted chips, crunchy and light.",
			Nutrition:   "Energy 536 kcal, Fat 35g per 100g",
			Unit:        "150 g",
		},
		{
			ID:            "p-7001",
			Name:          "Cold Brew Coffee",
			Price:         19000,
			OriginalPrice: int64Ptr(22000),
			Category:      CategoryBeverages,
			Image:         "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400",
			Description:   "Smooth cold brew concentrate, unsweetened.",
			Nutrition:     "Energy 2 kcal per 100ml",
			Unit:          "750 ml",
			Featured:      true,
		},
	}
}
