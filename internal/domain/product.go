package domain

// Product описывает товар каталога
type Product struct {
	ID            string
	Name          string
	Price         int64  // Цена хранится в копейках
	OriginalPrice *int64 // Цена до скидки; nil, если скидки нет
	Category      Category
	Image         string // Ключ объекта в MinIO либо внешний URL
	Description   string
	Nutrition     string
	Unit          string
	Featured      bool
}

func NewProduct(id string, name string, price int64, category Category) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
	}
}

// Discounted сообщает, действует ли на товар скидка.
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}
