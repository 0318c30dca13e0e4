package domain

// Category — фиксированный набор категорий каталога.
type Category string

const (
	CategoryFruits     Category = "Fruits"
	CategoryVegetables Category = "Vegetables"
	CategoryDairy      Category = "Dairy"
	CategoryStaples    Category = "Staples"
	CategorySpices     Category = "Spices"
	CategorySnacks     Category = "Snacks"
	CategoryBeverages  Category = "Beverages"
)

// Categories возвращает все известные категории в порядке отображения.
func Categories() []Category {
	return []Category{
		CategoryFruits,
		CategoryVegetables,
		CategoryDairy,
		CategoryStaples,
		CategorySpices,
		CategorySnacks,
		CategoryBeverages,
	}
}

// Valid сообщает, входит ли категория в известный набор.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
