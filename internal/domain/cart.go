package domain

// CartItem — позиция корзины. ProductID — слабая ссылка на товар:
// товар может быть уже удалён из каталога, такие позиции фильтруются
// на чтении и не считаются ошибкой.
type CartItem struct {
	ProductID string
	Quantity  int64
}

func NewCartItem(productID string, quantity int64) *CartItem {
	return &CartItem{
		ProductID: productID,
		Quantity:  quantity,
	}
}
