package converter

import "time"

type ProductModel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"original_price,omitempty"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Nutrition     string `json:"nutrition"`
	Unit          string `json:"unit"`
	Featured      bool   `json:"featured,omitempty"`
}

type CartItemModel struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type CustomerModel struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OrderModel struct {
	ID        string          `json:"id"`
	Items     []CartItemModel `json:"items"`
	Total     int64           `json:"total"`
	Customer  CustomerModel   `json:"customer"`
	CreatedAt time.Time       `json:"created_at"`
	Status    string          `json:"status"`
}
