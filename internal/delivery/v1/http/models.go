package http

import (
	"time"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
)

// Все денежные поля отдаются в копейках.

type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"original_price,omitempty"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Nutrition     string `json:"nutrition"`
	Unit          string `json:"unit"`
	Featured      bool   `json:"featured"`
}

type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CartLineResponse — позиция корзины, развёрнутая по каталогу.
// Позиции с удалённым товаром в развёрнутый список не попадают.
type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int64           `json:"quantity"`
	LineTotal int64           `json:"line_total"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Lines []CartLineResponse `json:"lines"`
	Total int64              `json:"total"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OrderResponse struct {
	ID        string             `json:"id"`
	Items     []CartItemResponse `json:"items"`
	Total     int64              `json:"total"`
	Customer  CustomerResponse   `json:"customer"`
	CreatedAt time.Time          `json:"created_at"`
	Status    string             `json:"status"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Delta int64 `json:"delta"`
}

type PlaceOrderRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      string(p.Category),
		Image:         p.Image,
		Description:   p.Description,
		Nutrition:     p.Nutrition,
		Unit:          p.Unit,
		Featured:      p.Featured,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toCartItemResponse(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}

func toArrCartItemResponse(items []domain.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toCartItemResponse(&items[i]))
	}
	return out
}

// toCartResponse разворачивает корзину по текущему каталогу: устаревшие
// позиции остаются в items, но не дают ни строки, ни вклада в сумму.
func toCartResponse(cart []domain.CartItem, products []domain.Product) CartResponse {
	index := make(map[string]*domain.Product, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
	}

	resp := CartResponse{
		Items: toArrCartItemResponse(cart),
		Lines: make([]CartLineResponse, 0, len(cart)),
	}

	for _, item := range cart {
		product, ok := index[item.ProductID]
		if !ok {
			continue
		}
		lineTotal := product.Price * item.Quantity
		resp.Lines = append(resp.Lines, CartLineResponse{
			Product:   toProductResponse(product),
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		resp.Total += lineTotal
	}

	return resp
}

func toOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:    order.ID,
		Items: toArrCartItemResponse(order.Items),
		Total: order.Total,
		Customer: CustomerResponse{
			Name:    order.Customer.Name,
			Address: order.Customer.Address,
			Phone:   order.Customer.Phone,
		},
		CreatedAt: order.CreatedAt,
		Status:    string(order.Status),
	}
}

func toArrOrderResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

func (f *ProductForm) toAddProductReq() *usecase.AddProductReq {
	req := usecase.NewAddProductReq(f.Name, f.Price, f.Category)
	req.OriginalPrice = f.OriginalPrice
	req.Image = f.ImageURL
	req.Description = f.Description
	req.Nutrition = f.Nutrition
	req.Unit = f.Unit
	req.Featured = f.Featured
	req.ImageFile = f.ImageFile
	return req
}

func (f *ProductForm) toEditProductReq(id string, currentImage string) *usecase.EditProductReq {
	image := f.ImageURL
	if image == "" {
		image = currentImage
	}

	return usecase.NewEditProductReq(domain.Product{
		ID:            id,
		Name:          f.Name,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Category:      f.Category,
		Image:         image,
		Description:   f.Description,
		Nutrition:     f.Nutrition,
		Unit:          f.Unit,
		Featured:      f.Featured,
	}, f.ImageFile)
}
