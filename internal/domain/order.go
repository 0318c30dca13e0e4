package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Customer — контактные данные покупателя, указанные при оформлении.
type Customer struct {
	Name    string
	Address string
	Phone   string
}

// Order — оформленный заказ. После создания заказ неизменяем:
// Items — снимок корзины на момент оформления, Total зафиксирован
// по ценам каталога на тот же момент. Ядро выставляет только статус
// Pending; Delivered и Cancelled зарезервированы за внешними
// административными переходами.
type Order struct {
	ID        string
	Items     []CartItem
	Total     int64 // Сумма хранится в копейках
	Customer  Customer
	CreatedAt time.Time
	Status    OrderStatus
}

func NewOrder(id string, items []CartItem, total int64, customer Customer, createdAt time.Time) *Order {
	return &Order{
		ID:        id,
		Items:     items,
		Total:     total,
		Customer:  customer,
		CreatedAt: createdAt,
		Status:    OrderStatusPending,
	}
}
