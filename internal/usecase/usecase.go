package usecase

import (
	"context"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
)

// StoreUC — контракт витрины для потребителей (HTTP, подписчики).
//
// Контракт мутаций: операции над несуществующими идентификаторами
// (EditProduct, DeleteProduct, RemoveFromCart, UpdateQuantity) завершаются
// успешно и ничего не меняют. Это осознанное поведение, а не ошибка:
// потребители не обязаны проверять существование записи перед вызовом.
// Ошибку операции возвращают только при отказе персистентного хранилища.
type StoreUC interface {
	// Чтение: всегда возвращаются копии коллекций, а не внутренние срезы.
	Products() []domain.Product
	Cart() []domain.CartItem
	Orders() []domain.Order
	Snapshot() Snapshot

	// Subscribe возвращает канал, в который после каждой завершённой
	// мутации публикуется свежий снимок всех трёх коллекций, и функцию
	// отписки. Медленный подписчик теряет устаревшие снимки, но не
	// блокирует мутации.
	Subscribe() (<-chan Snapshot, func())

	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	EditProduct(ctx context.Context, req *EditProductReq) error
	DeleteProduct(ctx context.Context, id string) error

	AddToCart(ctx context.Context, productID string, quantity int64) error
	RemoveFromCart(ctx context.Context, productID string) error
	UpdateQuantity(ctx context.Context, productID string, delta int64) error
	ClearCart(ctx context.Context) error

	PlaceOrder(ctx context.Context, customer domain.Customer) (*domain.Order, error)
}
