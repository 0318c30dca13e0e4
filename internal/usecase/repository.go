package usecase

import (
	"context"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
)

// StoreRepository — адаптер персистентного хранилища. Каждая коллекция
// живёт под собственным ключом и перезаписывается целиком (полный снимок,
// не дельта); транзакционности между ключами нет.
type StoreRepository interface {
	// LoadProducts возвращает сохранённый каталог. Отсутствие ключа — не
	// ошибка, а первый запуск: адаптер записывает и возвращает стартовый
	// каталог. Ошибка возможна только при недоступном хранилище или
	// повреждённых данных.
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error

	// LoadCart возвращает сохранённую корзину либо пустой срез.
	LoadCart(ctx context.Context) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, cart []domain.CartItem) error

	// LoadOrders возвращает сохранённые заказы (новые первыми) либо пустой срез.
	LoadOrders(ctx context.Context) ([]domain.Order, error)
	SaveOrders(ctx context.Context, orders []domain.Order) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
