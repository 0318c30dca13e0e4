package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
)

// StoreRepo — in-memory реализация usecase.StoreRepository для тестов и
// локального запуска без Redis. Контракт тот же: три независимые
// коллекции, полный снимок на каждую запись, каталог засевается при
// первом чтении.
type StoreRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	cart     []domain.CartItem
	orders   []domain.Order
	seeded   bool
}

func NewStoreRepo() *StoreRepo {
	return &StoreRepo{}
}

func (s *StoreRepo) LoadProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.products = domain.DefaultCatalog()
		s.seeded = true
	}

	return copySlice(s.products), nil
}

func (s *StoreRepo) SaveProducts(_ context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = copySlice(products)
	s.seeded = true
	return nil
}

func (s *StoreRepo) LoadCart(_ context.Context) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.cart), nil
}

func (s *StoreRepo) SaveCart(_ context.Context, cart []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = copySlice(cart)
	return nil
}

func (s *StoreRepo) LoadOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.orders), nil
}

func (s *StoreRepo) SaveOrders(_ context.Context, orders []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = copySlice(orders)
	return nil
}

// Храним и отдаём копии, чтобы избежать непредсказуемых мутаций извне.
func copySlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
