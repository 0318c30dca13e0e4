package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/freshcart-backend/internal/cfg"
	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/freshcart-backend/pkg/clients"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// Имена коллекций. Каждая хранится под собственным ключом как полный
// JSON-снимок и перезаписывается целиком.
const (
	collectionProducts = "products"
	collectionCart     = "cart"
	collectionOrders   = "orders"
)

// StoreRepo — адаптер персистентного хранилища витрины поверх Redis.
type StoreRepo struct {
	client *clients.RedisClient
	cfg    *cfg.StoreCfg
	logger logger.Logger
}

func NewStoreRepo(client *clients.RedisClient, cfg *cfg.StoreCfg, logger logger.Logger) *StoreRepo {
	return &StoreRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// LoadProducts возвращает сохранённый каталог. Отсутствие ключа — первый
// запуск: записывается и возвращается стартовый каталог.
func (s *StoreRepo) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	data, err := s.load(ctx, collectionProducts)
	if err != nil {
		return nil, err
	}

	if data == nil {
		seed := domain.DefaultCatalog()
		if err := s.SaveProducts(ctx, seed); err != nil {
			return nil, err
		}
		s.logger.Infof("seeded default catalog: %d products", len(seed))
		return seed, nil
	}

	var models []converter.ProductModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), s.corrupt(collectionProducts, err))
	}

	return converter.ToArrDomainProduct(models), nil
}

func (s *StoreRepo) SaveProducts(ctx context.Context, products []domain.Product) error {
	return s.save(ctx, collectionProducts, converter.ToArrProductModel(products))
}

// LoadCart возвращает сохранённую корзину либо пустой срез.
func (s *StoreRepo) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	data, err := s.load(ctx, collectionCart)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return []domain.CartItem{}, nil
	}

	var models []converter.CartItemModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), s.corrupt(collectionCart, err))
	}

	return converter.ToArrDomainCartItem(models), nil
}

func (s *StoreRepo) SaveCart(ctx context.Context, cart []domain.CartItem) error {
	return s.save(ctx, collectionCart, converter.ToArrCartItemModel(cart))
}

// LoadOrders возвращает сохранённые заказы (в порядке записи, новые первыми)
// либо пустой срез.
func (s *StoreRepo) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	data, err := s.load(ctx, collectionOrders)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return []domain.Order{}, nil
	}

	var models []converter.OrderModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), s.corrupt(collectionOrders, err))
	}

	return converter.ToArrDomainOrder(models), nil
}

func (s *StoreRepo) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return s.save(ctx, collectionOrders, converter.ToArrOrderModel(orders))
}

// load читает ключ коллекции. Отсутствие ключа — не ошибка, возвращается nil.
func (s *StoreRepo) load(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Client.Get(ctx, s.key(collection)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// save перезаписывает ключ коллекции полным снимком без TTL.
func (s *StoreRepo) save(ctx context.Context, collection string, models any) error {
	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, s.key(collection), data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// key возвращает Redis-ключ коллекции.
func (s *StoreRepo) key(collection string) string {
	return s.cfg.KeyPrefix + ":" + collection
}

func (s *StoreRepo) corrupt(collection string, err error) error {
	return fmt.Errorf("corrupted collection %q: %w", s.key(collection), err)
}
