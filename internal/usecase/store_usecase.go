package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/google/uuid"
)

// Префикс ключей объектов, загруженных этим сервисом в S3.
// Всё остальное в Product.Image считается внешним URL и не трогается.
const managedImagePrefix = "products/"

// StoreUseCase — единственный владелец состояния витрины: каталога,
// корзины и заказов. Все мутации проходят через него и сквозной записью
// уходят в StoreRepository до фиксации в памяти, поэтому после завершения
// операции память и хранилище не расходятся. Мьютекс сериализует мутации
// целиком, включая запись.
type StoreUseCase struct {
	mu       sync.Mutex
	products []domain.Product
	cart     []domain.CartItem
	orders   []domain.Order

	storeRepo StoreRepository
	imageRepo ImageRepository
	producer  EventProducer
	logger    logger.Logger

	subMu   sync.Mutex
	subs    map[int]chan Snapshot
	nextSub int
}

func NewStoreUC(
	storeRepo StoreRepository,
	imageRepo ImageRepository,
	producer EventProducer,
	logger logger.Logger,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo: storeRepo,
		imageRepo: imageRepo,
		producer:  producer,
		logger:    logger,
		subs:      make(map[int]chan Snapshot),
	}
}

// Init один раз загружает все три коллекции из хранилища и публикует
// первый снимок. Повреждённые данные в хранилище — невосстановимая
// ошибка: Init возвращает её, сервис не стартует.
func (s *StoreUseCase) Init(ctx context.Context) error {
	const op = "StoreUseCase.Init"

	products, err := s.storeRepo.LoadProducts(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	cart, err := s.storeRepo.LoadCart(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	orders, err := s.storeRepo.LoadOrders(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	s.mu.Lock()
	s.products = products
	s.cart = cart
	s.orders = orders
	s.publishLocked()
	s.mu.Unlock()

	s.logger.Infof("store state loaded: %d products, %d cart items, %d orders",
		len(products), len(cart), len(orders))

	return nil
}

// AddProduct назначает товару новый идентификатор, добавляет его в каталог
// и возвращает созданный товар.
func (s *StoreUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "StoreUseCase.AddProduct"

	s.mu.Lock()
	defer s.mu.Unlock()

	product := &domain.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Image:         req.Image,
		Description:   req.Description,
		Nutrition:     req.Nutrition,
		Unit:          req.Unit,
		Featured:      req.Featured,
	}

	if req.ImageFile != nil {
		key, err := s.uploadImage(ctx, product.ID, req.ImageFile)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		product.Image = key
	}

	next := append(copyProducts(s.products), *product)
	if err := s.storeRepo.SaveProducts(ctx, next); err != nil {
		s.cleanupImage(product.Image, op)
		return nil, e.Wrap(op, err)
	}
	s.products = next

	s.publishLocked()
	s.emitEvent(ctx, EventProductUpserted, product.ID, product)

	return product, nil
}

// EditProduct заменяет товар с совпадающим идентификатором. Неизвестный
// идентификатор — тихий no-op.
func (s *StoreUseCase) EditProduct(ctx context.Context, req *EditProductReq) error {
	const op = "StoreUseCase.EditProduct"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findProduct(s.products, req.Product.ID)
	if idx < 0 {
		return nil
	}

	updated := req.Product
	prevImage := s.products[idx].Image

	if req.ImageFile != nil {
		key, err := s.uploadImage(ctx, updated.ID, req.ImageFile)
		if err != nil {
			return e.Wrap(op, err)
		}
		updated.Image = key
	}

	next := copyProducts(s.products)
	next[idx] = updated
	if err := s.storeRepo.SaveProducts(ctx, next); err != nil {
		if req.ImageFile != nil {
			s.cleanupImage(updated.Image, op)
		}
		return e.Wrap(op, err)
	}
	s.products = next

	// Старое загруженное изображение больше никем не используется.
	if updated.Image != prevImage {
		s.cleanupImage(prevImage, op)
	}

	s.publishLocked()
	s.emitEvent(ctx, EventProductUpserted, updated.ID, &updated)

	return nil
}

// DeleteProduct удаляет товар из каталога. Позиции корзины, ссылающиеся на
// него, каскадно не удаляются: устаревшие ссылки фильтруются на чтении.
func (s *StoreUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "StoreUseCase.DeleteProduct"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findProduct(s.products, id)
	if idx < 0 {
		return nil
	}
	removed := s.products[idx]

	next := make([]domain.Product, 0, len(s.products)-1)
	next = append(next, s.products[:idx]...)
	next = append(next, s.products[idx+1:]...)

	if err := s.storeRepo.SaveProducts(ctx, next); err != nil {
		return e.Wrap(op, err)
	}
	s.products = next

	s.cleanupImage(removed.Image, op)

	s.publishLocked()
	s.emitEvent(ctx, EventProductDeleted, id, map[string]string{"id": id})

	return nil
}

// AddToCart добавляет товар в корзину: существующая позиция наращивает
// количество, иначе появляется новая. Существование товара не проверяется.
func (s *StoreUseCase) AddToCart(ctx context.Context, productID string, quantity int64) error {
	const op = "StoreUseCase.AddToCart"

	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyCart(s.cart)
	if idx := findCartItem(next, productID); idx >= 0 {
		next[idx].Quantity += quantity
	} else {
		next = append(next, *domain.NewCartItem(productID, quantity))
	}

	if err := s.storeRepo.SaveCart(ctx, next); err != nil {
		return e.Wrap(op, err)
	}
	s.cart = next

	s.publishLocked()
	return nil
}

// RemoveFromCart убирает позицию корзины, если она есть.
func (s *StoreUseCase) RemoveFromCart(ctx context.Context, productID string) error {
	const op = "StoreUseCase.RemoveFromCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findCartItem(s.cart, productID)
	if idx < 0 {
		return nil
	}

	next := make([]domain.CartItem, 0, len(s.cart)-1)
	next = append(next, s.cart[:idx]...)
	next = append(next, s.cart[idx+1:]...)

	if err := s.storeRepo.SaveCart(ctx, next); err != nil {
		return e.Wrap(op, err)
	}
	s.cart = next

	s.publishLocked()
	return nil
}

// UpdateQuantity меняет количество позиции на delta с нижней границей 1.
// Удаление позиции — только через RemoveFromCart.
func (s *StoreUseCase) UpdateQuantity(ctx context.Context, productID string, delta int64) error {
	const op = "StoreUseCase.UpdateQuantity"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findCartItem(s.cart, productID)
	if idx < 0 {
		return nil
	}

	next := copyCart(s.cart)
	next[idx].Quantity = max(1, next[idx].Quantity+delta)

	if err := s.storeRepo.SaveCart(ctx, next); err != nil {
		return e.Wrap(op, err)
	}
	s.cart = next

	s.publishLocked()
	return nil
}

// ClearCart опустошает корзину.
func (s *StoreUseCase) ClearCart(ctx context.Context) error {
	const op = "StoreUseCase.ClearCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clearCartLocked(ctx); err != nil {
		return e.Wrap(op, err)
	}

	s.publishLocked()
	return nil
}

// PlaceOrder оформляет заказ из текущей корзины: сумма считается по
// действующим ценам каталога (позиции с удалённым товаром дают 0),
// заказ со статусом Pending встаёт первым в списке, корзина очищается.
func (s *StoreUseCase) PlaceOrder(ctx context.Context, customer domain.Customer) (*domain.Order, error) {
	const op = "StoreUseCase.PlaceOrder"

	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.cart {
		if idx := findProduct(s.products, item.ProductID); idx >= 0 {
			total += s.products[idx].Price * item.Quantity
		}
	}

	order := domain.NewOrder(uuid.NewString(), copyCart(s.cart), total, customer, time.Now().UTC())

	nextOrders := make([]domain.Order, 0, len(s.orders)+1)
	nextOrders = append(nextOrders, *order)
	nextOrders = append(nextOrders, s.orders...)

	if err := s.storeRepo.SaveOrders(ctx, nextOrders); err != nil {
		return nil, e.Wrap(op, err)
	}
	s.orders = nextOrders

	// Между ключами нет транзакции: заказ уже сохранён, отказ записи
	// корзины оставит её неочищенной.
	if err := s.clearCartLocked(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.publishLocked()
	s.emitEvent(ctx, EventOrderPlaced, order.ID, order)

	return order, nil
}

// ЧТЕНИЕ

func (s *StoreUseCase) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.products)
}

func (s *StoreUseCase) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cart)
}

func (s *StoreUseCase) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.orders)
}

func (s *StoreUseCase) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ПОДПИСКИ

func (s *StoreUseCase) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}

	return ch, cancel
}

// publishLocked рассылает снимок всем подписчикам. Вызывается под s.mu.
// Непрочитанный устаревший снимок вытесняется свежим, мутация не ждёт
// подписчиков.
func (s *StoreUseCase) publishLocked() {
	snap := s.snapshotLocked()

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (s *StoreUseCase) snapshotLocked() Snapshot {
	return Snapshot{
		Products: copyProducts(s.products),
		Cart:     copyCart(s.cart),
		Orders:   copyOrders(s.orders),
	}
}

// ВНУТРЕННЕЕ

func (s *StoreUseCase) clearCartLocked(ctx context.Context) error {
	next := []domain.CartItem{}
	if err := s.storeRepo.SaveCart(ctx, next); err != nil {
		return err
	}
	s.cart = next
	return nil
}

// uploadImage сохраняет файл изображения в S3 и возвращает ключ объекта.
func (s *StoreUseCase) uploadImage(ctx context.Context, productID string, file *ProductImage) (string, error) {
	if s.imageRepo == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	key := managedImagePrefix + productID + "/" + uuid.NewString() + path.Ext(file.Name)
	image := domain.NewImage(key, file.Data, file.MimeType)

	return s.imageRepo.Upload(ctx, image)
}

// cleanupImage best-effort удаляет загруженное нами изображение.
// Внешние URL не трогаются.
func (s *StoreUseCase) cleanupImage(image string, op string) {
	if s.imageRepo == nil || !strings.HasPrefix(image, managedImagePrefix) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.imageRepo.Delete(ctx, image); err != nil {
		s.logger.Warnf("Failed to delete image %s: %v", image, e.Wrap(op, err))
	}
}

// emitEvent best-effort публикует событие изменения состояния.
func (s *StoreUseCase) emitEvent(ctx context.Context, eventType string, key string, payload any) {
	if s.producer == nil {
		return
	}

	if err := s.producer.WriteEvent(ctx, NewWriteEventReq(eventType, key, payload)); err != nil {
		s.logger.Warnf("Failed to publish %s event: %v", eventType, err)
	}
}

func findProduct(products []domain.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func findCartItem(cart []domain.CartItem, productID string) int {
	for i, item := range cart {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func copyProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

func copyCart(cart []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(cart))
	copy(out, cart)
	return out
}

func copyOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, order := range orders {
		out[i] = order
		out[i].Items = copyCart(order.Items)
	}
	return out
}
