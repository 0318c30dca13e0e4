package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/repository/memory"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

// newStoreUC возвращает usecase поверх пустого in-memory хранилища.
func newStoreUC(t *testing.T) (*usecase.StoreUseCase, *memory.StoreRepo) {
	t.Helper()

	repo := memory.NewStoreRepo()
	// Пустой каталог вместо стартового, чтобы тесты были детерминированы.
	require.NoError(t, repo.SaveProducts(context.Background(), []domain.Product{}))

	uc := usecase.NewStoreUC(repo, nil, nil, logger.NewSlogLogger())
	require.NoError(t, uc.Init(context.Background()))

	return uc, repo
}

func addProduct(t *testing.T, uc *usecase.StoreUseCase, name string, price int64) *domain.Product {
	t.Helper()

	product, err := uc.AddProduct(context.Background(), usecase.NewAddProductReq(name, price, domain.CategoryFruits))
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)

	return product
}

func TestAddProduct_AssignsUniqueIDs(t *testing.T) {
	uc, _ := newStoreUC(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		product := addProduct(t, uc, fmt.Sprintf("product-%d", i), 100)
		require.False(t, seen[product.ID], "duplicate product id %s", product.ID)
		seen[product.ID] = true
	}

	require.Len(t, uc.Products(), 10)
}

func TestEditProduct_ReplacesMatching(t *testing.T) {
	uc, _ := newStoreUC(t)

	product := addProduct(t, uc, "Apples", 10000)
	other := addProduct(t, uc, "Bananas", 4900)

	updated := *product
	updated.Name = "Green Apples"
	updated.Price = 12000

	require.NoError(t, uc.EditProduct(context.Background(), usecase.NewEditProductReq(updated, nil)))

	products := uc.Products()
	require.Len(t, products, 2)
	require.Equal(t, "Green Apples", products[0].Name)
	require.Equal(t, int64(12000), products[0].Price)
	require.Equal(t, other.Name, products[1].Name)
}

func TestEditProduct_UnknownIDIsNoop(t *testing.T) {
	uc, _ := newStoreUC(t)

	addProduct(t, uc, "Apples", 10000)

	ghost := domain.Product{ID: "no-such-id", Name: "Ghost", Price: 1, Category: domain.CategorySnacks}
	require.NoError(t, uc.EditProduct(context.Background(), usecase.NewEditProductReq(ghost, nil)))

	products := uc.Products()
	require.Len(t, products, 1)
	require.Equal(t, "Apples", products[0].Name)
}

func TestDeleteProduct_RemovesOnlyMatching(t *testing.T) {
	uc, _ := newStoreUC(t)

	first := addProduct(t, uc, "Apples", 10000)
	second := addProduct(t, uc, "Bananas", 4900)

	require.NoError(t, uc.AddToCart(context.Background(), first.ID, 2))
	require.NoError(t, uc.DeleteProduct(context.Background(), first.ID))

	products := uc.Products()
	require.Len(t, products, 1)
	require.Equal(t, second.ID, products[0].ID)

	// Каскадного удаления из корзины нет: ссылка остаётся и становится
	// устаревшей.
	cart := uc.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, first.ID, cart[0].ProductID)

	// Повторное удаление — тихий no-op.
	require.NoError(t, uc.DeleteProduct(context.Background(), first.ID))
	require.Len(t, uc.Products(), 1)
}

func TestAddToCart_MergesQuantities(t *testing.T) {
	uc, _ := newStoreUC(t)

	require.NoError(t, uc.AddToCart(context.Background(), "p1", 2))
	require.NoError(t, uc.AddToCart(context.Background(), "p1", 3))

	cart := uc.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "p1", cart[0].ProductID)
	require.Equal(t, int64(5), cart[0].Quantity)
}

func TestAddToCart_UnknownProductAllowed(t *testing.T) {
	uc, _ := newStoreUC(t)

	// Существование товара не проверяется.
	require.NoError(t, uc.AddToCart(context.Background(), "missing", 1))
	require.Len(t, uc.Cart(), 1)
}

func TestUpdateQuantity_FloorsAtOne(t *testing.T) {
	uc, _ := newStoreUC(t)

	require.NoError(t, uc.AddToCart(context.Background(), "p1", 1))
	require.NoError(t, uc.UpdateQuantity(context.Background(), "p1", -5))

	cart := uc.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, int64(1), cart[0].Quantity)

	require.NoError(t, uc.UpdateQuantity(context.Background(), "p1", 4))
	require.Equal(t, int64(5), uc.Cart()[0].Quantity)
}

func TestUpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	uc, _ := newStoreUC(t)

	require.NoError(t, uc.UpdateQuantity(context.Background(), "missing", 3))
	require.Empty(t, uc.Cart())
}

func TestRemoveThenAdd_ProducesFreshItem(t *testing.T) {
	uc, _ := newStoreUC(t)

	require.NoError(t, uc.AddToCart(context.Background(), "p1", 7))
	require.NoError(t, uc.RemoveFromCart(context.Background(), "p1"))
	require.Empty(t, uc.Cart())

	require.NoError(t, uc.AddToCart(context.Background(), "p1", 2))

	cart := uc.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, int64(2), cart[0].Quantity, "prior removed quantity must not merge in")
}

func TestClearCart(t *testing.T) {
	uc, _ := newStoreUC(t)

	require.NoError(t, uc.AddToCart(context.Background(), "p1", 1))
	require.NoError(t, uc.AddToCart(context.Background(), "p2", 2))
	require.NoError(t, uc.ClearCart(context.Background()))
	require.Empty(t, uc.Cart())
}

func TestPlaceOrder_TotalAndClearedCart(t *testing.T) {
	uc, _ := newStoreUC(t)

	product := addProduct(t, uc, "Apples", 10000)
	require.NoError(t, uc.AddToCart(context.Background(), product.ID, 2))

	customer := domain.Customer{Name: "A", Phone: "B", Address: "C"}
	order, err := uc.PlaceOrder(context.Background(), customer)
	require.NoError(t, err)

	require.Equal(t, int64(20000), order.Total)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Equal(t, customer, order.Customer)
	require.Len(t, order.Items, 1)
	require.Equal(t, int64(2), order.Items[0].Quantity)
	require.False(t, order.CreatedAt.IsZero())

	require.Empty(t, uc.Cart())

	orders := uc.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestPlaceOrder_NewestFirst(t *testing.T) {
	uc, _ := newStoreUC(t)

	product := addProduct(t, uc, "Apples", 100)

	require.NoError(t, uc.AddToCart(context.Background(), product.ID, 1))
	first, err := uc.PlaceOrder(context.Background(), domain.Customer{Name: "A"})
	require.NoError(t, err)

	require.NoError(t, uc.AddToCart(context.Background(), product.ID, 1))
	second, err := uc.PlaceOrder(context.Background(), domain.Customer{Name: "B"})
	require.NoError(t, err)

	orders := uc.Orders()
	require.Len(t, orders, 2)
	require.Equal(t, second.ID, orders[0].ID)
	require.Equal(t, first.ID, orders[1].ID)
}

func TestPlaceOrder_StaleItemContributesZero(t *testing.T) {
	uc, _ := newStoreUC(t)

	product := addProduct(t, uc, "Apples", 10000)
	require.NoError(t, uc.AddToCart(context.Background(), product.ID, 2))
	require.NoError(t, uc.AddToCart(context.Background(), "deleted-product", 5))

	order, err := uc.PlaceOrder(context.Background(), domain.Customer{Name: "A"})
	require.NoError(t, err)

	// Устаревшая позиция попадает в снимок заказа, но даёт 0 в сумме.
	require.Equal(t, int64(20000), order.Total)
	require.Len(t, order.Items, 2)
}

func TestPlaceOrder_TotalFrozenAfterPriceChange(t *testing.T) {
	uc, _ := newStoreUC(t)

	product := addProduct(t, uc, "Apples", 10000)
	require.NoError(t, uc.AddToCart(context.Background(), product.ID, 1))

	order, err := uc.PlaceOrder(context.Background(), domain.Customer{Name: "A"})
	require.NoError(t, err)
	require.Equal(t, int64(10000), order.Total)

	updated := *product
	updated.Price = 99900
	require.NoError(t, uc.EditProduct(context.Background(), usecase.NewEditProductReq(updated, nil)))

	require.Equal(t, int64(10000), uc.Orders()[0].Total, "order total must not follow later price changes")
}

func TestReads_ReturnCopies(t *testing.T) {
	uc, _ := newStoreUC(t)

	addProduct(t, uc, "Apples", 100)
	require.NoError(t, uc.AddToCart(context.Background(), "p1", 1))

	products := uc.Products()
	products[0].Name = "mutated"
	require.Equal(t, "Apples", uc.Products()[0].Name)

	cart := uc.Cart()
	cart[0].Quantity = 99
	require.Equal(t, int64(1), uc.Cart()[0].Quantity)
}

func TestWriteThrough_StateSurvivesRestart(t *testing.T) {
	uc, repo := newStoreUC(t)

	product := addProduct(t, uc, "Apples", 10000)
	require.NoError(t, uc.AddToCart(context.Background(), product.ID, 3))

	// Новый экземпляр поверх того же хранилища видит то же состояние.
	restarted := usecase.NewStoreUC(repo, nil, nil, logger.NewSlogLogger())
	require.NoError(t, restarted.Init(context.Background()))

	require.Equal(t, uc.Products(), restarted.Products())
	require.Equal(t, uc.Cart(), restarted.Cart())
}

func TestSubscribe_PublishesAfterMutation(t *testing.T) {
	uc, _ := newStoreUC(t)

	snapshots, unsubscribe := uc.Subscribe()
	defer unsubscribe()

	require.NoError(t, uc.AddToCart(context.Background(), "p1", 2))

	snap := <-snapshots
	require.Len(t, snap.Cart, 1)
	require.Equal(t, int64(2), snap.Cart[0].Quantity)
}

func TestSubscribe_SlowConsumerSeesLatest(t *testing.T) {
	uc, _ := newStoreUC(t)

	snapshots, unsubscribe := uc.Subscribe()
	defer unsubscribe()

	// Подписчик не читает: устаревшие снимки вытесняются, мутации не блокируются.
	for i := 0; i < 5; i++ {
		require.NoError(t, uc.AddToCart(context.Background(), "p1", 1))
	}

	snap := <-snapshots
	require.Equal(t, int64(5), snap.Cart[0].Quantity)
}

// failingRepo проваливает все записи, чтение делегирует обёрнутому хранилищу.
type failingRepo struct {
	*memory.StoreRepo
}

var errStorageDown = fmt.Errorf("storage down")

func (f *failingRepo) SaveProducts(context.Context, []domain.Product) error { return errStorageDown }
func (f *failingRepo) SaveCart(context.Context, []domain.CartItem) error    { return errStorageDown }
func (f *failingRepo) SaveOrders(context.Context, []domain.Order) error     { return errStorageDown }

func TestMutation_NotCommittedWhenPersistenceFails(t *testing.T) {
	inner := memory.NewStoreRepo()
	require.NoError(t, inner.SaveProducts(context.Background(), []domain.Product{}))

	uc := usecase.NewStoreUC(&failingRepo{StoreRepo: inner}, nil, nil, logger.NewSlogLogger())
	require.NoError(t, uc.Init(context.Background()))

	require.ErrorIs(t, uc.AddToCart(context.Background(), "p1", 1), errStorageDown)
	require.Empty(t, uc.Cart(), "memory must not diverge from storage")

	_, err := uc.AddProduct(context.Background(), usecase.NewAddProductReq("Apples", 100, domain.CategoryFruits))
	require.ErrorIs(t, err, errStorageDown)
	require.Empty(t, uc.Products())
}
