package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/repository/memory"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newTestAPI поднимает роутер поверх usecase с фиксированным каталогом.
func newTestAPI(t *testing.T) *chi.Mux {
	t.Helper()

	repo := memory.NewStoreRepo()
	require.NoError(t, repo.SaveProducts(context.Background(), []domain.Product{
		{ID: "p-apples", Name: "Apples", Price: 10000, Category: domain.CategoryFruits},
		{ID: "p-milk", Name: "Milk", Price: 6500, Category: domain.CategoryDairy},
	}))

	uc := usecase.NewStoreUC(repo, nil, nil, logger.NewSlogLogger())
	require.NoError(t, uc.Init(context.Background()))

	mux := chi.NewRouter()
	NewRouter(mux, logger.NewSlogLogger()).Init(uc)
	return mux
}

func doJSON(t *testing.T, mux *chi.Mux, method, target string, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if out != nil && rec.Code < 400 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestListProducts(t *testing.T) {
	mux := newTestAPI(t)

	var products []ProductResponse
	rec := doJSON(t, mux, http.MethodGet, "/api/v1/products", "", &products)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, products, 2)
	require.Equal(t, "Apples", products[0].Name)
	require.Equal(t, int64(10000), products[0].Price)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	mux := newTestAPI(t)

	var products []ProductResponse
	rec := doJSON(t, mux, http.MethodGet, "/api/v1/products?category=Dairy", "", &products)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, products, 1)
	require.Equal(t, "Milk", products[0].Name)
}

func TestCartFlow(t *testing.T) {
	mux := newTestAPI(t)

	var cart CartResponse
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p-apples","quantity":2}`, &cart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cart.Items, 1)
	require.Equal(t, int64(20000), cart.Total)

	// Повторное добавление наращивает количество.
	rec = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p-apples"}`, &cart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(3), cart.Items[0].Quantity)
	require.Equal(t, int64(30000), cart.Total)

	// Дельта с нижней границей 1.
	rec = doJSON(t, mux, http.MethodPatch, "/api/v1/cart/items/p-apples",
		`{"delta":-10}`, &cart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(1), cart.Items[0].Quantity)

	rec = doJSON(t, mux, http.MethodDelete, "/api/v1/cart/items/p-apples", "", &cart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, cart.Items)
}

func TestAddCartItem_Validation(t *testing.T) {
	mux := newTestAPI(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items", `{"quantity":2}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p-apples","quantity":-1}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_StaleItemExcludedFromLines(t *testing.T) {
	mux := newTestAPI(t)

	var cart CartResponse
	doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p-apples","quantity":2}`, &cart)
	doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p-gone","quantity":5}`, &cart)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/cart", "", &cart)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, cart.Items, 2, "raw cart keeps the stale reference")
	require.Len(t, cart.Lines, 1, "stale reference must not expand to a line")
	require.Equal(t, int64(20000), cart.Total)
}

func TestPlaceOrder(t *testing.T) {
	mux := newTestAPI(t)

	var cart CartResponse
	doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p-milk","quantity":2}`, &cart)

	var order OrderResponse
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/orders",
		`{"name":"Ivan","address":"Lenina 1","phone":"+70000000000"}`, &order)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, int64(13000), order.Total)
	require.Equal(t, string(domain.OrderStatusPending), order.Status)
	require.Equal(t, "Ivan", order.Customer.Name)

	// Корзина очищена после оформления.
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/cart", "", &cart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, cart.Items)

	var orders []OrderResponse
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/orders", "", &orders)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestPlaceOrder_MissingCustomerFields(t *testing.T) {
	mux := newTestAPI(t)

	for _, body := range []string{
		`{"address":"Lenina 1","phone":"+70000000000"}`,
		`{"name":"  ","address":"Lenina 1","phone":"+70000000000"}`,
		`{"name":"Ivan","phone":"+70000000000"}`,
		`{"name":"Ivan","address":"Lenina 1"}`,
	} {
		rec := doJSON(t, mux, http.MethodPost, "/api/v1/orders", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		require.True(t, strings.Contains(errResp.Message, "customer"), "body: %s", body)
	}
}

func TestCreateProduct_RejectsNonMultipart(t *testing.T) {
	mux := newTestAPI(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/products", `{"name":"x"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	mux := newTestAPI(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/p-milk", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []ProductResponse
	getRec := doJSON(t, mux, http.MethodGet, "/api/v1/products", "", &products)
	require.Equal(t, http.StatusOK, getRec.Code)
	require.Len(t, products, 1)
	require.Equal(t, "p-apples", products[0].ID)
}
