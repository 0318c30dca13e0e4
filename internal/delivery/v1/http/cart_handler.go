package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewCartHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *CartHandler {
	return &CartHandler{storeUsecase: storeUsecase, logger: logger}
}

// getCart
//
//	@Summary		Корзина
//	@Description	Возвращает корзину: сырые позиции, строки по каталогу и сумму; устаревшие позиции в строки не входят
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse
//	@Router			/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	snap := c.storeUsecase.Snapshot()
	WriteSuccess(w, http.StatusOK, toCartResponse(snap.Cart, snap.Products))
}

// addItem
//
//	@Summary		Добавление в корзину
//	@Description	Наращивает количество существующей позиции либо создаёт новую; количество по умолчанию 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCartItemRequest	true	"Позиция"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		c.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	if err := c.storeUsecase.AddToCart(r.Context(), req.ProductID, req.Quantity); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	snap := c.storeUsecase.Snapshot()
	WriteSuccess(w, http.StatusOK, toCartResponse(snap.Cart, snap.Products))
}

// updateItem
//
//	@Summary		Изменение количества
//	@Description	Меняет количество позиции на delta с нижней границей 1; неизвестный товар — no-op
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Идентификатор товара"
//	@Param			request	body		UpdateQuantityRequest	true	"Дельта"
//	@Success		200		{object}	CartResponse
//	@Router			/cart/items/{id} [patch]
func (c *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := c.storeUsecase.UpdateQuantity(r.Context(), id, req.Delta); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	snap := c.storeUsecase.Snapshot()
	WriteSuccess(w, http.StatusOK, toCartResponse(snap.Cart, snap.Products))
}

// removeItem
//
//	@Summary		Удаление из корзины
//	@Tags			cart
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	CartResponse
//	@Router			/cart/items/{id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.storeUsecase.RemoveFromCart(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	snap := c.storeUsecase.Snapshot()
	WriteSuccess(w, http.StatusOK, toCartResponse(snap.Cart, snap.Products))
}

// clearCart
//
//	@Summary		Очистка корзины
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse
//	@Router			/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := c.storeUsecase.ClearCart(r.Context()); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	snap := c.storeUsecase.Snapshot()
	WriteSuccess(w, http.StatusOK, toCartResponse(snap.Cart, snap.Products))
}
