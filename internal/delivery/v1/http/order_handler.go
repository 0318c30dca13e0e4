package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
)

type OrderHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewOrderHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{storeUsecase: storeUsecase, logger: logger}
}

// listOrders
//
//	@Summary		Список заказов
//	@Description	Возвращает заказы, новые первыми
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	OrderResponse
//	@Router			/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toArrOrderResponse(o.storeUsecase.Orders()))
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Создает заказ из текущей корзины по действующим ценам каталога и очищает корзину
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Контактные данные"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.Phone) == "" {
		WriteError(w, e.ErrMissingCustomer)
		return
	}

	order, err := o.storeUsecase.PlaceOrder(r.Context(), domain.Customer{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}
