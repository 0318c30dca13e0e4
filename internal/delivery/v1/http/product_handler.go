package http

import (
	"net/http"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewProductHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{storeUsecase: storeUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Возвращает каталог с опциональной фильтрацией по категории и признаку featured
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Категория"
//	@Param			featured	query		boolean	false	"Только featured"
//	@Success		200			{array}		ProductResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := p.storeUsecase.Products()

	// Фильтры — проекции только для чтения, состояние они не трогают.
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := make([]domain.Product, 0, len(products))
		for _, product := range products {
			if product.Category == domain.Category(category) {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	if r.URL.Query().Get("featured") == "true" {
		filtered := make([]domain.Product, 0, len(products))
		for _, product := range products {
			if product.Featured {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// createProduct
//
//	@Summary		Добавление товара
//	@Description	Создает новый товар в каталоге, опционально с файлом изображения
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string	true	"Название товара"
//	@Param			category		formData	string	true	"Категория"
//	@Param			price			formData	number	true	"Цена"
//	@Param			original_price	formData	number	false	"Цена до скидки"
//	@Param			description		formData	string	false	"Описание"
//	@Param			nutrition		formData	string	false	"Пищевая ценность"
//	@Param			unit			formData	string	false	"Единица продажи"
//	@Param			featured		formData	boolean	false	"Показывать на главной"
//	@Param			image_url		formData	string	false	"Внешний URL изображения"
//	@Param			image			formData	file	false	"Файл изображения"
//	@Success		201				{object}	ProductResponse	"Успешное создание"
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.storeUsecase.AddProduct(r.Context(), form.toAddProductReq())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Редактирование товара
//	@Description	Заменяет товар с указанным идентификатором; неизвестный идентификатор — no-op
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Идентификатор товара"
//	@Param			name	formData	string	true	"Название товара"
//	@Param			category	formData	string	true	"Категория"
//	@Param			price	formData	number	true	"Цена"
//	@Param			image	formData	file	false	"Файл изображения"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	// Без нового URL и файла изображение остаётся прежним.
	currentImage := ""
	for _, product := range p.storeUsecase.Products() {
		if product.ID == id {
			currentImage = product.Image
			break
		}
	}

	if err := p.storeUsecase.EditProduct(r.Context(), form.toEditProductReq(id, currentImage)); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Updated": true,
	})
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Удаляет товар из каталога; позиции корзины каскадно не удаляются
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	map[string]interface{}
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := p.storeUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Deleted": true,
	})
}
