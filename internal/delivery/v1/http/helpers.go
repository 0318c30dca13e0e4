package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductForm — разобранные поля формы добавления/редактирования товара.
type ProductForm struct {
	Name          string
	Category      domain.Category
	Price         int64
	OriginalPrice *int64
	Description   string
	Nutrition     string
	Unit          string
	ImageURL      string
	Featured      bool
	ImageFile     *usecase.ProductImage
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrMissingCustomer):
		return http.StatusBadRequest, e.ErrMissingCustomer.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents переводит строку вида "599.99" или "600" в копейки.
// Не больше двух знаков после запятой, только положительные значения.
// - exceeds reasonable limit
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if !d.GreaterThan(decimal.Zero) {
		return 0, e.ErrPriceMustBePositive
	}

	// Верхняя граница: 10^9 в основной валюте
	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseProductForm разбирает и валидирует multipart-форму товара.
// Валидация обязательных полей живёт здесь, на границе HTTP: ядро
// входные данные повторно не проверяет.
func parseProductForm(r *http.Request) (*ProductForm, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	category := r.FormValue("category")
	priceStr := r.FormValue("price")

	if name == "" {
		return nil, e.ErrProductNameRequired
	}
	if category == "" || priceStr == "" {
		return nil, e.ErrMissingFields
	}

	if !domain.Category(category).Valid() {
		return nil, e.ErrInvalidCategory
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	form := &ProductForm{
		Name:        name,
		Category:    domain.Category(category),
		Price:       priceCents,
		Description: r.FormValue("description"),
		Nutrition:   r.FormValue("nutrition"),
		Unit:        r.FormValue("unit"),
		ImageURL:    r.FormValue("image_url"),
		Featured:    r.FormValue("featured") == "true",
	}

	if originalStr := r.FormValue("original_price"); originalStr != "" {
		originalCents, err := parsePriceToCents(originalStr)
		if err != nil {
			return nil, err
		}
		form.OriginalPrice = &originalCents
	}

	if r.MultipartForm != nil {
		file, err := parseImageFile(r.MultipartForm.File["image"])
		if err != nil {
			return nil, err
		}
		form.ImageFile = file
	}

	return form, nil
}

// parseImageFile читает опциональный единственный файл изображения.
func parseImageFile(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, nil
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
