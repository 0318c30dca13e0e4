package usecase

import "github.com/DRSN-tech/freshcart-backend/internal/domain"

// STORE USECASE

// AddProductReq — запрос на добавление товара в каталог.
// Идентификатор назначает ядро; Image — внешний URL, ImageFile — опциональный
// загружаемый файл (имеет приоритет над Image).
type AddProductReq struct {
	Name          string
	Price         int64
	OriginalPrice *int64
	Category      domain.Category
	Image         string
	Description   string
	Nutrition     string
	Unit          string
	Featured      bool
	ImageFile     *ProductImage
}

// EditProductReq — запрос на замену товара с совпадающим Product.ID.
type EditProductReq struct {
	Product   domain.Product
	ImageFile *ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// Snapshot — копии всех трёх коллекций на момент завершения мутации.
type Snapshot struct {
	Products []domain.Product
	Cart     []domain.CartItem
	Orders   []domain.Order
}

// INFRASTRUCTURE

// Типы событий изменения состояния.
const (
	EventProductUpserted = "product.upserted"
	EventProductDeleted  = "product.deleted"
	EventOrderPlaced     = "order.placed"
)

// WriteEventReq — запрос на публикацию события. Key задаёт ключ партиции
// (идентификатор сущности), Payload сериализуется в JSON.
type WriteEventReq struct {
	Type    string
	Key     string
	Payload any
}

// MAPPERS

func NewAddProductReq(name string, price int64, category domain.Category) *AddProductReq {
	return &AddProductReq{
		Name:     name,
		Price:    price,
		Category: category,
	}
}

func NewEditProductReq(product domain.Product, imageFile *ProductImage) *EditProductReq {
	return &EditProductReq{
		Product:   product,
		ImageFile: imageFile,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewWriteEventReq(eventType string, key string, payload any) *WriteEventReq {
	return &WriteEventReq{
		Type:    eventType,
		Key:     key,
		Payload: payload,
	}
}
