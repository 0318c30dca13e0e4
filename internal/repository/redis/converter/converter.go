package converter

import "github.com/DRSN-tech/freshcart-backend/internal/domain"

// Преобразование доменных сущностей в модели хранения и обратно.

func ToProductModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:            entity.ID,
		Name:          entity.Name,
		Price:         entity.Price,
		OriginalPrice: entity.OriginalPrice,
		Category:      string(entity.Category),
		Image:         entity.Image,
		Description:   entity.Description,
		Nutrition:     entity.Nutrition,
		Unit:          entity.Unit,
		Featured:      entity.Featured,
	}
}

func ToDomainProduct(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:            model.ID,
		Name:          model.Name,
		Price:         model.Price,
		OriginalPrice: model.OriginalPrice,
		Category:      domain.Category(model.Category),
		Image:         model.Image,
		Description:   model.Description,
		Nutrition:     model.Nutrition,
		Unit:          model.Unit,
		Featured:      model.Featured,
	}
}

func ToArrProductModel(entities []domain.Product) []ProductModel {
	models := make([]ProductModel, 0, len(entities))
	for i := range entities {
		models = append(models, *ToProductModel(&entities[i]))
	}
	return models
}

func ToArrDomainProduct(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *ToDomainProduct(&models[i]))
	}
	return entities
}

func ToCartItemModel(entity *domain.CartItem) *CartItemModel {
	return &CartItemModel{
		ProductID: entity.ProductID,
		Quantity:  entity.Quantity,
	}
}

func ToDomainCartItem(model *CartItemModel) *domain.CartItem {
	return &domain.CartItem{
		ProductID: model.ProductID,
		Quantity:  model.Quantity,
	}
}

func ToArrCartItemModel(entities []domain.CartItem) []CartItemModel {
	models := make([]CartItemModel, 0, len(entities))
	for i := range entities {
		models = append(models, *ToCartItemModel(&entities[i]))
	}
	return models
}

func ToArrDomainCartItem(models []CartItemModel) []domain.CartItem {
	entities := make([]domain.CartItem, 0, len(models))
	for i := range models {
		entities = append(entities, *ToDomainCartItem(&models[i]))
	}
	return entities
}

func ToOrderModel(entity *domain.Order) *OrderModel {
	return &OrderModel{
		ID:    entity.ID,
		Items: ToArrCartItemModel(entity.Items),
		Total: entity.Total,
		Customer: CustomerModel{
			Name:    entity.Customer.Name,
			Address: entity.Customer.Address,
			Phone:   entity.Customer.Phone,
		},
		CreatedAt: entity.CreatedAt,
		Status:    string(entity.Status),
	}
}

func ToDomainOrder(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:    model.ID,
		Items: ToArrDomainCartItem(model.Items),
		Total: model.Total,
		Customer: domain.Customer{
			Name:    model.Customer.Name,
			Address: model.Customer.Address,
			Phone:   model.Customer.Phone,
		},
		CreatedAt: model.CreatedAt,
		Status:    domain.OrderStatus(model.Status),
	}
}

func ToArrOrderModel(entities []domain.Order) []OrderModel {
	models := make([]OrderModel, 0, len(entities))
	for i := range entities {
		models = append(models, *ToOrderModel(&entities[i]))
	}
	return models
}

func ToArrDomainOrder(models []OrderModel) []domain.Order {
	entities := make([]domain.Order, 0, len(models))
	for i := range models {
		entities = append(entities, *ToDomainOrder(&models[i]))
	}
	return entities
}
