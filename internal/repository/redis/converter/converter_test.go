package converter

import (
	"reflect"
	"testing"
	"time"

	"github.com/DRSN-tech/freshcart-backend/internal/domain"
)

func TestProductRoundTrip(t *testing.T) {
	original := int64(12000)
	entities := []domain.Product{
		{
			ID:            "p1",
			Name:          "Apples",
			Price:         10000,
			OriginalPrice: &original,
			Category:      domain.CategoryFruits,
			Image:         "https://example.com/apples.jpg",
			Description:   "Crisp",
			Nutrition:     "52 kcal",
			Unit:          "1 kg",
			Featured:      true,
		},
		{ID: "p2", Name: "Milk", Price: 6500, Category: domain.CategoryDairy},
	}

	got := ToArrDomainProduct(ToArrProductModel(entities))
	if !reflect.DeepEqual(entities, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", entities, got)
	}
}

func TestOrderRoundTrip(t *testing.T) {
	entities := []domain.Order{{
		ID:    "o1",
		Items: []domain.CartItem{{ProductID: "p1", Quantity: 2}},
		Total: 20000,
		Customer: domain.Customer{
			Name:    "Ivan",
			Address: "Lenina 1",
			Phone:   "+70000000000",
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:    domain.OrderStatusPending,
	}}

	got := ToArrDomainOrder(ToArrOrderModel(entities))
	if !reflect.DeepEqual(entities, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", entities, got)
	}
}
