package service

import (
	"context"
	"testing"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

func newTestItemService() *ItemService {
	return NewItemService(repository.NewItemRepository(nil, repository.TableInventory))
}

func TestAddItem_EmptyName(t *testing.T) {
	svc := newTestItemService()

	_, err := svc.Add(context.Background(), 1, model.Item{Quantity: "2", Unit: "kg"})

	if err != ErrItemNameRequired {
		t.Errorf("expected ErrItemNameRequired, got %v", err)
	}
}

func TestAddItem_BadQuantity(t *testing.T) {
	svc := newTestItemService()

	_, err := svc.Add(context.Background(), 1, model.Item{ItemName: "flour", Quantity: "plenty"})

	if err != ErrQuantityInvalid {
		t.Errorf("expected ErrQuantityInvalid, got %v", err)
	}
}

func TestValidateItem_CanonicalQuantity(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2.50", "2.5"},
		{" 3 ", "3"},
		{"0.25", "0.25"},
	}
	for _, tc := range cases {
		it := model.Item{ItemName: "flour", Quantity: tc.in}
		if err := validateItem(&it); err != nil {
			t.Fatalf("validateItem(%q) unexpected error: %v", tc.in, err)
		}
		if it.Quantity != tc.want {
			t.Errorf("quantity %q: expected %q, got %q", tc.in, tc.want, it.Quantity)
		}
	}
}

func TestAddTag_EmptyName(t *testing.T) {
	svc := NewTagService(repository.NewTagRepository(nil))

	_, err := svc.Add(context.Background(), "  ")

	if err != ErrTagNameRequired {
		t.Errorf("expected ErrTagNameRequired, got %v", err)
	}
}
