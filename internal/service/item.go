package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

var (
	ErrItemNameRequired = errors.New("item name is required")
	ErrQuantityInvalid  = errors.New("quantity must be a number")
	ErrItemNotFound     = errors.New("item not found")
)

// ItemService handles one per-user item list. The inventory and the shopping
// list are two instances over different tables.
type ItemService struct {
	repo *repository.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func validateItem(it *model.Item) error {
	it.ItemName = strings.TrimSpace(it.ItemName)
	if it.ItemName == "" {
		return ErrItemNameRequired
	}
	// Quantity arrives as form text; store its canonical numeric form.
	n, err := strconv.ParseFloat(strings.TrimSpace(it.Quantity), 64)
	if err != nil {
		return ErrQuantityInvalid
	}
	it.Quantity = strconv.FormatFloat(n, 'f', -1, 64)
	return nil
}

// Mine returns every item the user owns.
func (s *ItemService) Mine(ctx context.Context, userID int64) ([]model.Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns one item the user owns.
func (s *ItemService) Get(ctx context.Context, userID, id int64) (model.Item, error) {
	it, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return model.Item{}, ErrItemNotFound
		}
		return model.Item{}, err
	}
	return it, nil
}

// Add creates an item for the user.
func (s *ItemService) Add(ctx context.Context, userID int64, it model.Item) (model.Item, error) {
	if err := validateItem(&it); err != nil {
		return model.Item{}, err
	}
	it.UserID = userID
	if err := s.repo.Create(ctx, &it); err != nil {
		return model.Item{}, err
	}
	return s.repo.GetByID(ctx, it.ID, userID)
}

// Update replaces an item the user owns.
func (s *ItemService) Update(ctx context.Context, userID int64, it model.Item) (model.Item, error) {
	if err := validateItem(&it); err != nil {
		return model.Item{}, err
	}
	it.UserID = userID
	if err := s.repo.Update(ctx, &it); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return model.Item{}, ErrItemNotFound
		}
		return model.Item{}, err
	}
	return s.repo.GetByID(ctx, it.ID, userID)
}

// Delete removes an item the user owns.
func (s *ItemService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}
