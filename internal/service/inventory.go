package service

import (
	"errors"
	"log"
	"strings"

	"tableside/internal/domain"
)

var ErrItemExists = errors.New("inventory item already exists")

type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) List(userID string) ([]domain.InventoryItem, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	items, found, err := s.repo.GetInventory(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := s.repo.SaveInventory(userID, []domain.InventoryItem{}); err != nil {
			return nil, err
		}
		return []domain.InventoryItem{}, nil
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

// AddIfNotExists inserts a new stock item. An existing item is left exactly
// as it is; a generated quantity must never overwrite counted stock.
func (s *InventoryService) AddIfNotExists(userID string, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	items, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	for _, existing := range items {
		if strings.EqualFold(existing.Name, item.Name) {
			return nil, ErrItemExists
		}
	}
	if err := s.repo.SaveInventory(userID, append(items, item)); err != nil {
		return nil, err
	}
	return &item, nil
}

// RecordUsage decrements stock for a named item. Inventory tracking is
// advisory: an unknown name is a silent no-op and never blocks an order.
func (s *InventoryService) RecordUsage(userID, itemName string, consumed float64, unit string) error {
	if userID == "" {
		return ErrMissingUser
	}
	items, err := s.List(userID)
	if err != nil {
		return err
	}
	for i, item := range items {
		if strings.EqualFold(item.Name, itemName) {
			items[i].QuantityOnHand -= consumed
			if items[i].QuantityOnHand < 0 {
				log.Printf("[tableside] inventory %q for user %s went negative (%.2f %s)",
					itemName, userID, items[i].QuantityOnHand, unit)
			}
			return s.repo.SaveInventory(userID, items)
		}
	}
	return nil
}

var _ InventoryServiceInterface = (*InventoryService)(nil)
