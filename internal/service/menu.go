package service

import (
	"errors"
	"strings"

	"tableside/internal/domain"
)

var ErrMissingUser = errors.New("missing user id")

const (
	defaultDishPrice    = 10.00
	defaultDishCategory = "New Dishes"
	placeholderImage    = "https://placehold.co/100x100.png"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// List returns the user's catalog. A user with no persisted menu gets an
// empty collection initialized in the store, never an error.
func (s *MenuService) List(userID string) ([]domain.Dish, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	dishes, found, err := s.repo.GetDishes(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := s.repo.SaveDishes(userID, []domain.Dish{}); err != nil {
			return nil, err
		}
		return []domain.Dish{}, nil
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	return dishes, nil
}

func (s *MenuService) Replace(userID string, dishes []domain.Dish) error {
	if userID == "" {
		return ErrMissingUser
	}
	return s.repo.SaveDishes(userID, dishes)
}

// AddDish appends a dish built from a generated ingredient list, with the
// default price and category the operator edits afterwards.
func (s *MenuService) AddDish(userID, dishName string, ingredients []domain.IngredientSuggestion) (*domain.Dish, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	current, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	requirements := make([]domain.IngredientRequirement, 0, len(ingredients))
	for _, ing := range ingredients {
		requirements = append(requirements, domain.IngredientRequirement{
			InventoryItemName: ing.Name,
			QuantityPerDish:   ing.Quantity,
			Unit:              ing.Unit,
		})
	}

	dish := domain.Dish{
		ID:          generateID("dish"),
		Name:        dishName,
		Price:       defaultDishPrice,
		Category:    defaultDishCategory,
		Image:       placeholderImage,
		AIHint:      dishHint(dishName),
		Ingredients: requirements,
	}

	if err := s.repo.SaveDishes(userID, append(current, dish)); err != nil {
		return nil, err
	}
	return &dish, nil
}

// dishHint takes the first two words of the name, lowercased.
func dishHint(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

var _ MenuServiceInterface = (*MenuService)(nil)
