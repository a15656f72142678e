package service

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"tableside/internal/domain"
)

var ErrEmptyMenuCSV = errors.New("menu csv contains no usable rows")

// ParseMenuCSV reads the fixed-column export format:
//
//	id,name,price,category,image,aiHint,ingredients
//
// with ingredients ";"-separated. Malformed rows are dropped or patched
// rather than failing the whole file; repaired reports whether that
// happened so the client can warn instead of celebrate.
func ParseMenuCSV(data []byte) ([]domain.Dish, bool, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, false, err
	}
	if len(records) <= 1 {
		return nil, false, ErrEmptyMenuCSV
	}

	repaired := false
	dishes := []domain.Dish{}
	for _, row := range records[1:] {
		if len(row) < 7 {
			repaired = true
			continue
		}
		id := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if id == "" || name == "" {
			repaired = true
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || price < 0 {
			price = 0
			repaired = true
		}

		var ingredients []domain.IngredientRequirement
		if row[6] != "" {
			for _, ingredientName := range strings.Split(row[6], ";") {
				ingredientName = strings.TrimSpace(ingredientName)
				if ingredientName == "" {
					continue
				}
				ingredients = append(ingredients, domain.IngredientRequirement{
					InventoryItemName: ingredientName,
				})
			}
		}

		dishes = append(dishes, domain.Dish{
			ID:          id,
			Name:        name,
			Price:       price,
			Category:    strings.TrimSpace(row[3]),
			Image:       strings.TrimSpace(row[4]),
			AIHint:      strings.TrimSpace(row[5]),
			Ingredients: ingredients,
		})
	}

	if len(dishes) == 0 {
		return nil, repaired, ErrEmptyMenuCSV
	}
	return dishes, repaired, nil
}
