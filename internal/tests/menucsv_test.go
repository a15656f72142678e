package tests

import (
	"testing"

	"tableside/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestParseMenuCSV_WellFormed(t *testing.T) {
	dishes, repaired, err := service.ParseMenuCSV([]byte(sampleMenuCSV))

	assert.NoError(t, err)
	assert.False(t, repaired)
	assert.Len(t, dishes, 2)

	assert.Equal(t, "dish_1", dishes[0].ID)
	assert.Equal(t, "Pizza", dishes[0].Name)
	assert.Equal(t, 12.00, dishes[0].Price)
	assert.Equal(t, "Mains", dishes[0].Category)
	assert.Equal(t, "pizza margherita", dishes[0].AIHint)
	assert.Len(t, dishes[0].Ingredients, 2)
	assert.Equal(t, "Flour", dishes[0].Ingredients[0].InventoryItemName)

	assert.Empty(t, dishes[1].Ingredients)
}

func TestParseMenuCSV_RepairsBadRows(t *testing.T) {
	csv := "id,name,price,category,image,aiHint,ingredients\n" +
		"dish_1,Pizza,twelve,Mains,,pizza,Flour\n" + // unparseable price
		"dish_2,,9.50,Mains,,,\n" + // missing name
		"dish_3,Soup\n" + // too few columns
		"dish_4,Salad,-3,Starters,,salad,\n" // negative price

	dishes, repaired, err := service.ParseMenuCSV([]byte(csv))

	assert.NoError(t, err)
	assert.True(t, repaired)
	assert.Len(t, dishes, 2)
	assert.Equal(t, 0.0, dishes[0].Price)
	assert.Equal(t, 0.0, dishes[1].Price)
}

func TestParseMenuCSV_HeaderOnly(t *testing.T) {
	_, _, err := service.ParseMenuCSV([]byte("id,name,price,category,image,aiHint,ingredients\n"))
	assert.ErrorIs(t, err, service.ErrEmptyMenuCSV)
}

func TestParseMenuCSV_NoUsableRows(t *testing.T) {
	csv := "id,name,price,category,image,aiHint,ingredients\n" +
		",Pizza,12,Mains,,,\n" +
		"dish_2,,9.50,Mains,,,\n"

	_, repaired, err := service.ParseMenuCSV([]byte(csv))
	assert.ErrorIs(t, err, service.ErrEmptyMenuCSV)
	assert.True(t, repaired)
}
