package tests

import (
	"testing"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInventory_AddIfNotExists(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	inventory := service.NewInventoryService(repo)

	existing := []domain.InventoryItem{{Name: "Flour", QuantityOnHand: 5000, Unit: "g"}}
	repo.On("GetInventory", "user1").Return(existing, true, nil).Once()

	var saved []domain.InventoryItem
	repo.On("SaveInventory", "user1", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]domain.InventoryItem)
	}).Return(nil).Once()

	item, err := inventory.AddIfNotExists("user1", domain.InventoryItem{Name: "Cheese", QuantityOnHand: 1000, Unit: "g"})
	assert.NoError(t, err)
	assert.Equal(t, "Cheese", item.Name)
	assert.Len(t, saved, 2)
}

func TestInventory_AddIfNotExists_DuplicateKeepsStock(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	inventory := service.NewInventoryService(repo)

	// Counted stock stays untouched: the duplicate is rejected, nothing saved.
	existing := []domain.InventoryItem{{Name: "Flour", QuantityOnHand: 5000, Unit: "g"}}
	repo.On("GetInventory", "user1").Return(existing, true, nil).Once()

	item, err := inventory.AddIfNotExists("user1", domain.InventoryItem{Name: "flour", QuantityOnHand: 1, Unit: "g"})
	assert.ErrorIs(t, err, service.ErrItemExists)
	assert.Nil(t, item)
	repo.AssertNotCalled(t, "SaveInventory")
}

func TestInventory_RecordUsage_Decrements(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	inventory := service.NewInventoryService(repo)

	existing := []domain.InventoryItem{
		{Name: "Flour", QuantityOnHand: 5000, Unit: "g"},
		{Name: "Cheese", QuantityOnHand: 1000, Unit: "g"},
	}
	repo.On("GetInventory", "user1").Return(existing, true, nil).Once()

	var saved []domain.InventoryItem
	repo.On("SaveInventory", "user1", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]domain.InventoryItem)
	}).Return(nil).Once()

	err := inventory.RecordUsage("user1", "flour", 400, "g")
	assert.NoError(t, err)
	assert.Equal(t, 4600.0, saved[0].QuantityOnHand)
	assert.Equal(t, 1000.0, saved[1].QuantityOnHand)
}

func TestInventory_RecordUsage_AllowsNegativeStock(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	inventory := service.NewInventoryService(repo)

	existing := []domain.InventoryItem{{Name: "Saffron", QuantityOnHand: 1, Unit: "g"}}
	repo.On("GetInventory", "user1").Return(existing, true, nil).Once()

	var saved []domain.InventoryItem
	repo.On("SaveInventory", "user1", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]domain.InventoryItem)
	}).Return(nil).Once()

	err := inventory.RecordUsage("user1", "Saffron", 3, "g")
	assert.NoError(t, err)
	assert.Equal(t, -2.0, saved[0].QuantityOnHand)
}

func TestInventory_RecordUsage_UnknownItemIsNoOp(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	inventory := service.NewInventoryService(repo)

	repo.On("GetInventory", "user1").Return([]domain.InventoryItem{}, true, nil).Once()

	err := inventory.RecordUsage("user1", "Truffle", 10, "g")
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "SaveInventory")
}

func TestInventory_List_InitializesNewUser(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	inventory := service.NewInventoryService(repo)

	repo.On("GetInventory", "fresh-user").Return(nil, false, nil).Once()
	repo.On("SaveInventory", "fresh-user", []domain.InventoryItem{}).Return(nil).Once()

	items, err := inventory.List("fresh-user")
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
