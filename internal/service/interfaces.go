package service

import (
	"context"

	"tableside/internal/domain"
	"tableside/internal/storage"
)

type MenuRepository interface {
	GetDishes(userID string) ([]domain.Dish, bool, error)
	SaveDishes(userID string, dishes []domain.Dish) error
}

type InventoryRepository interface {
	GetInventory(userID string) ([]domain.InventoryItem, bool, error)
	SaveInventory(userID string, items []domain.InventoryItem) error
}

type OrderRepository interface {
	GetOrders(userID string) ([]domain.Order, bool, error)
	SaveOrders(userID string, orders []domain.Order) error
}

type OccupancyStore interface {
	SetOccupied(ctx context.Context, userID, tableID, orderID string) error
	ClearOccupied(ctx context.Context, userID, tableID string) error
	GetOccupant(ctx context.Context, userID, tableID string) (string, error)
	ListOccupied(ctx context.Context, userID string) (map[string]string, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, msg domain.KafkaMessage) error
}

type MenuCacheWriter interface {
	SetMenu(ctx context.Context, userID string, payload []byte) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type MenuServiceInterface interface {
	List(userID string) ([]domain.Dish, error)
	Replace(userID string, dishes []domain.Dish) error
	AddDish(userID, dishName string, ingredients []domain.IngredientSuggestion) (*domain.Dish, error)
}

type InventoryServiceInterface interface {
	List(userID string) ([]domain.InventoryItem, error)
	AddIfNotExists(userID string, item domain.InventoryItem) (*domain.InventoryItem, error)
	RecordUsage(userID, itemName string, consumed float64, unit string) error
}

type OrderServiceInterface interface {
	Create(userID string, data domain.NewOrderData) (*domain.Order, error)
	Get(userID, orderID string) (*domain.Order, error)
	ListPending(userID string) ([]domain.Order, error)
	UpdateStatus(userID, orderID string, status domain.OrderStatus) (*domain.Order, error)
	QRCode(userID, orderID string) ([]byte, error)
}

type ComposerServiceInterface interface {
	MatchItems(userID string, extracted []domain.ExtractedItem) ([]domain.CandidateItem, error)
	PlaceOrder(ctx context.Context, userID string, req OrderRequest) (*domain.Order, error)
}

type PaymentServiceInterface interface {
	Process(ctx context.Context, userID string, req PaymentRequest) (*PaymentResult, error)
}

var (
	_ MenuRepository      = (*storage.StateStore)(nil)
	_ InventoryRepository = (*storage.StateStore)(nil)
	_ OrderRepository     = (*storage.StateStore)(nil)
	_ OccupancyStore      = (*storage.OccupancyCache)(nil)
	_ EventPublisher      = (*storage.KafkaPublisher)(nil)
	_ MenuCacheWriter     = (*storage.MenuCache)(nil)
)
