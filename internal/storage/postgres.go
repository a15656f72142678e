package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"tableside/internal/domain"
)

// StateStore keeps one row per user per collection, the same key scheme the
// browser client used (restaurantMenu_<uid> and friends). Every mutation is a
// read-modify-write of the whole collection; last writer wins.
type StateStore struct {
	DB *sql.DB
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{DB: db}
}

func MenuKey(userID string) string      { return "restaurantMenu_" + userID }
func InventoryKey(userID string) string { return "restaurantInventory_" + userID }
func OrdersKey(userID string) string    { return "restaurantOrders_" + userID }

func (s *StateStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pos_state (
			store_key TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (s *StateStore) load(key string, dest interface{}) (bool, error) {
	var payload []byte
	err := s.DB.QueryRow("SELECT payload FROM pos_state WHERE store_key = $1", key).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load state %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode state %s: %w", key, err)
	}
	return true, nil
}

func (s *StateStore) save(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode state %s: %w", key, err)
	}
	_, err = s.DB.Exec(`
		INSERT INTO pos_state (store_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, key, payload)
	if err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

func (s *StateStore) GetDishes(userID string) ([]domain.Dish, bool, error) {
	var dishes []domain.Dish
	found, err := s.load(MenuKey(userID), &dishes)
	return dishes, found, err
}

func (s *StateStore) SaveDishes(userID string, dishes []domain.Dish) error {
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	return s.save(MenuKey(userID), dishes)
}

func (s *StateStore) GetInventory(userID string) ([]domain.InventoryItem, bool, error) {
	var items []domain.InventoryItem
	found, err := s.load(InventoryKey(userID), &items)
	return items, found, err
}

func (s *StateStore) SaveInventory(userID string, items []domain.InventoryItem) error {
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return s.save(InventoryKey(userID), items)
}

func (s *StateStore) GetOrders(userID string) ([]domain.Order, bool, error) {
	var orders []domain.Order
	found, err := s.load(OrdersKey(userID), &orders)
	return orders, found, err
}

func (s *StateStore) SaveOrders(userID string, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	return s.save(OrdersKey(userID), orders)
}
