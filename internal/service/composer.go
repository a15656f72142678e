package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tableside/internal/domain"
)

// DefaultTaxRate is the fixed rate applied to every order at composition.
const DefaultTaxRate = 0.08

var (
	ErrEmptyOrder             = errors.New("cannot place an empty order")
	ErrMissingTable           = errors.New("dine-in order needs an assigned table")
	ErrMissingDeliveryDetails = errors.New("delivery order needs customer name, phone, address and a driver")
	ErrMissingPickupDetails   = errors.New("pickup order needs customer name and phone")
	ErrInvalidOrderType       = errors.New("unknown order type")
)

// OrderRequest is a candidate order before validation: dish references plus
// whatever contact details the order type demands.
type OrderRequest struct {
	OrderType       domain.OrderType   `json:"orderType"`
	Items           []OrderRequestItem `json:"items"`
	TableID         string             `json:"tableId,omitempty"`
	TableName       string             `json:"tableName,omitempty"`
	CustomerName    string             `json:"customerName,omitempty"`
	CustomerPhone   string             `json:"customerPhone,omitempty"`
	CustomerAddress string             `json:"customerAddress,omitempty"`
	DriverName      string             `json:"driverName,omitempty"`
}

type OrderRequestItem struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type ComposerService struct {
	menu      MenuRepository
	inventory InventoryServiceInterface
	orders    OrderServiceInterface
	occupancy OccupancyStore
	publisher EventPublisher
}

func NewComposerService(menu MenuRepository, inventory InventoryServiceInterface,
	orders OrderServiceInterface, occupancy OccupancyStore, publisher EventPublisher) *ComposerService {
	return &ComposerService{
		menu:      menu,
		inventory: inventory,
		orders:    orders,
		occupancy: occupancy,
		publisher: publisher,
	}
}

// MatchItems resolves transcript-extracted items against the catalog by
// case-insensitive exact name. Unmatched items are flagged, never turned
// into new dishes.
func (s *ComposerService) MatchItems(userID string, extracted []domain.ExtractedItem) ([]domain.CandidateItem, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	dishes, _, err := s.menu.GetDishes(userID)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.CandidateItem, 0, len(extracted))
	for _, item := range extracted {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		candidate := domain.CandidateItem{Name: item.Name, Quantity: quantity, Unmatched: true}
		for _, dish := range dishes {
			if strings.EqualFold(dish.Name, item.Name) {
				candidate.DishID = dish.ID
				candidate.Name = dish.Name
				candidate.UnitPrice = dish.Price
				candidate.Unmatched = false
				break
			}
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// PlaceOrder validates the request, records ingredient usage (best effort,
// never rolled back), persists the order and marks table occupancy for
// dine-in. Items whose dish reference does not resolve (unmatched
// transcript candidates carry no dish id) are dropped rather than failing
// the order; whatever remains goes through. Event publication and
// occupancy are advisory side effects.
func (s *ComposerService) PlaceOrder(ctx context.Context, userID string, req OrderRequest) (*domain.Order, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}

	dishes, _, err := s.menu.GetDishes(userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Dish, len(dishes))
	for _, dish := range dishes {
		byID[dish.ID] = dish
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	selected := make([]domain.Dish, 0, len(req.Items))
	quantities := make([]int, 0, len(req.Items))
	for _, reqItem := range req.Items {
		if reqItem.Quantity <= 0 {
			continue
		}
		dish, ok := byID[reqItem.DishID]
		if !ok {
			log.Printf("[tableside] dropping order item with unresolved dish %q", reqItem.DishID)
			continue
		}
		items = append(items, domain.OrderItem{
			DishID:     dish.ID,
			Name:       dish.Name,
			Quantity:   reqItem.Quantity,
			UnitPrice:  dish.Price,
			TotalPrice: dish.Price * float64(reqItem.Quantity),
		})
		selected = append(selected, dish)
		quantities = append(quantities, reqItem.Quantity)
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	data := domain.NewOrderData{
		OrderType: req.OrderType,
		Items:     items,
		TaxRate:   DefaultTaxRate,
	}
	for _, item := range items {
		data.Subtotal += item.TotalPrice
	}

	switch req.OrderType {
	case domain.OrderTypeDineIn:
		if req.TableID == "" {
			return nil, ErrMissingTable
		}
		data.TableID = req.TableID
		data.Table = req.TableName
		if data.Table == "" {
			data.Table = req.TableID
		}
	case domain.OrderTypeDelivery:
		if req.CustomerName == "" || req.CustomerPhone == "" || req.CustomerAddress == "" || req.DriverName == "" {
			return nil, ErrMissingDeliveryDetails
		}
		data.Table = "Delivery to " + req.CustomerName
		data.TableID = fmt.Sprintf("delivery-%d", time.Now().UnixMilli())
		data.CustomerName = req.CustomerName
		data.CustomerPhone = req.CustomerPhone
		data.CustomerAddress = req.CustomerAddress
		data.DriverName = req.DriverName
	case domain.OrderTypePickup:
		if req.CustomerName == "" || req.CustomerPhone == "" {
			return nil, ErrMissingPickupDetails
		}
		data.Table = "Pickup for " + req.CustomerName
		data.TableID = fmt.Sprintf("pickup-%d", time.Now().UnixMilli())
		data.CustomerName = req.CustomerName
		data.CustomerPhone = req.CustomerPhone
	default:
		return nil, ErrInvalidOrderType
	}

	// Inventory decrement happens before persistence and is not a
	// transaction: a failed decrement is logged and the order goes through.
	for i, dish := range selected {
		for _, ingredient := range dish.Ingredients {
			totalConsumed := ingredient.QuantityPerDish * float64(quantities[i])
			if err := s.inventory.RecordUsage(userID, ingredient.InventoryItemName, totalConsumed, ingredient.Unit); err != nil {
				log.Printf("[tableside] usage for %q not recorded: %v", ingredient.InventoryItemName, err)
			}
		}
	}

	order, err := s.orders.Create(userID, data)
	if err != nil {
		return nil, err
	}

	if order.OrderType == domain.OrderTypeDineIn && s.occupancy != nil {
		if err := s.occupancy.SetOccupied(ctx, userID, order.TableID, order.ID); err != nil {
			log.Printf("[tableside] table %s not marked occupied: %v", order.TableID, err)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.KafkaMessage{
			Type:      domain.EventOrderCreated,
			UserID:    userID,
			OrderID:   order.ID,
			Timestamp: time.Now(),
		})
	}

	return order, nil
}

var _ ComposerServiceInterface = (*ComposerService)(nil)
