package service

import (
	"errors"
	"time"

	"tableside/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr}
}

func (s *OrderService) Create(userID string, data domain.NewOrderData) (*domain.Order, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	orders, _, err := s.repo.GetOrders(userID)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:              generateID("order"),
		OrderType:       data.OrderType,
		Items:           data.Items,
		Subtotal:        data.Subtotal,
		TaxRate:         data.TaxRate,
		TaxAmount:       data.Subtotal * data.TaxRate,
		Table:           data.Table,
		TableID:         data.TableID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		DriverName:      data.DriverName,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now(),
	}
	order.TotalAmount = order.Subtotal + order.TaxAmount

	if err := s.repo.SaveOrders(userID, append(orders, order)); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(userID, orderID string) (*domain.Order, error) {
	orders, _, err := s.repo.GetOrders(userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *OrderService) ListPending(userID string) ([]domain.Order, error) {
	orders, _, err := s.repo.GetOrders(userID)
	if err != nil {
		return nil, err
	}
	pending := []domain.Order{}
	for _, order := range orders {
		if order.Status != domain.StatusCompleted {
			pending = append(pending, order)
		}
	}
	return pending, nil
}

// UpdateStatus mutates the single status field in place. Orders are never
// deleted and no status history is kept.
func (s *OrderService) UpdateStatus(userID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	orders, _, err := s.repo.GetOrders(userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			if err := s.repo.SaveOrders(userID, orders); err != nil {
				return nil, err
			}
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// QRCode renders a receipt QR for an existing order on demand.
func (s *OrderService) QRCode(userID, orderID string) ([]byte, error) {
	if _, err := s.Get(userID, orderID); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr encoder not configured")
	}
	return s.qrEncoder.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
