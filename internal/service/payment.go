package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tableside/internal/domain"
)

var (
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrNegativeTip          = errors.New("tip cannot be negative")
	ErrInsufficientCash     = errors.New("cash paid is less than total due")
	ErrOrderNotPending      = errors.New("order is not pending")
)

type PaymentRequest struct {
	OrderID    string               `json:"orderId"`
	Method     domain.PaymentMethod `json:"method"`
	TipAmount  float64              `json:"tipAmount"`
	AmountPaid float64              `json:"amountPaid"`
}

// PaymentResult reports totals for display. ChangeDue is computed for cash
// and never persisted.
type PaymentResult struct {
	Order     *domain.Order `json:"order"`
	TotalDue  float64       `json:"totalDue"`
	ChangeDue float64       `json:"changeDue"`
}

type PaymentService struct {
	orders    OrderServiceInterface
	occupancy OccupancyStore
}

func NewPaymentService(orders OrderServiceInterface, occupancy OccupancyStore) *PaymentService {
	return &PaymentService{orders: orders, occupancy: occupancy}
}

func (s *PaymentService) Process(ctx context.Context, userID string, req PaymentRequest) (*PaymentResult, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	switch req.Method {
	case domain.PaymentCard, domain.PaymentCash, domain.PaymentMobile:
	default:
		return nil, ErrInvalidPaymentMethod
	}
	if req.TipAmount < 0 {
		return nil, ErrNegativeTip
	}

	order, err := s.orders.Get(userID, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusPending {
		return nil, ErrOrderNotPending
	}

	totalDue := order.TotalAmount + req.TipAmount
	changeDue := 0.0
	if req.Method == domain.PaymentCash {
		if req.AmountPaid < totalDue {
			return nil, fmt.Errorf("%w: paid %.2f, due %.2f", ErrInsufficientCash, req.AmountPaid, totalDue)
		}
		changeDue = req.AmountPaid - totalDue
	}

	updated, err := s.orders.UpdateStatus(userID, req.OrderID, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	if updated.OrderType == domain.OrderTypeDineIn && updated.TableID != "" && s.occupancy != nil {
		if err := s.occupancy.ClearOccupied(ctx, userID, updated.TableID); err != nil {
			log.Printf("[tableside] table %s not released: %v", updated.TableID, err)
		}
	}

	return &PaymentResult{Order: updated, TotalDue: totalDue, ChangeDue: changeDue}, nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
