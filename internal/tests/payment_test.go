package tests

import (
	"context"
	"testing"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"

	"github.com/stretchr/testify/assert"
)

func pendingDineInOrder() *domain.Order {
	return &domain.Order{
		ID:          "order_1",
		OrderType:   domain.OrderTypeDineIn,
		TableID:     "t5",
		Subtotal:    24.00,
		TaxRate:     0.08,
		TaxAmount:   1.92,
		TotalAmount: 25.92,
		Status:      domain.StatusPending,
	}
}

func TestPayment_Process_CashWithChange(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	occupancy := mocks.NewOccupancyStore(t)
	payments := service.NewPaymentService(orders, occupancy)
	ctx := context.Background()

	completed := pendingDineInOrder()
	completed.Status = domain.StatusCompleted

	orders.On("Get", "user1", "order_1").Return(pendingDineInOrder(), nil).Once()
	orders.On("UpdateStatus", "user1", "order_1", domain.StatusCompleted).Return(completed, nil).Once()
	occupancy.On("ClearOccupied", ctx, "user1", "t5").Return(nil).Once()

	result, err := payments.Process(ctx, "user1", service.PaymentRequest{
		OrderID:    "order_1",
		Method:     domain.PaymentCash,
		AmountPaid: 30.00,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 25.92, result.TotalDue, 1e-9)
	assert.InDelta(t, 4.08, result.ChangeDue, 1e-9)
	assert.Equal(t, domain.StatusCompleted, result.Order.Status)
}

func TestPayment_Process_CashInsufficient(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	occupancy := mocks.NewOccupancyStore(t)
	payments := service.NewPaymentService(orders, occupancy)

	orders.On("Get", "user1", "order_1").Return(pendingDineInOrder(), nil).Once()

	result, err := payments.Process(context.Background(), "user1", service.PaymentRequest{
		OrderID:    "order_1",
		Method:     domain.PaymentCash,
		AmountPaid: 20.00,
	})

	assert.ErrorIs(t, err, service.ErrInsufficientCash)
	assert.Nil(t, result)
}

func TestPayment_Process_CardWithTip(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	occupancy := mocks.NewOccupancyStore(t)
	payments := service.NewPaymentService(orders, occupancy)
	ctx := context.Background()

	completed := pendingDineInOrder()
	completed.Status = domain.StatusCompleted

	orders.On("Get", "user1", "order_1").Return(pendingDineInOrder(), nil).Once()
	orders.On("UpdateStatus", "user1", "order_1", domain.StatusCompleted).Return(completed, nil).Once()
	occupancy.On("ClearOccupied", ctx, "user1", "t5").Return(nil).Once()

	result, err := payments.Process(ctx, "user1", service.PaymentRequest{
		OrderID:   "order_1",
		Method:    domain.PaymentCard,
		TipAmount: 5.00,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 30.92, result.TotalDue, 1e-9)
	assert.Zero(t, result.ChangeDue)
}

func TestPayment_Process_PickupSkipsOccupancy(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	occupancy := mocks.NewOccupancyStore(t)
	payments := service.NewPaymentService(orders, occupancy)

	pickup := &domain.Order{
		ID:          "order_2",
		OrderType:   domain.OrderTypePickup,
		TableID:     "pickup-1",
		TotalAmount: 9.50,
		Status:      domain.StatusPending,
	}
	completed := *pickup
	completed.Status = domain.StatusCompleted

	orders.On("Get", "user1", "order_2").Return(pickup, nil).Once()
	orders.On("UpdateStatus", "user1", "order_2", domain.StatusCompleted).Return(&completed, nil).Once()

	result, err := payments.Process(context.Background(), "user1", service.PaymentRequest{
		OrderID: "order_2",
		Method:  domain.PaymentMobile,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 9.50, result.TotalDue, 1e-9)
	occupancy.AssertNotCalled(t, "ClearOccupied")
}

func TestPayment_Process_Validation(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		request       service.PaymentRequest
		prepareMocks  func(orders *mocks.OrderServiceInterface)
		expectedError error
	}{
		{
			name:          "unknown method",
			userID:        "user1",
			request:       service.PaymentRequest{OrderID: "order_1", Method: "barter"},
			expectedError: service.ErrInvalidPaymentMethod,
		},
		{
			name:          "negative tip",
			userID:        "user1",
			request:       service.PaymentRequest{OrderID: "order_1", Method: domain.PaymentCard, TipAmount: -1},
			expectedError: service.ErrNegativeTip,
		},
		{
			name:          "missing user",
			userID:        "",
			request:       service.PaymentRequest{OrderID: "order_1", Method: domain.PaymentCard},
			expectedError: service.ErrMissingUser,
		},
		{
			name:    "order already completed",
			userID:  "user1",
			request: service.PaymentRequest{OrderID: "order_1", Method: domain.PaymentCard},
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				paid := pendingDineInOrder()
				paid.Status = domain.StatusCompleted
				orders.On("Get", "user1", "order_1").Return(paid, nil).Once()
			},
			expectedError: service.ErrOrderNotPending,
		},
		{
			name:    "order missing",
			userID:  "user1",
			request: service.PaymentRequest{OrderID: "order_x", Method: domain.PaymentCard},
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("Get", "user1", "order_x").Return(nil, service.ErrOrderNotFound).Once()
			},
			expectedError: service.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			occupancy := mocks.NewOccupancyStore(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(orders)
			}
			payments := service.NewPaymentService(orders, occupancy)

			result, err := payments.Process(context.Background(), testCase.userID, testCase.request)
			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Nil(t, result)
		})
	}
}
