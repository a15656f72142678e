package domain

import "time"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentMobile PaymentMethod = "mobile"
)

// IngredientRequirement links a dish to an inventory item by name. The
// reference is weak: consumption silently skips names with no stock row.
type IngredientRequirement struct {
	InventoryItemName string  `json:"inventoryItemName"`
	QuantityPerDish   float64 `json:"quantityPerDish"`
	Unit              string  `json:"unit"`
}

type Dish struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Price       float64                 `json:"price"`
	Category    string                  `json:"category"`
	Image       string                  `json:"image"`
	AIHint      string                  `json:"aiHint"`
	Ingredients []IngredientRequirement `json:"ingredients"`
}

type InventoryItem struct {
	Name           string  `json:"name"`
	QuantityOnHand float64 `json:"quantityOnHand"`
	Unit           string  `json:"unit"`
}

// OrderItem is a snapshot of dish data at order time; later changes to the
// dish never touch stored orders.
type OrderItem struct {
	DishID     string  `json:"dishId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type Order struct {
	ID              string      `json:"id"`
	OrderType       OrderType   `json:"orderType"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	TaxRate         float64     `json:"taxRate"`
	TaxAmount       float64     `json:"taxAmount"`
	TotalAmount     float64     `json:"totalAmount"`
	Table           string      `json:"table,omitempty"`
	TableID         string      `json:"tableId,omitempty"`
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	DriverName      string      `json:"driverName,omitempty"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// NewOrderData is what the composer hands to the order store: everything an
// order needs except the generated id, status and timestamp.
type NewOrderData struct {
	OrderType       OrderType   `json:"orderType"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	TaxRate         float64     `json:"taxRate"`
	Table           string      `json:"table,omitempty"`
	TableID         string      `json:"tableId,omitempty"`
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	DriverName      string      `json:"driverName,omitempty"`
}

// IngredientSuggestion is one line of a model-generated ingredient list.
type IngredientSuggestion struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ExtractedOrder is the best-effort result of transcript extraction. Every
// field is optional; nothing here is trusted until the composer re-validates.
type ExtractedOrder struct {
	OrderType       string          `json:"orderType,omitempty"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	Items           []ExtractedItem `json:"items,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	ConfidenceScore float64         `json:"confidenceScore,omitempty"`
}

type ExtractedItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CandidateItem is an extracted item after catalog matching. Unmatched items
// stay visible to the operator but are excluded from submission.
type CandidateItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	DishID    string  `json:"dishId,omitempty"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
	Unmatched bool    `json:"unmatched"`
}

type KafkaMessage struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	OrderID   string    `json:"order_id,omitempty"`
	DishCount int       `json:"dish_count,omitempty"`
	Repaired  bool      `json:"repaired,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventMenuImported = "menu_imported"
	EventOrderCreated = "order_created"
)
