package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCooking   OrderStatus = "COOKING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every status in forward order, CANCELLED last.
var OrderStatuses = []OrderStatus{OrderPending, OrderCooking, OrderReady, OrderCompleted, OrderCancelled}

// validTransitions only moves forward; COMPLETED and CANCELLED are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderCooking, OrderReady, OrderCompleted, OrderCancelled},
	OrderCooking: {OrderReady, OrderCompleted, OrderCancelled},
	OrderReady:   {OrderCompleted},
}

func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, to := range validTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID          uint        `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	StandID     uint        `json:"stand_id"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items,omitempty"`
	StandName   string      `json:"stand_name,omitempty"`
	StudentName string      `json:"student_name,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (o Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

type OrderItem struct {
	ID       uint   `json:"id"`
	OrderID  uint   `json:"order_id"`
	MenuID   uint   `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // line total after discount
}

// OrderLine is one requested menu line of a new order.
type OrderLine struct {
	MenuID   uint
	Quantity int
}

type PlacedOrder struct {
	Order      Order `json:"order"`
	TotalPrice int64 `json:"total_price"`
}

// LinePrice returns unitPrice*quantity minus percentage, the discount amount
// rounded half up to a whole currency unit.
func LinePrice(unitPrice int64, quantity int, percentage int) int64 {
	base := unitPrice * int64(quantity)
	if percentage <= 0 {
		return base
	}
	discount := (base*int64(percentage) + 50) / 100

	return base - discount
}
