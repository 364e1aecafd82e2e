package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	ControlNumber string          `json:"control_number" gorm:"not null"`
	PagerNumber   string          `json:"pager_number" gorm:"not null"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (o *Order) TableName() string {
	return "orders"
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// statusTransitions is the closed transition table: forward-only through the
// kitchen flow, with cancellation allowed from any non-terminal state.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed by the
// transition table.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
