package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. Product name and unit price are copied
// from the catalog at order time so later catalog edits never change what a
// stored order says it cost. Items are immutable once persisted.
type OrderItem struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	OrderID     uint               `json:"order_id" gorm:"not null;index"`
	ProductID   uint               `json:"product_id" gorm:"not null"`
	ProductName string             `json:"product_name" gorm:"not null"`
	UnitPrice   decimal.Decimal    `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Quantity    int                `json:"quantity" gorm:"not null"`
	AddOns      AddOnSelectionList `json:"add_ons" gorm:"type:jsonb"`
	Note        string             `json:"note" gorm:"type:text"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (i *OrderItem) TableName() string {
	return "order_items"
}

// AddOnSelection is a snapshot of one add-on chosen for a line item: the
// add-on reference plus its name, price and quantity at selection time.
type AddOnSelection struct {
	AddOnID  uint            `json:"add_on_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// AddOnSelectionList is stored in a single jsonb column, preserving order.
type AddOnSelectionList []AddOnSelection

func (l *AddOnSelectionList) Scan(value interface{}) error {
	if value == nil {
		*l = AddOnSelectionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into AddOnSelectionList", value)
	}
}

func (l AddOnSelectionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
