package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddOn is an extra that can be attached to an order line item (e.g. bacon,
// extra cheese). Add-ons are only ever soft-deleted so historical orders keep
// a valid reference.
type AddOn struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Active    bool            `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a *AddOn) TableName() string {
	return "add_ons"
}
