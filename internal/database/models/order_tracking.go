package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderTracking records completed production quantity against an order line.
// A tracking entry can only be recorded once the order has machine-operation
// allocations in capacity planning.
type OrderTracking struct {
	BaseModel
	OrderID      uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index" validate:"required"`
	StyleCode    string    `json:"style_code" gorm:"size:140;not null" validate:"required"`
	Colour       string    `json:"colour" gorm:"size:140"`
	Size         string    `json:"size" gorm:"size:40"`
	Quantity     int       `json:"quantity" gorm:"not null;default:0" validate:"required,min=1"`
	TrackingDate time.Time `json:"tracking_date" gorm:"type:date;not null" validate:"required"`
	User         string    `json:"user" gorm:"size:140"`

	// Relationships
	Order Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for OrderTracking
func (OrderTracking) TableName() string {
	return "order_trackings"
}
