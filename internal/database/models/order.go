package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a client order with style rows and a style/colour/size quantity
// matrix. Submission validates the matrix and snapshots process minutes.
type Order struct {
	BaseModel
	ClientID      uuid.UUID   `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	PurchaseOrder string      `json:"purchase_order" gorm:"size:140;index"`
	OrderDate     time.Time   `json:"order_date" gorm:"type:date;not null" validate:"required"`
	DeliveryDate  *time.Time  `json:"delivery_date,omitempty" gorm:"type:date"`
	CurrencyType  string      `json:"currency_type" gorm:"size:20"`
	Status        OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'Draft'"`
	TotalQuantity int         `json:"total_quantity" gorm:"not null;default:0"`

	// Relationships
	Client    Client         `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Styles    []OrderStyle   `json:"styles,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Details   []OrderDetail  `json:"order_details,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Processes []OrderProcess `json:"order_processes,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Order
func (Order) TableName() string {
	return "orders"
}

// SumDetailQuantity recomputes the derived total quantity over detail rows
func (o *Order) SumDetailQuantity() int {
	total := 0
	for _, d := range o.Details {
		total += d.Quantity
	}
	return total
}

// OrderStyle is a style row on an order
type OrderStyle struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	StyleCode string    `json:"style_code" gorm:"size:140;not null" validate:"required"`
}

// TableName returns the table name for OrderStyle
func (OrderStyle) TableName() string {
	return "order_styles"
}

// OrderDetail is one cell of the order matrix: style x colour x size with
// quantity, rate and per-combination delivery date.
type OrderDetail struct {
	BaseModel
	OrderID      uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	StyleCode    string          `json:"style_code" gorm:"size:140;not null" validate:"required"`
	Colour       string          `json:"colour" gorm:"size:140;not null" validate:"required"`
	Size         string          `json:"size" gorm:"size:40;not null" validate:"required"`
	Quantity     int             `json:"quantity" gorm:"not null;default:0"`
	Rate         decimal.Decimal `json:"rate" gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty" gorm:"type:date"`
}

// TableName returns the table name for OrderDetail
func (OrderDetail) TableName() string {
	return "order_details"
}

// OrderProcess is a process-minutes snapshot row populated at submission
// from the style masters.
type OrderProcess struct {
	BaseModel
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	StyleCode   string    `json:"style_code" gorm:"size:140;not null"`
	ProcessName string    `json:"process_name" gorm:"size:140;not null"`
	Minutes     float64   `json:"minutes" gorm:"not null;default:0"`
}

// TableName returns the table name for OrderProcess
func (OrderProcess) TableName() string {
	return "order_processes"
}
