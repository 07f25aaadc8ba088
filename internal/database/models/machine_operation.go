package models

import (
	"time"

	"github.com/google/uuid"
)

// MachineOperation is a recorded assignment of produced quantity and consumed
// minutes to a machine, date, shift and order line. Rows are created, updated
// and deleted by the capacity-planning save operation.
type MachineOperation struct {
	BaseModel
	MachineID        uuid.UUID  `json:"machine_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrderID          uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index" validate:"required"`
	StyleCode        string     `json:"style_code" gorm:"size:140;not null" validate:"required"`
	ProcessName      string     `json:"process_name" gorm:"size:140;not null" validate:"required"`
	Colour           string     `json:"colour" gorm:"size:140"`
	Size             string     `json:"size" gorm:"size:40"`
	OperationDate    time.Time  `json:"operation_date" gorm:"type:date;not null;index" validate:"required"`
	ShiftName        string     `json:"shift" gorm:"size:140"`
	Quantity         int        `json:"quantity" gorm:"not null;default:0"`
	AllocatedMinutes int        `json:"allocated_minutes" gorm:"not null;default:0"`
	Operator         string     `json:"operator" gorm:"size:140"`

	// Relationships
	Machine Machine `json:"machine,omitempty" gorm:"foreignKey:MachineID"`
	Order   Order   `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for MachineOperation
func (MachineOperation) TableName() string {
	return "machine_operations"
}
