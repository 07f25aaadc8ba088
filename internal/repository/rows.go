package repository

import (
	"time"

	"github.com/google/uuid"
)

// AllocationKey is the natural key of a machine operation. Two operations
// with the same key refer to the same unit of planned work.
type AllocationKey struct {
	MachineID   uuid.UUID
	OrderID     uuid.UUID
	StyleCode   string
	ProcessName string
	Colour      string
	Size        string
	Date        time.Time
}

// ProductionFilter narrows the production report aggregation.
type ProductionFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	MachineID   *uuid.UUID
	OrderID     *uuid.UUID
	StyleCode   string
	ProcessName string
}

// ProductionRow is one aggregated line of the production report.
type ProductionRow struct {
	OperationDate    time.Time `json:"operation_date"`
	MachineID        uuid.UUID `json:"machine_id"`
	MachineCode      string    `json:"machine_code"`
	MachineName      string    `json:"machine_name"`
	OrderID          uuid.UUID `json:"order_id"`
	PurchaseOrder    string    `json:"purchase_order"`
	StyleCode        string    `json:"style_code"`
	ProcessName      string    `json:"process_name"`
	Colour           string    `json:"colour"`
	Size             string    `json:"size"`
	Quantity         int       `json:"quantity"`
	AllocatedMinutes int       `json:"allocated_minutes"`
}

// UsedMinutesRow is one (machine, date) bucket of consumed capacity.
type UsedMinutesRow struct {
	MachineID     uuid.UUID `json:"machine_id"`
	OperationDate time.Time `json:"operation_date"`
	Minutes       int       `json:"minutes"`
}

// TrackingSummaryRow aggregates tracked production per order line.
type TrackingSummaryRow struct {
	OrderID   uuid.UUID `json:"order_id"`
	StyleCode string    `json:"style_code"`
	Colour    string    `json:"colour"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
}
