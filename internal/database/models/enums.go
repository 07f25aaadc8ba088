package models

// AlterationType defines how a shift alteration changes capacity
type AlterationType string

const (
	AlterationTypeOvertime  AlterationType = "Overtime"
	AlterationTypeUndertime AlterationType = "Undertime"
)

// IsValid checks if the AlterationType is valid
func (a AlterationType) IsValid() bool {
	switch a {
	case AlterationTypeOvertime, AlterationTypeUndertime:
		return true
	}
	return false
}

// OrderStatus defines the lifecycle states of an order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "Draft"
	OrderStatusOpen      OrderStatus = "Open"
	OrderStatusClosed    OrderStatus = "Closed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsValid checks if the OrderStatus is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusOpen, OrderStatusClosed, OrderStatusCancelled:
		return true
	}
	return false
}

// IsSubmitted reports whether the order has passed submission
func (s OrderStatus) IsSubmitted() bool {
	return s == OrderStatusOpen || s == OrderStatusClosed
}

// ImportStatus defines the states of a spreadsheet import job
type ImportStatus string

const (
	ImportStatusPending   ImportStatus = "Pending"
	ImportStatusCompleted ImportStatus = "Completed"
	ImportStatusError     ImportStatus = "Error"
)

// IsValid checks if the ImportStatus is valid
func (s ImportStatus) IsValid() bool {
	switch s {
	case ImportStatusPending, ImportStatusCompleted, ImportStatusError:
		return true
	}
	return false
}
