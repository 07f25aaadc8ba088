package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftAllocation is a calendar record defining which shifts run, on which
// weekdays, with what ad hoc alterations, for either all machines (MachineID
// nil) or one specific machine. Single-day calendars have StartDate equal to
// EndDate. At most one default calendar exists system-wide.
type ShiftAllocation struct {
	BaseModel
	StartDate            time.Time  `json:"start_date" gorm:"type:date;not null;index" validate:"required"`
	EndDate              time.Time  `json:"end_date" gorm:"type:date;not null;index" validate:"required"`
	IsDefault            bool       `json:"is_default" gorm:"not null;default:false"`
	MachineID            *uuid.UUID `json:"machine_id,omitempty" gorm:"type:uuid;index"`
	Sunday               bool       `json:"sunday" gorm:"not null;default:false"`
	Monday               bool       `json:"monday" gorm:"not null;default:false"`
	Tuesday              bool       `json:"tuesday" gorm:"not null;default:false"`
	Wednesday            bool       `json:"wednesday" gorm:"not null;default:false"`
	Thursday             bool       `json:"thursday" gorm:"not null;default:false"`
	Friday               bool       `json:"friday" gorm:"not null;default:false"`
	Saturday             bool       `json:"saturday" gorm:"not null;default:false"`
	TotalDurationMinutes int        `json:"total_duration_minutes" gorm:"not null;default:0"`

	// Relationships
	Machine     *Machine          `json:"machine,omitempty" gorm:"foreignKey:MachineID"`
	Shifts      []ShiftAssignment `json:"shifts,omitempty" gorm:"foreignKey:ShiftAllocationID;constraint:OnDelete:CASCADE"`
	Alterations []ShiftAlteration `json:"alterations,omitempty" gorm:"foreignKey:ShiftAllocationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftAllocation
func (ShiftAllocation) TableName() string {
	return "shift_allocations"
}

// IsSingleDay reports whether the calendar covers exactly one date
func (sa *ShiftAllocation) IsSingleDay() bool {
	return SameDate(sa.StartDate, sa.EndDate)
}

// Covers reports whether the calendar's date range contains the given date
func (sa *ShiftAllocation) Covers(date time.Time) bool {
	return DateWithin(date, sa.StartDate, sa.EndDate)
}

// WorksOn consults the weekday flag for the given date
func (sa *ShiftAllocation) WorksOn(date time.Time) bool {
	switch date.Weekday() {
	case time.Sunday:
		return sa.Sunday
	case time.Monday:
		return sa.Monday
	case time.Tuesday:
		return sa.Tuesday
	case time.Wednesday:
		return sa.Wednesday
	case time.Thursday:
		return sa.Thursday
	case time.Friday:
		return sa.Friday
	default:
		return sa.Saturday
	}
}

// SumShiftMinutes recomputes the derived total from the assigned shifts
func (sa *ShiftAllocation) SumShiftMinutes() int {
	total := 0
	for _, row := range sa.Shifts {
		total += row.DurationMinutes
	}
	return total
}

// ShiftAssignment is an assigned shift row within a calendar. The shift name
// and duration are snapshotted so historical calendars survive shift edits.
type ShiftAssignment struct {
	BaseModel
	ShiftAllocationID uuid.UUID `json:"shift_allocation_id" gorm:"type:uuid;not null;index"`
	ShiftID           uuid.UUID `json:"shift_id" gorm:"type:uuid;not null" validate:"required"`
	ShiftName         string    `json:"shift_name" gorm:"size:140;not null"`
	DurationMinutes   int       `json:"duration_minutes" gorm:"not null;default:0"`
	Idx               int       `json:"idx" gorm:"not null;default:0"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}

// ShiftAlteration is a one-off minute adjustment (overtime/undertime) to a
// calendar's capacity on a specific date, optionally scoped to one machine.
// Alterations live only on general calendars.
type ShiftAlteration struct {
	BaseModel
	ShiftAllocationID uuid.UUID      `json:"shift_allocation_id" gorm:"type:uuid;not null;index"`
	Date              time.Time      `json:"date" gorm:"type:date;not null;index" validate:"required"`
	AlterationType    AlterationType `json:"alteration_type" gorm:"type:varchar(20);not null" validate:"required"`
	Minutes           int            `json:"minutes" gorm:"not null" validate:"required,min=1"`
	MachineID         *uuid.UUID     `json:"machine_id,omitempty" gorm:"type:uuid;index"`
	Reason            string         `json:"reason" gorm:"size:280"`
}

// TableName returns the table name for ShiftAlteration
func (ShiftAlteration) TableName() string {
	return "shift_alterations"
}

// AppliesTo reports whether the alteration affects the given date and machine.
// An alteration without a machine scope applies to every machine.
func (alt *ShiftAlteration) AppliesTo(date time.Time, machineID *uuid.UUID) bool {
	if !SameDate(alt.Date, date) {
		return false
	}
	if alt.MachineID == nil {
		return true
	}
	return machineID != nil && *alt.MachineID == *machineID
}
