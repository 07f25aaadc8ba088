package models

import "github.com/google/uuid"

// MachineFrame represents a knitting machine frame/gauge master.
// The placeholder frame "-" is a valid entry used by the spreadsheet import.
type MachineFrame struct {
	BaseModel
	FrameName string `json:"frame_name" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
}

// TableName returns the table name for MachineFrame
func (MachineFrame) TableName() string {
	return "machine_frames"
}

// Machine represents a knitting machine on the shop floor
type Machine struct {
	BaseModel
	MachineID      string    `json:"machine_id" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
	MachineName    string    `json:"machine_name" gorm:"size:140;not null" validate:"required,min=1,max=140"`
	MachineFrameID uuid.UUID `json:"machine_frame_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	MachineFrame MachineFrame `json:"machine_frame,omitempty" gorm:"foreignKey:MachineFrameID"`
}

// TableName returns the table name for Machine
func (Machine) TableName() string {
	return "machines"
}
