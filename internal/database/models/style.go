package models

import "github.com/google/uuid"

// Style represents a knitwear style master with its colour, size and
// process breakdown. Sizes are refreshed from the linked size range on save.
type Style struct {
	BaseModel
	StyleCode      string     `json:"style_code" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
	StyleName      string     `json:"style_name" gorm:"size:140;not null" validate:"required,min=1,max=140"`
	MachineFrameID uuid.UUID  `json:"machine_frame_id" gorm:"type:uuid;not null;index" validate:"required"`
	GG             string     `json:"gg" gorm:"size:40"`
	SizeRangeID    *uuid.UUID `json:"size_range_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	MachineFrame MachineFrame   `json:"machine_frame,omitempty" gorm:"foreignKey:MachineFrameID"`
	SizeRange    *SizeRange     `json:"size_range,omitempty" gorm:"foreignKey:SizeRangeID"`
	Colours      []StyleColour  `json:"colours,omitempty" gorm:"foreignKey:StyleID;constraint:OnDelete:CASCADE"`
	Sizes        []StyleSize    `json:"sizes,omitempty" gorm:"foreignKey:StyleID;constraint:OnDelete:CASCADE"`
	Processes    []StyleProcess `json:"processes,omitempty" gorm:"foreignKey:StyleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Style
func (Style) TableName() string {
	return "styles"
}

// StyleColour is a colour row assigned to a style
type StyleColour struct {
	BaseModel
	StyleID    uuid.UUID `json:"style_id" gorm:"type:uuid;not null;index"`
	ColourName string    `json:"colour_name" gorm:"size:140;not null" validate:"required"`
}

// TableName returns the table name for StyleColour
func (StyleColour) TableName() string {
	return "style_colours"
}

// StyleSize is a size row assigned to a style, derived from its size range
type StyleSize struct {
	BaseModel
	StyleID   uuid.UUID `json:"style_id" gorm:"type:uuid;not null;index"`
	SizeValue string    `json:"size_value" gorm:"size:40;not null" validate:"required"`
	Idx       int       `json:"idx" gorm:"not null;default:0"`
}

// TableName returns the table name for StyleSize
func (StyleSize) TableName() string {
	return "style_sizes"
}

// StyleProcess is a process row on a style with standard minutes per piece
type StyleProcess struct {
	BaseModel
	StyleID     uuid.UUID `json:"style_id" gorm:"type:uuid;not null;index"`
	ProcessName string    `json:"process_name" gorm:"size:140;not null" validate:"required"`
	Minutes     float64   `json:"minutes" gorm:"not null;default:0"`
}

// TableName returns the table name for StyleProcess
func (StyleProcess) TableName() string {
	return "style_processes"
}
