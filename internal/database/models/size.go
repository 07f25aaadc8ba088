package models

import "github.com/google/uuid"

// Size represents a single garment size master (e.g. "38", "XL")
type Size struct {
	BaseModel
	SizeValue string `json:"size_value" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
}

// TableName returns the table name for Size
func (Size) TableName() string {
	return "sizes"
}

// SizeRange groups an ordered list of sizes for a style (e.g. "SR-ST-1001")
type SizeRange struct {
	BaseModel
	RangeName string          `json:"range_name" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
	Sizes     []SizeRangeSize `json:"sizes,omitempty" gorm:"foreignKey:SizeRangeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SizeRange
func (SizeRange) TableName() string {
	return "size_ranges"
}

// SizeRangeSize is an ordered size row within a size range
type SizeRangeSize struct {
	BaseModel
	SizeRangeID uuid.UUID `json:"size_range_id" gorm:"type:uuid;not null;index"`
	SizeValue   string    `json:"size_value" gorm:"size:40;not null" validate:"required"`
	Idx         int       `json:"idx" gorm:"not null;default:0"`
}

// TableName returns the table name for SizeRangeSize
func (SizeRangeSize) TableName() string {
	return "size_range_sizes"
}
