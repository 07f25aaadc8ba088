package models

// Colour represents a yarn colour master
type Colour struct {
	BaseModel
	ColourName string `json:"colour_name" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
	ColourNo   string `json:"colour_no" gorm:"size:40"`
	YarnName   string `json:"yarn_name" gorm:"size:140"`
}

// TableName returns the table name for Colour
func (Colour) TableName() string {
	return "colours"
}
