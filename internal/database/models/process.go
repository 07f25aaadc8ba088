package models

// Process represents a production process step (e.g. Knitting)
type Process struct {
	BaseModel
	ProcessName string `json:"process_name" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
}

// TableName returns the table name for Process
func (Process) TableName() string {
	return "processes"
}
