package models

// Client represents a customer placing knitwear orders
type Client struct {
	BaseModel
	ClientName string `json:"client_name" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}
