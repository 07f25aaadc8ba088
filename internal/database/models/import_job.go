package models

// ImportJob tracks a spreadsheet order import. A failed import is marked
// Error with the full failure detail in ImportLog; the database transaction
// for the imported records is rolled back.
type ImportJob struct {
	BaseModel
	FileName  string       `json:"file_name" gorm:"size:280;not null" validate:"required"`
	Status    ImportStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	ImportLog string       `json:"import_log" gorm:"type:text"`
}

// TableName returns the table name for ImportJob
func (ImportJob) TableName() string {
	return "import_jobs"
}
