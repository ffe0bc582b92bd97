package models

// Department represents the departments table
type Department struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description       string `gorm:"type:text" json:"description,omitempty"`
	DoctorsRegistered int    `gorm:"default:0" json:"doctors_registered"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
