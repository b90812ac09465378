package models

// Course is educational content authored by a nutritionist.
type Course struct {
	BaseModel
	NutritionistID string  `gorm:"size:36;index;not null" json:"nutritionistId"`
	Title          string  `gorm:"size:200;not null" json:"title"`
	Description    string  `gorm:"type:text" json:"description,omitempty"`
	Price          float64 `gorm:"default:0" json:"price"`
	IsCertified    bool    `gorm:"default:false" json:"isCertified"`

	// Relations
	Modules []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

// CourseModule is one ordered unit inside a course.
type CourseModule struct {
	BaseModel
	CourseID         string `gorm:"size:36;index;not null" json:"courseId"`
	Title            string `gorm:"size:200;not null" json:"title"`
	Content          string `gorm:"type:text" json:"content,omitempty"`
	Order            int    `gorm:"column:module_order" json:"order"`
	IsLimitedContent bool   `gorm:"default:false" json:"isLimitedContent"`
}
